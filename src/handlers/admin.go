package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/greenmarket/admin-server/src/middleware"
	"github.com/greenmarket/admin-server/src/repositories"
	"github.com/greenmarket/admin-server/src/services"
	"github.com/greenmarket/admin-server/src/validation"
)

// AdminHandler handles admin account endpoints
type AdminHandler struct {
	service *services.AdminService
	tokens  *middleware.TokenManager
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(service *services.AdminService, tokens *middleware.TokenManager) *AdminHandler {
	return &AdminHandler{service: service, tokens: tokens}
}

// HandleList returns all admins, newest-first
func (ah *AdminHandler) HandleList(c *gin.Context) {
	admins, err := ah.service.List(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch admins")
		respond(c, http.StatusInternalServerError, "Server error while fetching admins", VariantError, nil)
		return
	}

	if len(admins) == 0 {
		respondCount(c, http.StatusNotFound, "No users found", VariantError, nil, 0)
		return
	}

	respondCount(c, http.StatusOK, "Admins fetched successfully", VariantSuccess, admins, len(admins))
}

// HandleProfile returns the caller's own record. Liveness is re-checked
// against the store, so a token issued before deactivation is rejected here.
func (ah *AdminHandler) HandleProfile(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		respond(c, http.StatusUnauthorized, "Unauthorized access", VariantError, nil)
		return
	}

	admin, err := ah.service.Profile(c.Request.Context(), identity.ID)
	if err != nil {
		if errors.Is(err, services.ErrAccountInactive) {
			respond(c, http.StatusUnauthorized, "Unauthorized access", VariantError, nil)
			return
		}
		log.Error().Err(err).Msg("failed to fetch profile")
		respond(c, http.StatusInternalServerError, "Server error while fetching profile", VariantError, nil)
		return
	}

	respond(c, http.StatusOK, "Admin profile fetched successfully", VariantSuccess, admin)
}

// HandleGetOne returns one admin by identifier
func (ah *AdminHandler) HandleGetOne(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respond(c, http.StatusNotFound, "Admin not found", VariantError, nil)
		return
	}

	admin, err := ah.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			respond(c, http.StatusNotFound, "Admin not found", VariantError, nil)
			return
		}
		log.Error().Err(err).Msg("failed to fetch admin")
		respond(c, http.StatusInternalServerError, "Server error while fetching admin", VariantError, nil)
		return
	}

	respond(c, http.StatusOK, "Admin fetched successfully", VariantSuccess, admin)
}

// HandleSignUp registers a new admin (owner only)
func (ah *AdminHandler) HandleSignUp(c *gin.Context) {
	var req validation.AdminSignUp
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, "Invalid request body", VariantError, nil)
		return
	}

	if err := validation.Struct(req); err != nil {
		respond(c, http.StatusBadRequest, err.Error(), VariantError, nil)
		return
	}

	admin, err := ah.service.SignUp(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, repositories.ErrConflict) {
			respond(c, http.StatusBadRequest, "Username already exists", VariantError, nil)
			return
		}
		log.Error().Err(err).Msg("failed to create admin")
		respond(c, http.StatusInternalServerError, "Server error while creating admin", VariantError, nil)
		return
	}

	respond(c, http.StatusCreated, "Admin registered successfully", VariantSuccess, admin)
}

// HandleSignIn authenticates an admin and issues a time-boxed token.
// Unknown username and wrong password produce identical responses.
func (ah *AdminHandler) HandleSignIn(c *gin.Context) {
	var req validation.AdminSignIn
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, "Invalid username or password", VariantError, nil)
		return
	}

	admin, err := ah.service.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			respond(c, http.StatusBadRequest, "Invalid username or password", VariantError, nil)
			return
		}
		log.Error().Err(err).Msg("sign in failed")
		respond(c, http.StatusInternalServerError, "Server error during sign in", VariantError, nil)
		return
	}

	token, err := ah.tokens.Generate(admin)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate token")
		respond(c, http.StatusInternalServerError, "Server error during sign in", VariantError, nil)
		return
	}

	respond(c, http.StatusOK, "Logged in successfully", VariantSuccess, gin.H{
		"admin": admin,
		"token": token,
	})
}

// HandleUpdate applies a partial admin update. Password changes are rejected
// through this path.
func (ah *AdminHandler) HandleUpdate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respond(c, http.StatusNotFound, "Admin not found", VariantError, nil)
		return
	}

	var req validation.AdminUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, "Invalid request body", VariantError, nil)
		return
	}

	if err := validation.Struct(req); err != nil {
		respond(c, http.StatusBadRequest, err.Error(), VariantError, nil)
		return
	}

	admin, err := ah.service.Update(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPasswordImmutable):
			respond(c, http.StatusBadRequest, "Password cannot be updated through this endpoint", VariantError, nil)
		case errors.Is(err, repositories.ErrConflict):
			respond(c, http.StatusBadRequest, "Username already exists", VariantError, nil)
		case errors.Is(err, repositories.ErrNotFound):
			respond(c, http.StatusNotFound, "Admin not found", VariantError, nil)
		default:
			log.Error().Err(err).Msg("failed to update admin")
			respond(c, http.StatusInternalServerError, "Server error while updating admin", VariantError, nil)
		}
		return
	}

	respond(c, http.StatusOK, "Admin updated successfully", VariantSuccess, admin)
}

// HandleDelete removes an admin and returns the deleted record
func (ah *AdminHandler) HandleDelete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respond(c, http.StatusNotFound, "Admin not found", VariantError, nil)
		return
	}

	admin, err := ah.service.Delete(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			respond(c, http.StatusNotFound, "Admin not found", VariantError, nil)
			return
		}
		log.Error().Err(err).Msg("failed to delete admin")
		respond(c, http.StatusInternalServerError, "Server error while deleting admin", VariantError, nil)
		return
	}

	respond(c, http.StatusOK, "Admin deleted successfully", VariantSuccess, admin)
}
