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

// CategoryHandler handles category endpoints
type CategoryHandler struct {
	service *services.CategoryService
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(service *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

// HandleList returns all categories, newest-first, with the creator populated
func (ch *CategoryHandler) HandleList(c *gin.Context) {
	categories, err := ch.service.List(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch categories")
		respond(c, http.StatusInternalServerError, "Server error while fetching categories", VariantError, nil)
		return
	}

	if len(categories) == 0 {
		respond(c, http.StatusNotFound, "No categories found", VariantError, nil)
		return
	}

	respond(c, http.StatusOK, "Categories fetched successfully", VariantSuccess, categories)
}

// HandleCreate stores a new category stamped with the caller as creator
func (ch *CategoryHandler) HandleCreate(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		respond(c, http.StatusUnauthorized, "Unauthorized access", VariantError, nil)
		return
	}

	var req validation.CategoryCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, "Invalid request body", VariantWarning, nil)
		return
	}

	if err := validation.Struct(req); err != nil {
		respond(c, http.StatusBadRequest, err.Error(), VariantWarning, nil)
		return
	}

	category, err := ch.service.Create(c.Request.Context(), identity.ID, req)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrConflict):
			respond(c, http.StatusBadRequest, "Category name already exists", VariantWarning, nil)
		case errors.Is(err, services.ErrAccountInactive):
			respond(c, http.StatusUnauthorized, "Unauthorized access", VariantError, nil)
		default:
			log.Error().Err(err).Msg("failed to create category")
			respond(c, http.StatusInternalServerError, "Server error while creating category", VariantError, nil)
		}
		return
	}

	respond(c, http.StatusCreated, "Category created successfully", VariantSuccess, category)
}

// HandleUpdate applies a partial category update
func (ch *CategoryHandler) HandleUpdate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respond(c, http.StatusNotFound, "Category not found", VariantError, nil)
		return
	}

	var req validation.CategoryUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, "Invalid request body", VariantWarning, nil)
		return
	}

	if err := validation.Struct(req); err != nil {
		respond(c, http.StatusBadRequest, err.Error(), VariantWarning, nil)
		return
	}

	category, err := ch.service.Update(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			respond(c, http.StatusNotFound, "Category not found", VariantError, nil)
		case errors.Is(err, repositories.ErrConflict):
			respond(c, http.StatusBadRequest, "Category name already exists", VariantWarning, nil)
		default:
			log.Error().Err(err).Msg("failed to update category")
			respond(c, http.StatusInternalServerError, "Server error while updating category", VariantError, nil)
		}
		return
	}

	respond(c, http.StatusOK, "Category updated successfully", VariantSuccess, category)
}

// HandleDelete removes a category and returns the deleted record
func (ch *CategoryHandler) HandleDelete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respond(c, http.StatusNotFound, "Category not found", VariantError, nil)
		return
	}

	category, err := ch.service.Delete(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			respond(c, http.StatusNotFound, "Category not found", VariantError, nil)
			return
		}
		log.Error().Err(err).Msg("failed to delete category")
		respond(c, http.StatusInternalServerError, "Server error while deleting category", VariantError, nil)
		return
	}

	respond(c, http.StatusOK, "Category deleted successfully", VariantSuccess, category)
}
