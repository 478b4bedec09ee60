package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/greenmarket/admin-server/src/middleware"
	"github.com/greenmarket/admin-server/src/repositories"
	"github.com/greenmarket/admin-server/src/services"
	"github.com/greenmarket/admin-server/src/validation"
)

const (
	defaultListLimit = 10
	defaultListSkip  = 0
)

// ProductHandler handles catalog endpoints
type ProductHandler struct {
	service *services.ProductService
}

// NewProductHandler creates a new product handler
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

func queryInt(c *gin.Context, name string, defaultValue int) int {
	if raw := c.Query(name); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v >= 0 {
			return v
		}
	}
	return defaultValue
}

// HandleList returns one page of products, newest-first, with the creator
// populated and the total count independent of pagination
func (ph *ProductHandler) HandleList(c *gin.Context) {
	limit := queryInt(c, "limit", defaultListLimit)
	skip := queryInt(c, "skip", defaultListSkip)

	products, total, err := ph.service.List(c.Request.Context(), limit, skip)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch products")
		respond(c, http.StatusInternalServerError, "Server error", VariantError, nil)
		return
	}

	if len(products) == 0 {
		respond(c, http.StatusNotFound, "No products found", VariantWarning, nil)
		return
	}

	respondCount(c, http.StatusOK, "Products retrieved successfully", VariantSuccess, products, total)
}

// HandleCreate stores a new product stamped with the caller as creator
func (ph *ProductHandler) HandleCreate(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		respond(c, http.StatusUnauthorized, "Unauthorized access", VariantError, nil)
		return
	}

	var req validation.ProductCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, "Invalid request body", VariantWarning, nil)
		return
	}

	if err := validation.Struct(req); err != nil {
		respond(c, http.StatusBadRequest, err.Error(), VariantWarning, nil)
		return
	}

	product, err := ph.service.Create(c.Request.Context(), identity.ID, req)
	if err != nil {
		if errors.Is(err, services.ErrAccountInactive) {
			respond(c, http.StatusUnauthorized, "Unauthorized access", VariantError, nil)
			return
		}
		log.Error().Err(err).Msg("failed to create product")
		respond(c, http.StatusInternalServerError, "Server error", VariantError, nil)
		return
	}

	respond(c, http.StatusCreated, "Product created successfully", VariantSuccess, product)
}

// HandleUpdate applies a partial product update
func (ph *ProductHandler) HandleUpdate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respond(c, http.StatusNotFound, "Product not found", VariantWarning, nil)
		return
	}

	var req validation.ProductUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, "Invalid request body", VariantWarning, nil)
		return
	}

	if err := validation.Struct(req); err != nil {
		respond(c, http.StatusBadRequest, err.Error(), VariantWarning, nil)
		return
	}

	product, err := ph.service.Update(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			respond(c, http.StatusNotFound, "Product not found", VariantWarning, nil)
			return
		}
		log.Error().Err(err).Msg("failed to update product")
		respond(c, http.StatusInternalServerError, "Server error", VariantError, nil)
		return
	}

	respond(c, http.StatusOK, "Product updated successfully", VariantSuccess, product)
}

// HandleDelete removes a product and returns the deleted record
func (ph *ProductHandler) HandleDelete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respond(c, http.StatusNotFound, "Product not found", VariantWarning, nil)
		return
	}

	product, err := ph.service.Delete(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			respond(c, http.StatusNotFound, "Product not found", VariantWarning, nil)
			return
		}
		log.Error().Err(err).Msg("failed to delete product")
		respond(c, http.StatusInternalServerError, "Server error", VariantError, nil)
		return
	}

	respond(c, http.StatusOK, "Product deleted successfully", VariantSuccess, product)
}
