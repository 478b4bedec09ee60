package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/greenmarket/admin-server/src/models"
	"github.com/greenmarket/admin-server/src/repositories"
	"github.com/greenmarket/admin-server/src/validation"
)

// ProductService handles catalog operations
type ProductService struct {
	repo   repositories.ProductRepository
	admins repositories.AdminRepository
}

// NewProductService creates a new product service
func NewProductService(repo repositories.ProductRepository, admins repositories.AdminRepository) *ProductService {
	return &ProductService{repo: repo, admins: admins}
}

// List returns one page sorted newest-first plus the total count
func (ps *ProductService) List(ctx context.Context, limit, skip int) ([]models.Product, int, error) {
	return ps.repo.List(ctx, limit, skip)
}

// Create stores a product stamped with the caller as creator, applying the
// catalog defaults for fields the request left out
func (ps *ProductService) Create(ctx context.Context, creatorID uuid.UUID, req validation.ProductCreate) (*models.Product, error) {
	creator, err := ps.admins.GetByID(ctx, creatorID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrAccountInactive
		}
		return nil, err
	}

	product := &models.Product{
		ID:         uuid.New(),
		Title:      strings.TrimSpace(req.Title),
		Price:      *req.Price,
		Units:      req.Units,
		Desc:       strings.TrimSpace(req.Desc),
		Urls:       []string{},
		Info:       []string{},
		Available:  true,
		CategoryID: req.CategoryID,
		AdminID:    creator.ID,
		Admin:      creator.Ref(),
	}
	if req.OldPrice != nil {
		product.OldPrice = *req.OldPrice
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.Rating != nil {
		product.Rating = *req.Rating
	}
	if req.Views != nil {
		product.Views = *req.Views
	}
	if req.Urls != nil {
		product.Urls = req.Urls
	}
	if req.Info != nil {
		product.Info = req.Info
	}
	if req.Available != nil {
		product.Available = *req.Available
	}

	if err := ps.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Update applies a partial merge update
func (ps *ProductService) Update(ctx context.Context, id uuid.UUID, req validation.ProductUpdate) (*models.Product, error) {
	if req.Title != nil {
		trimmed := strings.TrimSpace(*req.Title)
		req.Title = &trimmed
	}
	if req.Desc != nil {
		trimmed := strings.TrimSpace(*req.Desc)
		req.Desc = &trimmed
	}

	fields := models.ProductUpdate{
		Title:      req.Title,
		Price:      req.Price,
		OldPrice:   req.OldPrice,
		Stock:      req.Stock,
		Rating:     req.Rating,
		Views:      req.Views,
		Units:      req.Units,
		Desc:       req.Desc,
		Urls:       req.Urls,
		Info:       req.Info,
		Available:  req.Available,
		CategoryID: req.CategoryID,
	}
	return ps.repo.Update(ctx, id, fields)
}

// Delete removes a product and returns the deleted record
func (ps *ProductService) Delete(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	return ps.repo.Delete(ctx, id)
}
