package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/greenmarket/admin-server/src/models"
	"github.com/greenmarket/admin-server/src/repositories"
	"github.com/greenmarket/admin-server/src/validation"
)

// CategoryService handles category operations
type CategoryService struct {
	repo   repositories.CategoryRepository
	admins repositories.AdminRepository
}

// NewCategoryService creates a new category service
func NewCategoryService(repo repositories.CategoryRepository, admins repositories.AdminRepository) *CategoryService {
	return &CategoryService{repo: repo, admins: admins}
}

// List returns all categories sorted newest-first with the creator populated
func (cs *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	return cs.repo.List(ctx)
}

// Create stores a category stamped with the caller as creator. The creator
// must still exist; the category name must be unique.
func (cs *CategoryService) Create(ctx context.Context, creatorID uuid.UUID, req validation.CategoryCreate) (*models.Category, error) {
	creator, err := cs.admins.GetByID(ctx, creatorID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrAccountInactive
		}
		return nil, err
	}

	category := &models.Category{
		ID:           uuid.New(),
		CategoryName: req.CategoryName,
		Description:  req.Description,
		UserID:       creator.ID,
		User:         creator.Ref(),
	}
	if err := cs.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// Update applies a partial merge update
func (cs *CategoryService) Update(ctx context.Context, id uuid.UUID, req validation.CategoryUpdate) (*models.Category, error) {
	fields := models.CategoryUpdate{
		CategoryName: req.CategoryName,
		Description:  req.Description,
	}
	return cs.repo.Update(ctx, id, fields)
}

// Delete removes a category and returns the deleted record
func (cs *CategoryService) Delete(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	return cs.repo.Delete(ctx, id)
}
