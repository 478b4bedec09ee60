package mock

import (
	"context"

	"github.com/google/uuid"

	"github.com/greenmarket/admin-server/src/models"
	"github.com/greenmarket/admin-server/src/repositories"
)

// CategoryRepository is a mock implementation of repositories.CategoryRepository
type CategoryRepository struct {
	CreateFunc func(ctx context.Context, category *models.Category) error
	ListFunc   func(ctx context.Context) ([]models.Category, error)
	UpdateFunc func(ctx context.Context, id uuid.UUID, fields models.CategoryUpdate) (*models.Category, error)
	DeleteFunc func(ctx context.Context, id uuid.UUID) (*models.Category, error)

	Calls map[string][]interface{}
}

// NewCategoryRepository creates a new mock category repository
func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{
		Calls: make(map[string][]interface{}),
	}
}

func (m *CategoryRepository) Create(ctx context.Context, category *models.Category) error {
	m.Calls["Create"] = append(m.Calls["Create"], category)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, category)
	}
	return nil
}

func (m *CategoryRepository) List(ctx context.Context) ([]models.Category, error) {
	m.Calls["List"] = append(m.Calls["List"], nil)
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *CategoryRepository) Update(ctx context.Context, id uuid.UUID, fields models.CategoryUpdate) (*models.Category, error) {
	m.Calls["Update"] = append(m.Calls["Update"], fields)
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, fields)
	}
	return nil, repositories.ErrNotFound
}

func (m *CategoryRepository) Delete(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	m.Calls["Delete"] = append(m.Calls["Delete"], id)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil, repositories.ErrNotFound
}

// Ensure CategoryRepository implements the interface
var _ repositories.CategoryRepository = (*CategoryRepository)(nil)
