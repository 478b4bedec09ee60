package mock

import (
	"context"

	"github.com/google/uuid"

	"github.com/greenmarket/admin-server/src/models"
	"github.com/greenmarket/admin-server/src/repositories"
)

// ProductRepository is a mock implementation of repositories.ProductRepository
type ProductRepository struct {
	CreateFunc func(ctx context.Context, product *models.Product) error
	ListFunc   func(ctx context.Context, limit, skip int) ([]models.Product, int, error)
	UpdateFunc func(ctx context.Context, id uuid.UUID, fields models.ProductUpdate) (*models.Product, error)
	DeleteFunc func(ctx context.Context, id uuid.UUID) (*models.Product, error)

	Calls map[string][]interface{}
}

// NewProductRepository creates a new mock product repository
func NewProductRepository() *ProductRepository {
	return &ProductRepository{
		Calls: make(map[string][]interface{}),
	}
}

func (m *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	m.Calls["Create"] = append(m.Calls["Create"], product)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, product)
	}
	return nil
}

func (m *ProductRepository) List(ctx context.Context, limit, skip int) ([]models.Product, int, error) {
	m.Calls["List"] = append(m.Calls["List"], []int{limit, skip})
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, skip)
	}
	return nil, 0, nil
}

func (m *ProductRepository) Update(ctx context.Context, id uuid.UUID, fields models.ProductUpdate) (*models.Product, error) {
	m.Calls["Update"] = append(m.Calls["Update"], fields)
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, fields)
	}
	return nil, repositories.ErrNotFound
}

func (m *ProductRepository) Delete(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	m.Calls["Delete"] = append(m.Calls["Delete"], id)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil, repositories.ErrNotFound
}

// Ensure ProductRepository implements the interface
var _ repositories.ProductRepository = (*ProductRepository)(nil)
