package mock

import (
	"context"

	"github.com/google/uuid"

	"github.com/greenmarket/admin-server/src/models"
	"github.com/greenmarket/admin-server/src/repositories"
)

// AdminRepository is a mock implementation of repositories.AdminRepository
type AdminRepository struct {
	// Function stubs that can be overridden in tests
	CreateFunc        func(ctx context.Context, admin *models.Admin) error
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (*models.Admin, error)
	GetByUsernameFunc func(ctx context.Context, username string) (*models.Admin, error)
	ListFunc          func(ctx context.Context) ([]models.Admin, error)
	UpdateFunc        func(ctx context.Context, id uuid.UUID, fields models.AdminUpdate) (*models.Admin, error)
	DeleteFunc        func(ctx context.Context, id uuid.UUID) (*models.Admin, error)

	// Call tracking
	Calls map[string][]interface{}
}

// NewAdminRepository creates a new mock admin repository
func NewAdminRepository() *AdminRepository {
	return &AdminRepository{
		Calls: make(map[string][]interface{}),
	}
}

func (m *AdminRepository) Create(ctx context.Context, admin *models.Admin) error {
	m.Calls["Create"] = append(m.Calls["Create"], admin)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, admin)
	}
	return nil
}

func (m *AdminRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Admin, error) {
	m.Calls["GetByID"] = append(m.Calls["GetByID"], id)
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, repositories.ErrNotFound
}

func (m *AdminRepository) GetByUsername(ctx context.Context, username string) (*models.Admin, error) {
	m.Calls["GetByUsername"] = append(m.Calls["GetByUsername"], username)
	if m.GetByUsernameFunc != nil {
		return m.GetByUsernameFunc(ctx, username)
	}
	return nil, repositories.ErrNotFound
}

func (m *AdminRepository) List(ctx context.Context) ([]models.Admin, error) {
	m.Calls["List"] = append(m.Calls["List"], nil)
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *AdminRepository) Update(ctx context.Context, id uuid.UUID, fields models.AdminUpdate) (*models.Admin, error) {
	m.Calls["Update"] = append(m.Calls["Update"], fields)
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, fields)
	}
	return nil, repositories.ErrNotFound
}

func (m *AdminRepository) Delete(ctx context.Context, id uuid.UUID) (*models.Admin, error) {
	m.Calls["Delete"] = append(m.Calls["Delete"], id)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil, repositories.ErrNotFound
}

// Ensure AdminRepository implements the interface
var _ repositories.AdminRepository = (*AdminRepository)(nil)
