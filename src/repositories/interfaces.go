package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/greenmarket/admin-server/src/models"
)

// Sentinel store errors, matched with errors.Is at the service and handler
// boundaries.
var (
	// ErrNotFound indicates no record matched the identifier
	ErrNotFound = errors.New("record not found")

	// ErrConflict indicates a unique constraint violation
	ErrConflict = errors.New("record already exists")
)

// AdminRepository defines the interface for admin data access
type AdminRepository interface {
	Create(ctx context.Context, admin *models.Admin) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Admin, error)
	GetByUsername(ctx context.Context, username string) (*models.Admin, error)
	List(ctx context.Context) ([]models.Admin, error)
	Update(ctx context.Context, id uuid.UUID, fields models.AdminUpdate) (*models.Admin, error)
	Delete(ctx context.Context, id uuid.UUID) (*models.Admin, error)
}

// CategoryRepository defines the interface for category data access
type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	List(ctx context.Context) ([]models.Category, error)
	Update(ctx context.Context, id uuid.UUID, fields models.CategoryUpdate) (*models.Category, error)
	Delete(ctx context.Context, id uuid.UUID) (*models.Category, error)
}

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	// List returns one page sorted newest-first plus the total count
	// independent of pagination
	List(ctx context.Context, limit, skip int) ([]models.Product, int, error)
	Update(ctx context.Context, id uuid.UUID, fields models.ProductUpdate) (*models.Product, error)
	Delete(ctx context.Context, id uuid.UUID) (*models.Product, error)
}
