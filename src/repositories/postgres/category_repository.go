package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/greenmarket/admin-server/src/models"
	"github.com/greenmarket/admin-server/src/repositories"
)

const categoryColumns = "id, category_name, description, user_id, created_at, updated_at"

// CategoryRepository is the PostgreSQL implementation of repositories.CategoryRepository
type CategoryRepository struct {
	pool *pgxpool.Pool
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{pool: pool}
}

func scanCategory(row pgx.Row) (*models.Category, error) {
	cat := &models.Category{}
	err := row.Scan(&cat.ID, &cat.CategoryName, &cat.Description, &cat.UserID,
		&cat.CreatedAt, &cat.UpdatedAt)
	if err != nil {
		return nil, translateError(err)
	}
	return cat, nil
}

// Create inserts a category; the unique index on category_name turns a
// duplicate into ErrConflict
func (r *CategoryRepository) Create(ctx context.Context, category *models.Category) error {
	query := `
		INSERT INTO categories (id, category_name, description, user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`
	err := r.pool.QueryRow(ctx, query,
		category.ID, category.CategoryName, category.Description, category.UserID,
	).Scan(&category.CreatedAt, &category.UpdatedAt)
	if err != nil {
		return translateError(err)
	}
	return nil
}

// List returns all categories sorted newest-first with the creating admin
// populated by a read-time join
func (r *CategoryRepository) List(ctx context.Context) ([]models.Category, error) {
	query := `
		SELECT c.id, c.category_name, c.description, c.user_id, c.created_at, c.updated_at,
		       a.id, a.fname, a.username
		FROM categories c
		LEFT JOIN admins a ON a.id = c.user_id
		ORDER BY c.created_at DESC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var cat models.Category
		var refID *uuid.UUID
		var refFname, refUsername *string
		err := rows.Scan(&cat.ID, &cat.CategoryName, &cat.Description, &cat.UserID,
			&cat.CreatedAt, &cat.UpdatedAt, &refID, &refFname, &refUsername)
		if err != nil {
			return nil, translateError(err)
		}
		if refID != nil {
			cat.User = &models.AdminRef{ID: *refID, Fname: *refFname, Username: *refUsername}
		}
		categories = append(categories, cat)
	}
	return categories, rows.Err()
}

// Update applies a partial merge update and returns the updated record
func (r *CategoryRepository) Update(ctx context.Context, id uuid.UUID, fields models.CategoryUpdate) (*models.Category, error) {
	set := []string{"updated_at = now()"}
	args := []any{}
	add := func(col string, v any) {
		args = append(args, v)
		set = append(set, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if fields.CategoryName != nil {
		add("category_name", *fields.CategoryName)
	}
	if fields.Description != nil {
		add("description", *fields.Description)
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE categories SET %s WHERE id = $%d RETURNING %s",
		strings.Join(set, ", "), len(args), categoryColumns)

	return scanCategory(r.pool.QueryRow(ctx, query, args...))
}

// Delete removes a category and returns the deleted record
func (r *CategoryRepository) Delete(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	query := fmt.Sprintf("DELETE FROM categories WHERE id = $1 RETURNING %s", categoryColumns)
	return scanCategory(r.pool.QueryRow(ctx, query, id))
}

// Ensure CategoryRepository implements the interface
var _ repositories.CategoryRepository = (*CategoryRepository)(nil)
