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

const productColumns = "id, title, price, old_price, stock, rating, views, units, description, urls, info, available, category_id, admin_id, created_at, updated_at"

// ProductRepository is the PostgreSQL implementation of repositories.ProductRepository
type ProductRepository struct {
	pool *pgxpool.Pool
}

// NewProductRepository creates a new product repository
func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

func scanProduct(row pgx.Row) (*models.Product, error) {
	p := &models.Product{}
	err := row.Scan(&p.ID, &p.Title, &p.Price, &p.OldPrice, &p.Stock, &p.Rating,
		&p.Views, &p.Units, &p.Desc, &p.Urls, &p.Info, &p.Available,
		&p.CategoryID, &p.AdminID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, translateError(err)
	}
	return p, nil
}

// Create inserts a product
func (r *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	query := `
		INSERT INTO products (id, title, price, old_price, stock, rating, views,
			units, description, urls, info, available, category_id, admin_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING created_at, updated_at
	`
	err := r.pool.QueryRow(ctx, query,
		product.ID, product.Title, product.Price, product.OldPrice, product.Stock,
		product.Rating, product.Views, product.Units, product.Desc, product.Urls,
		product.Info, product.Available, product.CategoryID, product.AdminID,
	).Scan(&product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		return translateError(err)
	}
	return nil
}

// List returns one page sorted newest-first with the creating admin populated
// by a read-time join, plus the total count independent of pagination
func (r *ProductRepository) List(ctx context.Context, limit, skip int) ([]models.Product, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM products").Scan(&total); err != nil {
		return nil, 0, translateError(err)
	}

	query := `
		SELECT p.id, p.title, p.price, p.old_price, p.stock, p.rating, p.views,
		       p.units, p.description, p.urls, p.info, p.available, p.category_id,
		       p.admin_id, p.created_at, p.updated_at,
		       a.id, a.fname, a.username
		FROM products p
		LEFT JOIN admins a ON a.id = p.admin_id
		ORDER BY p.created_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.pool.Query(ctx, query, limit, skip)
	if err != nil {
		return nil, 0, translateError(err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var p models.Product
		var refID *uuid.UUID
		var refFname, refUsername *string
		err := rows.Scan(&p.ID, &p.Title, &p.Price, &p.OldPrice, &p.Stock, &p.Rating,
			&p.Views, &p.Units, &p.Desc, &p.Urls, &p.Info, &p.Available,
			&p.CategoryID, &p.AdminID, &p.CreatedAt, &p.UpdatedAt,
			&refID, &refFname, &refUsername)
		if err != nil {
			return nil, 0, translateError(err)
		}
		if refID != nil {
			p.Admin = &models.AdminRef{ID: *refID, Fname: *refFname, Username: *refUsername}
		}
		products = append(products, p)
	}
	return products, total, rows.Err()
}

// Update applies a partial merge update and returns the updated record
func (r *ProductRepository) Update(ctx context.Context, id uuid.UUID, fields models.ProductUpdate) (*models.Product, error) {
	set := []string{"updated_at = now()"}
	args := []any{}
	add := func(col string, v any) {
		args = append(args, v)
		set = append(set, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if fields.Title != nil {
		add("title", *fields.Title)
	}
	if fields.Price != nil {
		add("price", *fields.Price)
	}
	if fields.OldPrice != nil {
		add("old_price", *fields.OldPrice)
	}
	if fields.Stock != nil {
		add("stock", *fields.Stock)
	}
	if fields.Rating != nil {
		add("rating", *fields.Rating)
	}
	if fields.Views != nil {
		add("views", *fields.Views)
	}
	if fields.Units != nil {
		add("units", *fields.Units)
	}
	if fields.Desc != nil {
		add("description", *fields.Desc)
	}
	if fields.Urls != nil {
		add("urls", *fields.Urls)
	}
	if fields.Info != nil {
		add("info", *fields.Info)
	}
	if fields.Available != nil {
		add("available", *fields.Available)
	}
	if fields.CategoryID != nil {
		add("category_id", *fields.CategoryID)
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE products SET %s WHERE id = $%d RETURNING %s",
		strings.Join(set, ", "), len(args), productColumns)

	return scanProduct(r.pool.QueryRow(ctx, query, args...))
}

// Delete removes a product and returns the deleted record
func (r *ProductRepository) Delete(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	query := fmt.Sprintf("DELETE FROM products WHERE id = $1 RETURNING %s", productColumns)
	return scanProduct(r.pool.QueryRow(ctx, query, id))
}

// Ensure ProductRepository implements the interface
var _ repositories.ProductRepository = (*ProductRepository)(nil)
