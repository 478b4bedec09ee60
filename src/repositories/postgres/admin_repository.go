package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/greenmarket/admin-server/src/models"
	"github.com/greenmarket/admin-server/src/repositories"
)

const uniqueViolation = "23505"

// translateError maps pgx errors to the repository sentinels
func translateError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return repositories.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return repositories.ErrConflict
	}
	return err
}

const adminColumns = "id, username, fname, lname, email, password_hash, is_active, role, created_at, updated_at"

// AdminRepository is the PostgreSQL implementation of repositories.AdminRepository
type AdminRepository struct {
	pool *pgxpool.Pool
}

// NewAdminRepository creates a new admin repository
func NewAdminRepository(pool *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{pool: pool}
}

func scanAdmin(row pgx.Row) (*models.Admin, error) {
	a := &models.Admin{}
	err := row.Scan(&a.ID, &a.Username, &a.Fname, &a.Lname, &a.Email,
		&a.PasswordHash, &a.IsActive, &a.Role, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, translateError(err)
	}
	return a, nil
}

// Create inserts an admin; the unique indexes on username and email turn a
// duplicate into ErrConflict
func (r *AdminRepository) Create(ctx context.Context, admin *models.Admin) error {
	query := `
		INSERT INTO admins (id, username, fname, lname, email, password_hash, is_active, role)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`
	err := r.pool.QueryRow(ctx, query,
		admin.ID, admin.Username, admin.Fname, admin.Lname, admin.Email,
		admin.PasswordHash, admin.IsActive, admin.Role,
	).Scan(&admin.CreatedAt, &admin.UpdatedAt)
	if err != nil {
		return translateError(err)
	}
	return nil
}

// GetByID fetches one admin by identifier
func (r *AdminRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Admin, error) {
	query := fmt.Sprintf("SELECT %s FROM admins WHERE id = $1", adminColumns)
	return scanAdmin(r.pool.QueryRow(ctx, query, id))
}

// GetByUsername fetches one admin by username
func (r *AdminRepository) GetByUsername(ctx context.Context, username string) (*models.Admin, error) {
	query := fmt.Sprintf("SELECT %s FROM admins WHERE username = $1", adminColumns)
	return scanAdmin(r.pool.QueryRow(ctx, query, username))
}

// List returns all admins sorted newest-first
func (r *AdminRepository) List(ctx context.Context) ([]models.Admin, error) {
	query := fmt.Sprintf("SELECT %s FROM admins ORDER BY created_at DESC", adminColumns)
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	var admins []models.Admin
	for rows.Next() {
		a, err := scanAdmin(rows)
		if err != nil {
			return nil, err
		}
		admins = append(admins, *a)
	}
	return admins, rows.Err()
}

// Update applies a partial merge update and returns the updated record
func (r *AdminRepository) Update(ctx context.Context, id uuid.UUID, fields models.AdminUpdate) (*models.Admin, error) {
	set := []string{"updated_at = now()"}
	args := []any{}
	add := func(col string, v any) {
		args = append(args, v)
		set = append(set, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if fields.Username != nil {
		add("username", *fields.Username)
	}
	if fields.Fname != nil {
		add("fname", *fields.Fname)
	}
	if fields.Lname != nil {
		add("lname", *fields.Lname)
	}
	if fields.Email != nil {
		add("email", *fields.Email)
	}
	if fields.IsActive != nil {
		add("is_active", *fields.IsActive)
	}
	if fields.Role != nil {
		add("role", *fields.Role)
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE admins SET %s WHERE id = $%d RETURNING %s",
		strings.Join(set, ", "), len(args), adminColumns)

	return scanAdmin(r.pool.QueryRow(ctx, query, args...))
}

// Delete removes an admin and returns the deleted record
func (r *AdminRepository) Delete(ctx context.Context, id uuid.UUID) (*models.Admin, error) {
	query := fmt.Sprintf("DELETE FROM admins WHERE id = $1 RETURNING %s", adminColumns)
	return scanAdmin(r.pool.QueryRow(ctx, query, id))
}

// Ensure AdminRepository implements the interface
var _ repositories.AdminRepository = (*AdminRepository)(nil)
