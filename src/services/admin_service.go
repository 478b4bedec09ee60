package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/greenmarket/admin-server/src/models"
	"github.com/greenmarket/admin-server/src/repositories"
	"github.com/greenmarket/admin-server/src/validation"
)

// AdminService handles admin account operations
type AdminService struct {
	repo repositories.AdminRepository
}

// NewAdminService creates a new admin service
func NewAdminService(repo repositories.AdminRepository) *AdminService {
	return &AdminService{repo: repo}
}

// List returns all admins sorted newest-first
func (as *AdminService) List(ctx context.Context) ([]models.Admin, error) {
	return as.repo.List(ctx)
}

// GetByID fetches one admin by identifier
func (as *AdminService) GetByID(ctx context.Context, id uuid.UUID) (*models.Admin, error) {
	return as.repo.GetByID(ctx, id)
}

// Profile fetches the caller's own record and re-checks liveness beyond the
// token's embedded claim; a stale token for a deactivated account is rejected
func (as *AdminService) Profile(ctx context.Context, id uuid.UUID) (*models.Admin, error) {
	admin, err := as.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrAccountInactive
		}
		return nil, err
	}
	if !admin.IsActive {
		return nil, ErrAccountInactive
	}
	return admin, nil
}

// SignUp creates a new admin with a bcrypt-hashed password. The username
// pre-check carries the caller-facing conflict; the unique index behind it
// closes the race.
func (as *AdminService) SignUp(ctx context.Context, req validation.AdminSignUp) (*models.Admin, error) {
	if _, err := as.repo.GetByUsername(ctx, req.Username); err == nil {
		return nil, repositories.ErrConflict
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &models.Admin{
		ID:           uuid.New(),
		Username:     req.Username,
		Fname:        req.Fname,
		Lname:        req.Lname,
		Email:        req.Email,
		PasswordHash: string(hash),
		IsActive:     true,
		Role:         models.RoleAdmin,
	}
	if req.IsActive != nil {
		admin.IsActive = *req.IsActive
	}
	if req.Role != "" {
		admin.Role = req.Role
	}

	if err := as.repo.Create(ctx, admin); err != nil {
		return nil, err
	}
	return admin, nil
}

// Authenticate verifies username and password. Both an unknown username and a
// wrong password yield ErrInvalidCredentials.
func (as *AdminService) Authenticate(ctx context.Context, username, password string) (*models.Admin, error) {
	admin, err := as.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return admin, nil
}

// Update applies a partial merge update. Password changes are rejected, and a
// username colliding with a different existing admin is a conflict.
func (as *AdminService) Update(ctx context.Context, id uuid.UUID, req validation.AdminUpdate) (*models.Admin, error) {
	if req.Password != nil {
		return nil, ErrPasswordImmutable
	}

	if req.Username != nil {
		existing, err := as.repo.GetByUsername(ctx, *req.Username)
		if err == nil && existing.ID != id {
			return nil, repositories.ErrConflict
		}
		if err != nil && !errors.Is(err, repositories.ErrNotFound) {
			return nil, err
		}
	}

	fields := models.AdminUpdate{
		Username: req.Username,
		Fname:    req.Fname,
		Lname:    req.Lname,
		Email:    req.Email,
		IsActive: req.IsActive,
		Role:     req.Role,
	}
	return as.repo.Update(ctx, id, fields)
}

// Delete removes an admin and returns the deleted record. Records the admin
// created are left in place.
func (as *AdminService) Delete(ctx context.Context, id uuid.UUID) (*models.Admin, error) {
	return as.repo.Delete(ctx, id)
}
