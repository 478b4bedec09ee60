package models

import (
	"time"

	"github.com/google/uuid"
)

// Admin roles. The owner guard requires RoleSuperAdmin.
const (
	RoleAdmin      = "admin"
	RoleSuperAdmin = "superadmin"
)

// Admin represents an administrator account
type Admin struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Fname        string    `json:"fname"`
	Lname        string    `json:"lname"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // never expose
	IsActive     bool      `json:"isActive"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// AdminRef is the populated subset of the creating admin embedded in
// category and product payloads.
type AdminRef struct {
	ID       uuid.UUID `json:"id"`
	Fname    string    `json:"fname"`
	Username string    `json:"username"`
}

// Ref returns the populated reference for this admin
func (a *Admin) Ref() *AdminRef {
	return &AdminRef{ID: a.ID, Fname: a.Fname, Username: a.Username}
}

// AdminUpdate carries the fields of a partial admin update.
// Nil fields are left untouched.
type AdminUpdate struct {
	Username *string
	Fname    *string
	Lname    *string
	Email    *string
	IsActive *bool
	Role     *string
}
