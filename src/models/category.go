package models

import (
	"time"

	"github.com/google/uuid"
)

// Category is a named product classification created by an admin
type Category struct {
	ID           uuid.UUID `json:"id"`
	CategoryName string    `json:"categoryName"`
	Description  string    `json:"description,omitempty"`
	UserID       uuid.UUID `json:"-"`
	User         *AdminRef `json:"userId"` // populated creator; nil when the admin was deleted
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// CategoryUpdate carries the fields of a partial category update
type CategoryUpdate struct {
	CategoryName *string
	Description  *string
}
