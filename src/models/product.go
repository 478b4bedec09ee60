package models

import (
	"time"

	"github.com/google/uuid"
)

// ProductUnits are the accepted measurement units for a product
var ProductUnits = []string{"kg", "m", "l", "pcs"}

// Product is a catalog item
type Product struct {
	ID         uuid.UUID  `json:"id"`
	Title      string     `json:"title"`
	Price      float64    `json:"price"`
	OldPrice   float64    `json:"oldPrice"`
	Stock      int        `json:"stock"`
	Rating     float64    `json:"rating"`
	Views      int        `json:"views"`
	Units      string     `json:"units"`
	Desc       string     `json:"desc"`
	Urls       []string   `json:"urls"`
	Info       []string   `json:"info"`
	Available  bool       `json:"available"`
	CategoryID *uuid.UUID `json:"categoryId,omitempty"`
	AdminID    uuid.UUID  `json:"-"`
	Admin      *AdminRef  `json:"adminId"` // populated creator; nil when the admin was deleted
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// ProductUpdate carries the fields of a partial product update
type ProductUpdate struct {
	Title      *string
	Price      *float64
	OldPrice   *float64
	Stock      *int
	Rating     *float64
	Views      *int
	Units      *string
	Desc       *string
	Urls       *[]string
	Info       *[]string
	Available  *bool
	CategoryID *uuid.UUID
}
