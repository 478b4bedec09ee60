package validation

import "github.com/google/uuid"

// AdminSignUp is the sign-up request schema
type AdminSignUp struct {
	Username string `json:"username" validate:"required,min=4,max=50"`
	Fname    string `json:"fname" validate:"required,min=3,max=50"`
	Lname    string `json:"lname" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,min=5,max=255,email"`
	Password string `json:"password" validate:"required,min=6,max=1024"`
	IsActive *bool  `json:"isActive"`
	Role     string `json:"role" validate:"omitempty,oneof=admin superadmin"`
}

// AdminSignIn is the sign-in request schema. Field-level failures are never
// surfaced; the handler answers with the uniform credentials message.
type AdminSignIn struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AdminUpdate is the partial admin update schema. Password is bound only to
// detect its presence; any non-null value is rejected by the handler.
type AdminUpdate struct {
	Username *string `json:"username"`
	Fname    *string `json:"fname"`
	Lname    *string `json:"lname"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	IsActive *bool   `json:"isActive"`
	Role     *string `json:"role" validate:"omitempty,oneof=admin superadmin"`
}

// CategoryCreate is the category creation schema. The creator is stamped from
// the caller identity, never taken from the body.
type CategoryCreate struct {
	CategoryName string `json:"categoryName" validate:"required,min=2,max=255"`
	Description  string `json:"description" validate:"omitempty,min=5,max=1024"`
}

// CategoryUpdate is the partial category update schema
type CategoryUpdate struct {
	CategoryName *string `json:"categoryName" validate:"omitempty,min=2,max=255"`
	Description  *string `json:"description" validate:"omitempty,min=5,max=1024"`
}

// ProductCreate is the product creation schema
type ProductCreate struct {
	Title      string     `json:"title" validate:"required"`
	Price      *float64   `json:"price" validate:"required,gte=0"`
	OldPrice   *float64   `json:"oldPrice" validate:"omitempty,gte=0"`
	Stock      *int       `json:"stock" validate:"omitempty,gte=0"`
	Rating     *float64   `json:"rating" validate:"omitempty,gte=0,lte=5"`
	Views      *int       `json:"views" validate:"omitempty,gte=0"`
	Units      string     `json:"units" validate:"required,oneof=kg m l pcs"`
	Desc       string     `json:"desc" validate:"required"`
	Urls       []string   `json:"urls" validate:"omitempty,dive,url"`
	Info       []string   `json:"info"`
	Available  *bool      `json:"available"`
	CategoryID *uuid.UUID `json:"categoryId"`
}

// ProductUpdate is the partial product update schema. Range rules run only on
// fields the caller actually sent.
type ProductUpdate struct {
	Title      *string    `json:"title"`
	Price      *float64   `json:"price" validate:"omitempty,gte=0"`
	OldPrice   *float64   `json:"oldPrice" validate:"omitempty,gte=0"`
	Stock      *int       `json:"stock" validate:"omitempty,gte=0"`
	Rating     *float64   `json:"rating" validate:"omitempty,gte=0,lte=5"`
	Views      *int       `json:"views" validate:"omitempty,gte=0"`
	Units      *string    `json:"units" validate:"omitempty,oneof=kg m l pcs"`
	Desc       *string    `json:"desc"`
	Urls       *[]string  `json:"urls" validate:"omitempty,dive,url"`
	Info       *[]string  `json:"info"`
	Available  *bool      `json:"available"`
	CategoryID *uuid.UUID `json:"categoryId"`
}
