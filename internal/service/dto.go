package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryRequest carries the writable category fields
type CategoryRequest struct {
	Name        string `json:"name" validate:"required,max=50"`
	Description string `json:"description" validate:"max=200"`
}

// CategoryResponse is the wire representation of a category
type CategoryResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}

// ProductRequest carries the writable product fields. Timestamps are always
// system-assigned; clients cannot supply them.
type ProductRequest struct {
	Name        string          `json:"name" validate:"required,max=50"`
	Description string          `json:"description" validate:"required,max=500"`
	ImageURL    string          `json:"image_url" validate:"required,max=500"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	CategoryID  uuid.UUID       `json:"category_id" validate:"required"`
	Stock       int             `json:"stock" validate:"gte=0"`
	Sku         string          `json:"sku" validate:"max=20"`
}

// StockUpdateRequest carries a bare stock level. The non-negative rule is a
// business rule checked by the service, not a boundary validation.
type StockUpdateRequest struct {
	Stock int `json:"stock"`
}

// ProductResponse is the wire representation of a product
type ProductResponse struct {
	ID          uuid.UUID        `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	ImageURL    string           `json:"image_url"`
	Price       decimal.Decimal  `json:"price"`
	Category    CategoryResponse `json:"category"`
	Stock       int              `json:"stock"`
	Sku         string           `json:"sku,omitempty"`
	IsActive    bool             `json:"is_active"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// CreateProfileRequest carries the initial profile fields. IsPublic defaults
// to true when absent; IsActive is always forced on by the service.
type CreateProfileRequest struct {
	FirstName string     `json:"first_name" validate:"max=100"`
	LastName  string     `json:"last_name" validate:"max=100"`
	Bio       string     `json:"bio" validate:"max=500"`
	Phone     string     `json:"phone" validate:"max=20"`
	AvatarURL string     `json:"avatar_url" validate:"max=500"`
	Location  string     `json:"location" validate:"max=200"`
	BirthDate *time.Time `json:"birth_date"`
	Website   string     `json:"website" validate:"max=500"`
	IsPublic  *bool      `json:"is_public"`
}

// UpdateProfileRequest applies partial-patch semantics: only non-nil fields
// overwrite the stored profile, absent fields are left untouched.
type UpdateProfileRequest struct {
	FirstName *string    `json:"first_name" validate:"omitempty,max=100"`
	LastName  *string    `json:"last_name" validate:"omitempty,max=100"`
	Bio       *string    `json:"bio" validate:"omitempty,max=500"`
	Phone     *string    `json:"phone" validate:"omitempty,max=20"`
	AvatarURL *string    `json:"avatar_url" validate:"omitempty,max=500"`
	Location  *string    `json:"location" validate:"omitempty,max=200"`
	BirthDate *time.Time `json:"birth_date"`
	Website   *string    `json:"website" validate:"omitempty,max=500"`
	IsPublic  *bool      `json:"is_public"`
}

// ProfileResponse is the owner view of a profile, private fields included
type ProfileResponse struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	FullName  string     `json:"full_name"`
	Bio       string     `json:"bio"`
	Phone     string     `json:"phone"`
	AvatarURL string     `json:"avatar_url"`
	Location  string     `json:"location"`
	BirthDate *time.Time `json:"birth_date"`
	Website   string     `json:"website"`
	IsPublic  bool       `json:"is_public"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// PublicProfileResponse is the restricted view served to other callers
type PublicProfileResponse struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	FullName  string    `json:"full_name"`
	Bio       string    `json:"bio"`
	AvatarURL string    `json:"avatar_url"`
	Location  string    `json:"location"`
	Website   string    `json:"website"`
	CreatedAt time.Time `json:"created_at"`
}

// ProfileStats is a derived aggregate, computed on read and never persisted
type ProfileStats struct {
	TotalActive int64 `json:"total_active_profiles"`
	Public      int64 `json:"public_profiles"`
	Private     int64 `json:"private_profiles"`
}
