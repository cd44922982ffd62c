package domain

import "github.com/google/uuid"

// Category represents a product category. Category names are unique across
// the catalog and a category cannot be deleted while products reference it.
type Category struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
}
