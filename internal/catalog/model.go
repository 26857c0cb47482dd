package catalog

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	// Money as decimal to avoid float rounding (serialized as a quoted number)
	Price     decimal.Decimal `json:"price"`
	Stock     int             `json:"stock"`
	Unit      string          `json:"unit"`
	Image     string          `json:"image,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Category is a display label; Product.Category matches on name only,
// there is no enforced foreign key between the two.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
}

// CreateProduct carries the caller-supplied fields of a new product;
// id and timestamps are assigned by the store.
type CreateProduct struct {
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
	Stock    int             `json:"stock"`
	Unit     string          `json:"unit"`
	Image    string          `json:"image"`
}

// ProductPatch is a partial update: nil fields are left unchanged.
type ProductPatch struct {
	Name     *string          `json:"name"`
	Category *string          `json:"category"`
	Price    *decimal.Decimal `json:"price"`
	Stock    *int             `json:"stock"`
	Unit     *string          `json:"unit"`
	Image    *string          `json:"image"`
}
