package domain

import (
	"context"
	"slices"

	"github.com/shopspring/decimal"
)

// Product represents a catalog entry. Products are immutable once loaded.
type Product struct {
	ID            int             `json:"id" db:"id"`
	Name          string          `json:"name" db:"name"`
	Price         decimal.Decimal `json:"price" db:"price"`
	OriginalPrice decimal.Decimal `json:"original_price" db:"original_price"`
	Rating        float64         `json:"rating" db:"rating"`
	ReviewCount   int             `json:"review_count" db:"review_count"`
	Image         string          `json:"image" db:"image"`
	Colors        []string        `json:"colors" db:"-"`
	Sizes         []string        `json:"sizes" db:"-"`
	InStock       bool            `json:"in_stock" db:"in_stock"`
	SaveAmount    decimal.Decimal `json:"save_amount" db:"save_amount"`
	Category      string          `json:"category" db:"category"`
	Material      string          `json:"material" db:"material"`
	Sustainable   bool            `json:"sustainable" db:"sustainable"`
}

// OffersSize reports whether size is one of the product's sizes
func (p Product) OffersSize(size string) bool {
	return slices.Contains(p.Sizes, size)
}

// OffersColor reports whether color is one of the product's colors
func (p Product) OffersColor(color string) bool {
	return slices.Contains(p.Colors, color)
}

// ProductRepository defines read access to the catalog
type ProductRepository interface {
	// List returns every product in catalog order
	List(ctx context.Context) ([]Product, error)

	// GetByID returns a single product or ErrNotFound
	GetByID(ctx context.Context, id int) (*Product, error)
}
