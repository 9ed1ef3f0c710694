package memory

import (
	"context"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/Pesokrava/storefront/internal/domain"
)

// ProductRepository serves an immutable catalog held in memory
type ProductRepository struct {
	products []domain.Product
	byID     map[int]int
}

// NewProductRepository creates a repository over products. The slice is copied.
func NewProductRepository(products []domain.Product) *ProductRepository {
	r := &ProductRepository{
		products: make([]domain.Product, len(products)),
		byID:     make(map[int]int, len(products)),
	}
	for i, p := range products {
		r.products[i] = cloneProduct(p)
		r.byID[p.ID] = i
	}
	return r
}

// NewSeedProductRepository creates a repository over the built-in seed catalog
func NewSeedProductRepository() *ProductRepository {
	return NewProductRepository(SeedProducts())
}

// List returns a copy of the catalog in seed order
func (r *ProductRepository) List(ctx context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, len(r.products))
	for i, p := range r.products {
		out[i] = cloneProduct(p)
	}
	return out, nil
}

// GetByID retrieves a product by ID
func (r *ProductRepository) GetByID(ctx context.Context, id int) (*domain.Product, error) {
	i, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	p := cloneProduct(r.products[i])
	return &p, nil
}

// cloneProduct detaches the slices so callers cannot mutate the catalog
func cloneProduct(p domain.Product) domain.Product {
	p.Colors = slices.Clone(p.Colors)
	p.Sizes = slices.Clone(p.Sizes)
	return p
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// SeedProducts returns the storefront's six launch products
func SeedProducts() []domain.Product {
	return []domain.Product{
		{
			ID:            1,
			Name:          "OLD MONEY SUEDE LOAFERS",
			Price:         price("199.95"),
			OriginalPrice: price("254.95"),
			Rating:        4.9,
			ReviewCount:   65,
			Image:         "https://images.unsplash.com/photo-1614252235316-8c857d38b5f4?q=80&w=1000&auto=format&fit=crop",
			Colors:        []string{"Beige"},
			Sizes:         []string{"40", "41", "42", "43", "44"},
			InStock:       true,
			SaveAmount:    price("55.00"),
			Category:      "Shoes",
			Material:      "Suede",
		},
		{
			ID:            2,
			Name:          "CAPE TOWN - 100% LINEN SHIRT",
			Price:         price("129.95"),
			OriginalPrice: price("149.95"),
			Rating:        4.9,
			ReviewCount:   18,
			Image:         "https://images.unsplash.com/photo-1596755094514-f87e34085b2c?q=80&w=1000&auto=format&fit=crop",
			Colors:        []string{"Beige", "White"},
			Sizes:         []string{"S", "M", "L", "XL"},
			InStock:       true,
			SaveAmount:    price("20.00"),
			Category:      "Shirts",
			Material:      "Linen",
			Sustainable:   true,
		},
		{
			ID:            3,
			Name:          "OLD MONEY HIGH SUEDE LOAFERS",
			Price:         price("219.95"),
			OriginalPrice: price("287.95"),
			Rating:        4.8,
			ReviewCount:   33,
			Image:         "https://images.unsplash.com/photo-1560343090-f0409e92791a?q=80&w=1000&auto=format&fit=crop",
			Colors:        []string{"Black", "Brown"},
			Sizes:         []string{"40", "41", "42", "43"},
			InStock:       true,
			SaveAmount:    price("68.00"),
			Category:      "Shoes",
			Material:      "Suede",
		},
		{
			ID:            4,
			Name:          "PREMIUM COTTON POLO SHIRT",
			Price:         price("89.95"),
			OriginalPrice: price("119.95"),
			Rating:        4.7,
			ReviewCount:   42,
			Image:         "https://images.unsplash.com/photo-1626497764746-6dc36546b388?q=80&w=1000&auto=format&fit=crop",
			Colors:        []string{"Navy", "White", "Beige"},
			Sizes:         []string{"S", "M", "L", "XL"},
			InStock:       true,
			SaveAmount:    price("30.00"),
			Category:      "Shirts",
			Material:      "Cotton",
			Sustainable:   true,
		},
		{
			ID:            5,
			Name:          "ITALIAN LEATHER BELT",
			Price:         price("79.95"),
			OriginalPrice: price("99.95"),
			Rating:        4.8,
			ReviewCount:   27,
			Image:         "https://images.unsplash.com/photo-1624222247344-550fb60583dc?q=80&w=1000&auto=format&fit=crop",
			Colors:        []string{"Brown", "Black"},
			Sizes:         []string{"S", "M", "L"},
			InStock:       false,
			SaveAmount:    price("20.00"),
			Category:      "Accessories",
			Material:      "Leather",
		},
		{
			ID:            6,
			Name:          "CASHMERE BLEND SWEATER",
			Price:         price("149.95"),
			OriginalPrice: price("199.95"),
			Rating:        4.9,
			ReviewCount:   19,
			Image:         "https://images.unsplash.com/photo-1614252369475-531eba835eb1?q=80&w=1000&auto=format&fit=crop",
			Colors:        []string{"Gray", "Navy", "Beige"},
			Sizes:         []string{"S", "M", "L"},
			InStock:       true,
			SaveAmount:    price("50.00"),
			Category:      "Outerwear",
			Material:      "Cashmere",
		},
	}
}
