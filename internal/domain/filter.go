package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// PriceRange is an inclusive [Min, Max] price window
type PriceRange struct {
	Min decimal.Decimal `json:"min"`
	Max decimal.Decimal `json:"max"`
}

// NewPriceRange builds a range from float bounds
func NewPriceRange(min, max float64) PriceRange {
	return PriceRange{Min: decimal.NewFromFloat(min), Max: decimal.NewFromFloat(max)}
}

// Normalized returns the range with bounds swapped when Min > Max
func (r PriceRange) Normalized() PriceRange {
	if r.Min.GreaterThan(r.Max) {
		return PriceRange{Min: r.Max, Max: r.Min}
	}
	return r
}

// Contains reports whether price falls inside the normalized range, both ends inclusive
func (r PriceRange) Contains(price decimal.Decimal) bool {
	n := r.Normalized()
	return price.GreaterThanOrEqual(n.Min) && price.LessThanOrEqual(n.Max)
}

// FilterSpec describes which products a view should include.
// Empty selections and nil pointers mean "no constraint" for that dimension.
type FilterSpec struct {
	PriceRange         *PriceRange `json:"price_range,omitempty"`
	InStockOnly        bool        `json:"in_stock_only"`
	SelectedSizes      []string    `json:"selected_sizes,omitempty"`
	SelectedColors     []string    `json:"selected_colors,omitempty"`
	SelectedCategories []string    `json:"selected_categories,omitempty"`
	SelectedMaterials  []string    `json:"selected_materials,omitempty"`
	MinRating          *float64    `json:"min_rating,omitempty"`
	SustainableOnly    bool        `json:"sustainable_only"`
}

// DefaultFilterSpec returns a spec whose price range spans [0, maxPrice] and nothing else is set
func DefaultFilterSpec(maxPrice float64) FilterSpec {
	r := NewPriceRange(0, maxPrice)
	return FilterSpec{PriceRange: &r}
}

// SortKey selects the ordering of a product list
type SortKey string

const (
	SortFeatured    SortKey = "FEATURED"
	SortPriceAsc    SortKey = "PRICE_ASC"
	SortPriceDesc   SortKey = "PRICE_DESC"
	SortNewest      SortKey = "NEWEST"
	SortBestSelling SortKey = "BEST_SELLING"
)

// sortLabels maps the storefront's dropdown labels onto sort keys
var sortLabels = map[string]SortKey{
	"PRICE: LOW TO HIGH": SortPriceAsc,
	"PRICE: HIGH TO LOW": SortPriceDesc,
	"BEST SELLING":       SortBestSelling,
}

// ParseSortKey accepts either an enum name or a storefront label. An empty value is FEATURED.
func ParseSortKey(raw string) (SortKey, error) {
	value := strings.ToUpper(strings.TrimSpace(raw))
	if value == "" {
		return SortFeatured, nil
	}

	switch key := SortKey(value); key {
	case SortFeatured, SortPriceAsc, SortPriceDesc, SortNewest, SortBestSelling:
		return key, nil
	}

	if key, ok := sortLabels[value]; ok {
		return key, nil
	}

	return "", fmt.Errorf("unknown sort key %q: %w", raw, ErrInvalidInput)
}
