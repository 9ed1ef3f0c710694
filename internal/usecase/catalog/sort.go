package catalog

import (
	"cmp"
	"slices"

	"github.com/Pesokrava/storefront/internal/domain"
)

// Sort returns a stably ordered copy of products. FEATURED keeps input order.
func Sort(products []domain.Product, key domain.SortKey) []domain.Product {
	sorted := slices.Clone(products)
	if sorted == nil {
		sorted = []domain.Product{}
	}

	switch key {
	case domain.SortPriceAsc:
		slices.SortStableFunc(sorted, func(a, b domain.Product) int { return a.Price.Cmp(b.Price) })
	case domain.SortPriceDesc:
		slices.SortStableFunc(sorted, func(a, b domain.Product) int { return b.Price.Cmp(a.Price) })
	case domain.SortNewest:
		slices.SortStableFunc(sorted, func(a, b domain.Product) int { return cmp.Compare(b.ID, a.ID) })
	case domain.SortBestSelling:
		slices.SortStableFunc(sorted, func(a, b domain.Product) int { return cmp.Compare(b.ReviewCount, a.ReviewCount) })
	}

	return sorted
}
