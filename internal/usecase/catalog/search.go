package catalog

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/Pesokrava/storefront/internal/domain"
)

// Search returns products whose name contains query, ignoring case.
// A blank query means search is inactive and yields no results.
func Search(products []domain.Product, query string) []domain.Product {
	query = strings.TrimSpace(query)
	if query == "" {
		return []domain.Product{}
	}

	fold := cases.Fold()
	needle := fold.String(query)

	result := make([]domain.Product, 0)
	for _, p := range products {
		if strings.Contains(fold.String(p.Name), needle) {
			result = append(result, p)
		}
	}
	return result
}
