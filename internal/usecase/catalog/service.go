package catalog

import (
	"context"
	"errors"

	"github.com/Pesokrava/storefront/internal/domain"
	"github.com/Pesokrava/storefront/internal/pkg/logger"
)

// Result is a filtered and sorted display list
type Result struct {
	Products      []domain.Product `json:"products"`
	Total         int              `json:"total"`
	ActiveFilters int              `json:"active_filters"`
}

// Service handles catalog browsing: filtering, sorting, search and detail lookup
type Service struct {
	repo         domain.ProductRepository
	defaultRange domain.PriceRange
	logger       *logger.Logger
}

// NewService creates a new catalog service. maxPrice bounds the default price filter.
func NewService(repo domain.ProductRepository, maxPrice float64, log *logger.Logger) *Service {
	return &Service{
		repo:         repo,
		defaultRange: domain.NewPriceRange(0, maxPrice),
		logger:       log,
	}
}

// DefaultSpec returns the filter spec of an untouched sidebar
func (s *Service) DefaultSpec() domain.FilterSpec {
	r := s.defaultRange
	return domain.FilterSpec{PriceRange: &r}
}

// Browse filters the catalog with spec and orders the matches by key
func (s *Service) Browse(ctx context.Context, spec domain.FilterSpec, key domain.SortKey) (*Result, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("Failed to list products", err)
		return nil, err
	}

	matches := Sort(Filter(products, spec), key)

	s.logger.WithFields(map[string]interface{}{
		"sort":    key,
		"matches": len(matches),
		"total":   len(products),
	}).Debug("Catalog filtered")

	return &Result{
		Products:      matches,
		Total:         len(matches),
		ActiveFilters: ActiveFilterCount(spec, s.defaultRange),
	}, nil
}

// Search runs a name search over the catalog
func (s *Service) Search(ctx context.Context, query string) ([]domain.Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("Failed to list products", err)
		return nil, err
	}

	return Search(products, query), nil
}

// GetByID retrieves a product by ID
func (s *Service) GetByID(ctx context.Context, id int) (*domain.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.logger.Debugf("Product not found: %d", id)
		} else {
			s.logger.Error("Failed to get product", err)
		}
		return nil, err
	}

	return product, nil
}

// Options returns the sidebar choices for the whole catalog
func (s *Service) Options(ctx context.Context) (*Options, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("Failed to list products", err)
		return nil, err
	}

	opts := FilterOptions(products)
	return &opts, nil
}
