package catalog

import (
	"slices"

	"github.com/shopspring/decimal"

	"github.com/Pesokrava/storefront/internal/domain"
)

type predicate func(domain.Product) bool

// Filter returns the products matching every active dimension of spec.
// Within a dimension a product matches if any of its values is selected.
// The input slice is never modified.
func Filter(products []domain.Product, spec domain.FilterSpec) []domain.Product {
	var passes []predicate

	if spec.PriceRange != nil {
		bounds := spec.PriceRange.Normalized()
		passes = append(passes, func(p domain.Product) bool { return bounds.Contains(p.Price) })
	}
	if spec.InStockOnly {
		passes = append(passes, func(p domain.Product) bool { return p.InStock })
	}
	if len(spec.SelectedSizes) > 0 {
		passes = append(passes, func(p domain.Product) bool { return intersects(p.Sizes, spec.SelectedSizes) })
	}
	if len(spec.SelectedColors) > 0 {
		passes = append(passes, func(p domain.Product) bool { return intersects(p.Colors, spec.SelectedColors) })
	}
	if len(spec.SelectedCategories) > 0 {
		passes = append(passes, func(p domain.Product) bool { return slices.Contains(spec.SelectedCategories, p.Category) })
	}
	if len(spec.SelectedMaterials) > 0 {
		passes = append(passes, func(p domain.Product) bool { return slices.Contains(spec.SelectedMaterials, p.Material) })
	}
	if spec.MinRating != nil {
		floor := *spec.MinRating
		passes = append(passes, func(p domain.Product) bool { return p.Rating >= floor })
	}
	if spec.SustainableOnly {
		passes = append(passes, func(p domain.Product) bool { return p.Sustainable })
	}

	result := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if matchesAll(p, passes) {
			result = append(result, p)
		}
	}
	return result
}

func matchesAll(p domain.Product, passes []predicate) bool {
	for _, pass := range passes {
		if !pass(p) {
			return false
		}
	}
	return true
}

func intersects(values, selected []string) bool {
	for _, v := range values {
		if slices.Contains(selected, v) {
			return true
		}
	}
	return false
}

// ActiveFilterCount mirrors the sidebar badge: one per narrowed dimension flag
// plus one per selected size, color, category and material.
func ActiveFilterCount(spec domain.FilterSpec, defaultRange domain.PriceRange) int {
	count := 0

	if spec.PriceRange != nil {
		r := spec.PriceRange.Normalized()
		if r.Min.GreaterThan(defaultRange.Min) || r.Max.LessThan(defaultRange.Max) {
			count++
		}
	}
	if spec.InStockOnly {
		count++
	}
	count += len(spec.SelectedSizes)
	count += len(spec.SelectedColors)
	count += len(spec.SelectedCategories)
	count += len(spec.SelectedMaterials)
	if spec.MinRating != nil {
		count++
	}
	if spec.SustainableOnly {
		count++
	}

	return count
}

// OptionCount is a filter choice with the number of products offering it
type OptionCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Options lists the choices available for each filter dimension
type Options struct {
	Sizes       []OptionCount     `json:"sizes"`
	Colors      []OptionCount     `json:"colors"`
	Categories  []OptionCount     `json:"categories"`
	Materials   []OptionCount     `json:"materials"`
	PriceRange  domain.PriceRange `json:"price_range"`
	InStock     int               `json:"in_stock"`
	OutOfStock  int               `json:"out_of_stock"`
	Sustainable int               `json:"sustainable"`
}

// FilterOptions computes the available choices over products, in first-seen order
func FilterOptions(products []domain.Product) Options {
	sizes := newCounter()
	colors := newCounter()
	categories := newCounter()
	materials := newCounter()

	var opts Options
	for i, p := range products {
		for _, s := range p.Sizes {
			sizes.add(s)
		}
		for _, c := range p.Colors {
			colors.add(c)
		}
		categories.add(p.Category)
		materials.add(p.Material)

		if p.InStock {
			opts.InStock++
		} else {
			opts.OutOfStock++
		}
		if p.Sustainable {
			opts.Sustainable++
		}

		if i == 0 {
			opts.PriceRange = domain.PriceRange{Min: p.Price, Max: p.Price}
			continue
		}
		opts.PriceRange.Min = decimal.Min(opts.PriceRange.Min, p.Price)
		opts.PriceRange.Max = decimal.Max(opts.PriceRange.Max, p.Price)
	}

	opts.Sizes = sizes.list()
	opts.Colors = colors.list()
	opts.Categories = categories.list()
	opts.Materials = materials.list()
	return opts
}

type counter struct {
	order  []string
	counts map[string]int
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(name string) {
	if name == "" {
		return
	}
	if _, seen := c.counts[name]; !seen {
		c.order = append(c.order, name)
	}
	c.counts[name]++
}

func (c *counter) list() []OptionCount {
	out := make([]OptionCount, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, OptionCount{Name: name, Count: c.counts[name]})
	}
	return out
}
