package catalog

import (
	"slices"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/Pesokrava/storefront/internal/domain"
	"github.com/Pesokrava/storefront/internal/repository/memory"
)

func TestSort(t *testing.T) {
	tests := []struct {
		key  domain.SortKey
		want []int
	}{
		{domain.SortFeatured, []int{1, 2, 3, 4, 5, 6}},
		{domain.SortPriceAsc, []int{5, 4, 2, 6, 1, 3}},
		{domain.SortPriceDesc, []int{3, 1, 6, 2, 4, 5}},
		{domain.SortNewest, []int{6, 5, 4, 3, 2, 1}},
		{domain.SortBestSelling, []int{1, 4, 3, 5, 6, 2}},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Sort(memory.SeedProducts(), tt.key)))
		})
	}
}

func TestSort_IsPermutationAndLeavesInputAlone(t *testing.T) {
	products := memory.SeedProducts()

	sorted := Sort(products, domain.SortPriceDesc)

	assert.ElementsMatch(t, ids(products), ids(sorted))
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, ids(products))
}

func TestSort_StableOnTies(t *testing.T) {
	products := []domain.Product{
		{ID: 10, Price: decimal.NewFromInt(50)},
		{ID: 11, Price: decimal.NewFromInt(20)},
		{ID: 12, Price: decimal.NewFromInt(50)},
		{ID: 13, Price: decimal.NewFromInt(20)},
	}

	assert.Equal(t, []int{11, 13, 10, 12}, ids(Sort(products, domain.SortPriceAsc)))
	assert.Equal(t, []int{10, 12, 11, 13}, ids(Sort(products, domain.SortPriceDesc)))
}

func TestSort_AscIsReverseOfDescWithDistinctPrices(t *testing.T) {
	asc := ids(Sort(memory.SeedProducts(), domain.SortPriceAsc))
	desc := ids(Sort(memory.SeedProducts(), domain.SortPriceDesc))

	slices.Reverse(desc)
	assert.Equal(t, asc, desc)
}

func TestSort_Nil(t *testing.T) {
	sorted := Sort(nil, domain.SortNewest)

	assert.NotNil(t, sorted)
	assert.Empty(t, sorted)
}
