package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Pesokrava/storefront/internal/domain"
	"github.com/Pesokrava/storefront/internal/usecase/catalog"
)

func TestProductHandler_List_Default(t *testing.T) {
	f := newFixture(t)

	w := serve(f.products.List, http.MethodGet, "/api/v1/products", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData[ListResponse](t, w)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, productIDs(data.Products))
	assert.Equal(t, 6, data.Total)
	assert.Equal(t, 0, data.ActiveFilters)
	assert.Equal(t, domain.SortFeatured, data.Sort)
	assert.Equal(t, "$199.95", data.Products[0].DisplayPrice)
}

func TestProductHandler_List_FilterAndCount(t *testing.T) {
	f := newFixture(t)

	w := serve(f.products.List, http.MethodGet, "/api/v1/products?min_price=80&max_price=150&in_stock=true", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData[ListResponse](t, w)
	assert.Equal(t, []int{2, 4, 6}, productIDs(data.Products))
	assert.Equal(t, 2, data.ActiveFilters)
}

func TestProductHandler_List_MultiValueFilters(t *testing.T) {
	f := newFixture(t)

	w := serve(f.products.List, http.MethodGet, "/api/v1/products?colors=Brown&colors=Navy&sort=NEWEST", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData[ListResponse](t, w)
	assert.Equal(t, []int{6, 5, 4, 3}, productIDs(data.Products))
	assert.Equal(t, 2, data.ActiveFilters)
}

func TestProductHandler_List_SortByLabel(t *testing.T) {
	f := newFixture(t)

	w := serve(f.products.List, http.MethodGet, "/api/v1/products?sort=PRICE:+LOW+TO+HIGH", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData[ListResponse](t, w)
	assert.Equal(t, []int{5, 4, 2, 6, 1, 3}, productIDs(data.Products))
	assert.Equal(t, domain.SortPriceAsc, data.Sort)
}

func TestProductHandler_List_InvalidQuery(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{"unknown sort", "/api/v1/products?sort=CHEAPEST"},
		{"bad price", "/api/v1/products?min_price=abc"},
		{"bad bool", "/api/v1/products?in_stock=maybe"},
		{"bad rating", "/api/v1/products?min_rating=high"},
		{"NaN rating", "/api/v1/products?min_rating=NaN"},
		{"infinite rating", "/api/v1/products?min_rating=-Inf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			w := serve(f.products.List, http.MethodGet, tt.target, nil, nil)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestProductHandler_List_UsesSessionCurrency(t *testing.T) {
	f := newFixture(t)
	serve(f.preferences.Update, http.MethodPut, "/api/v1/session/preferences", map[string]string{"currency": "EUR"}, nil)

	w := serve(f.products.List, http.MethodGet, "/api/v1/products", nil, nil)

	data := decodeData[ListResponse](t, w)
	assert.Equal(t, domain.CurrencyEUR, data.Currency)
	assert.Equal(t, "€199.95", data.Products[0].DisplayPrice)
	assert.Equal(t, "€254.95", data.Products[0].DisplayOriginalPrice)
	assert.Equal(t, "€55.00", data.Products[0].DisplaySaveAmount)
}

func TestProductHandler_Filters(t *testing.T) {
	f := newFixture(t)

	w := serve(f.products.Filters, http.MethodGet, "/api/v1/products/filters", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	opts := decodeData[catalog.Options](t, w)
	assert.Equal(t, 5, opts.InStock)
	assert.Equal(t, 1, opts.OutOfStock)
	assert.Equal(t, "79.95", opts.PriceRange.Min.StringFixed(2))
	assert.Equal(t, "219.95", opts.PriceRange.Max.StringFixed(2))
}

func TestProductHandler_GetByID(t *testing.T) {
	f := newFixture(t)

	w := serve(f.products.GetByID, http.MethodGet, "/api/v1/products/3", nil, map[string]string{"id": "3"})

	assert.Equal(t, http.StatusOK, w.Code)
	view := decodeData[ProductView](t, w)
	assert.Equal(t, "OLD MONEY HIGH SUEDE LOAFERS", view.Name)
	assert.Equal(t, "$219.95", view.DisplayPrice)
	assert.Equal(t, []string{"Black", "Brown"}, view.Colors)
}

func TestProductHandler_GetByID_Errors(t *testing.T) {
	f := newFixture(t)

	w := serve(f.products.GetByID, http.MethodGet, "/api/v1/products/99", nil, map[string]string{"id": "99"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = serve(f.products.GetByID, http.MethodGet, "/api/v1/products/abc", nil, map[string]string{"id": "abc"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid product ID", decodeError(t, w)["error"])
}

func TestProductHandler_AddToCart(t *testing.T) {
	f := newFixture(t)

	w := serve(f.products.AddToCart, http.MethodPost, "/api/v1/products/2/cart",
		AddVariantRequest{Size: "M", Color: "White"}, map[string]string{"id": "2"})

	assert.Equal(t, http.StatusOK, w.Code)
	view := decodeData[CartView](t, w)
	assert.Equal(t, 1, view.TotalItemCount)
	assert.Len(t, view.Lines, 1)
	assert.Equal(t, "M", view.Lines[0].Size)
	assert.Equal(t, "White", view.Lines[0].Color)
	assert.Equal(t, "$129.95", view.DisplaySubtotal)
}

func TestProductHandler_AddToCart_MissingSelection(t *testing.T) {
	f := newFixture(t)

	w := serve(f.products.AddToCart, http.MethodPost, "/api/v1/products/2/cart",
		AddVariantRequest{Size: "M"}, map[string]string{"id": "2"})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	body := decodeError(t, w)
	assert.Equal(t, "Missing Information", body["title"])
	assert.Equal(t, "Please select both size and color before adding to cart.", body["message"])

	// Cart left untouched
	w = serve(f.carts.Get, http.MethodGet, "/api/v1/cart", nil, nil)
	assert.Equal(t, 0, decodeData[CartView](t, w).TotalItemCount)
}

func TestProductHandler_AddToCart_NoticeIsTranslated(t *testing.T) {
	f := newFixture(t)

	w := serve(f.products.AddToCart, http.MethodPost, "/api/v1/products/2/cart?locale=de",
		AddVariantRequest{}, map[string]string{"id": "2"})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "Fehlende Angaben", decodeError(t, w)["title"])
}

func TestProductHandler_AddToCart_InvalidSelection(t *testing.T) {
	f := newFixture(t)

	w := serve(f.products.AddToCart, http.MethodPost, "/api/v1/products/1/cart",
		AddVariantRequest{Size: "XL", Color: "Beige"}, map[string]string{"id": "1"})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "The selected size or color is not available for this product.", decodeError(t, w)["message"])
}

func TestProductHandler_AddToCart_OutOfStock(t *testing.T) {
	f := newFixture(t)

	w := serve(f.products.AddToCart, http.MethodPost, "/api/v1/products/5/cart",
		AddVariantRequest{Size: "M", Color: "Brown"}, map[string]string{"id": "5"})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestProductHandler_AddToCart_InvalidBody(t *testing.T) {
	f := newFixture(t)

	w := serve(f.products.AddToCart, http.MethodPost, "/api/v1/products/2/cart", "invalid json", map[string]string{"id": "2"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid request body", decodeError(t, w)["error"])
}

func TestProductHandler_Search(t *testing.T) {
	f := newFixture(t)

	w := serve(f.products.Search, http.MethodGet, "/api/v1/search?q=loafers", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData[SearchResponse](t, w)
	assert.Equal(t, []int{1, 3}, productIDs(data.Products))
	assert.Equal(t, 2, data.Total)
}

func TestProductHandler_Search_BlankQuery(t *testing.T) {
	f := newFixture(t)

	w := serve(f.products.Search, http.MethodGet, "/api/v1/search?q=+++", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData[SearchResponse](t, w)
	assert.Empty(t, data.Products)
	assert.Equal(t, 0, data.Total)
}
