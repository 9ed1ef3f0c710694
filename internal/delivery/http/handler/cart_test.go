package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartHandler_Get_Empty(t *testing.T) {
	f := newFixture(t)

	w := serve(f.carts.Get, http.MethodGet, "/api/v1/cart", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	view := decodeData[CartView](t, w)
	assert.Empty(t, view.Lines)
	assert.Equal(t, 0, view.TotalItemCount)
	assert.Equal(t, "$0.00", view.DisplaySubtotal)
}

func TestCartHandler_AddItem_MergesLines(t *testing.T) {
	f := newFixture(t)

	serve(f.carts.AddItem, http.MethodPost, "/api/v1/cart/items", AddItemRequest{ProductID: 1}, nil)
	serve(f.carts.AddItem, http.MethodPost, "/api/v1/cart/items", AddItemRequest{ProductID: 1}, nil)
	w := serve(f.carts.AddItem, http.MethodPost, "/api/v1/cart/items", AddItemRequest{ProductID: 2}, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	view := decodeData[CartView](t, w)
	require.Len(t, view.Lines, 2)
	assert.Equal(t, 2, view.Lines[0].Quantity)
	assert.Equal(t, "399.9", view.Lines[0].LineTotal.String())
	assert.Equal(t, "$399.90", view.Lines[0].DisplayLineTotal)
	assert.Equal(t, 3, view.TotalItemCount)
	assert.Equal(t, "529.85", view.Subtotal.String())
	assert.Equal(t, "$529.85", view.DisplaySubtotal)
}

func TestCartHandler_AddItem_WritesThrough(t *testing.T) {
	f := newFixture(t)

	serve(f.carts.AddItem, http.MethodPost, "/api/v1/cart/items", AddItemRequest{ProductID: 4}, nil)

	data, err := f.store.Get(context.Background(), "cart:"+testSession)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"id":4`)
}

func TestCartHandler_AddItem_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       any
		wantStatus int
	}{
		{"invalid json", "invalid json", http.StatusBadRequest},
		{"missing product id", map[string]int{}, http.StatusBadRequest},
		{"unknown product", AddItemRequest{ProductID: 42}, http.StatusNotFound},
		{"out of stock", AddItemRequest{ProductID: 5}, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			w := serve(f.carts.AddItem, http.MethodPost, "/api/v1/cart/items", tt.body, nil)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestCartHandler_UpdateQuantity(t *testing.T) {
	f := newFixture(t)
	serve(f.carts.AddItem, http.MethodPost, "/api/v1/cart/items", AddItemRequest{ProductID: 6}, nil)

	w := serve(f.carts.UpdateQuantity, http.MethodPut, "/api/v1/cart/items/6",
		map[string]int{"quantity": 4}, map[string]string{"id": "6"})

	assert.Equal(t, http.StatusOK, w.Code)
	view := decodeData[CartView](t, w)
	assert.Equal(t, 4, view.TotalItemCount)
	assert.Equal(t, "$599.80", view.DisplaySubtotal)
}

func TestCartHandler_UpdateQuantity_ZeroRemoves(t *testing.T) {
	f := newFixture(t)
	serve(f.carts.AddItem, http.MethodPost, "/api/v1/cart/items", AddItemRequest{ProductID: 6}, nil)

	w := serve(f.carts.UpdateQuantity, http.MethodPut, "/api/v1/cart/items/6",
		map[string]int{"quantity": 0}, map[string]string{"id": "6"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeData[CartView](t, w).Lines)
}

func TestCartHandler_UpdateQuantity_MissingQuantity(t *testing.T) {
	f := newFixture(t)

	w := serve(f.carts.UpdateQuantity, http.MethodPut, "/api/v1/cart/items/6",
		map[string]int{}, map[string]string{"id": "6"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Quantity is required", decodeError(t, w)["error"])
}

func TestCartHandler_Remove(t *testing.T) {
	f := newFixture(t)
	serve(f.carts.AddItem, http.MethodPost, "/api/v1/cart/items", AddItemRequest{ProductID: 1}, nil)
	serve(f.carts.AddItem, http.MethodPost, "/api/v1/cart/items", AddItemRequest{ProductID: 2}, nil)

	w := serve(f.carts.Remove, http.MethodDelete, "/api/v1/cart/items/1", nil, map[string]string{"id": "1"})

	assert.Equal(t, http.StatusOK, w.Code)
	view := decodeData[CartView](t, w)
	require.Len(t, view.Lines, 1)
	assert.Equal(t, 2, view.Lines[0].ProductID)

	// Absent id leaves the cart unchanged
	w = serve(f.carts.Remove, http.MethodDelete, "/api/v1/cart/items/3", nil, map[string]string{"id": "3"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeData[CartView](t, w).Lines, 1)
}

func TestCartHandler_Remove_InvalidID(t *testing.T) {
	f := newFixture(t)

	w := serve(f.carts.Remove, http.MethodDelete, "/api/v1/cart/items/0", nil, map[string]string{"id": "0"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCartHandler_Clear(t *testing.T) {
	f := newFixture(t)
	serve(f.carts.AddItem, http.MethodPost, "/api/v1/cart/items", AddItemRequest{ProductID: 1}, nil)

	w := serve(f.carts.Clear, http.MethodDelete, "/api/v1/cart", nil, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = serve(f.carts.Get, http.MethodGet, "/api/v1/cart", nil, nil)
	assert.Equal(t, 0, decodeData[CartView](t, w).TotalItemCount)
}

func TestCartHandler_UsesSessionCurrency(t *testing.T) {
	f := newFixture(t)
	serve(f.preferences.Update, http.MethodPut, "/api/v1/session/preferences", map[string]string{"currency": "gbp"}, nil)

	w := serve(f.carts.AddItem, http.MethodPost, "/api/v1/cart/items", AddItemRequest{ProductID: 4}, nil)

	view := decodeData[CartView](t, w)
	assert.Equal(t, "£89.95", view.DisplaySubtotal)
	assert.Equal(t, "£89.95", view.Lines[0].DisplayPrice)
}
