package handler

import (
	"net/http"

	"github.com/Pesokrava/storefront/internal/delivery/http/middleware"
	"github.com/Pesokrava/storefront/internal/delivery/http/request"
	"github.com/Pesokrava/storefront/internal/delivery/http/response"
	"github.com/Pesokrava/storefront/internal/domain"
	"github.com/Pesokrava/storefront/internal/pkg/logger"
	"github.com/Pesokrava/storefront/internal/pkg/validator"
	"github.com/Pesokrava/storefront/internal/usecase/cart"
	"github.com/Pesokrava/storefront/internal/usecase/i18n"
	"github.com/Pesokrava/storefront/internal/usecase/session"
)

// CartHandler handles HTTP requests for the session cart
type CartHandler struct {
	carts      *cart.Service
	translator *i18n.Translator
	preferencesReader
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *cart.Service, prefs *session.Service, translator *i18n.Translator, log *logger.Logger) *CartHandler {
	return &CartHandler{
		carts:             cartService,
		translator:        translator,
		preferencesReader: preferencesReader{prefs: prefs, logger: log},
	}
}

// AddItemRequest represents the request body for a quick add from the grid
type AddItemRequest struct {
	ProductID int `json:"product_id" validate:"required,gt=0"`
}

// UpdateQuantityRequest represents the request body for changing a line's quantity.
// Zero or less removes the line.
type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity" validate:"required"`
}

// Get handles GET /api/v1/cart
// @Summary Get the cart
// @Description Cart lines with total item count and subtotal in the session currency
// @Tags Cart
// @Produce json
// @Param X-Session-ID header string false "Browsing session ID"
// @Success 200 {object} map[string]interface{} "Cart"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /cart [get]
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	c, err := h.carts.Get(r.Context(), middleware.SessionID(r.Context()))
	h.respond(w, r, c, err)
}

// AddItem handles POST /api/v1/cart/items
// @Summary Quick add a product
// @Description Adds one unit without a size or color. Adding a product already in the cart increments its line.
// @Tags Cart
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Browsing session ID"
// @Param item body AddItemRequest true "Product to add"
// @Success 200 {object} map[string]interface{} "Updated cart"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 404 {object} map[string]string "Product not found"
// @Failure 409 {object} map[string]string "Product out of stock"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /cart/items [post]
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validator.Get().Struct(req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	c, err := h.carts.AddItem(r.Context(), middleware.SessionID(r.Context()), req.ProductID)
	h.respond(w, r, c, err)
}

// UpdateQuantity handles PUT /api/v1/cart/items/:id
// @Summary Set a line's quantity
// @Description Sets an absolute quantity; zero or less removes the line. Unknown products are ignored.
// @Tags Cart
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param X-Session-ID header string false "Browsing session ID"
// @Param quantity body UpdateQuantityRequest true "New quantity"
// @Success 200 {object} map[string]interface{} "Updated cart"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /cart/items/{id} [put]
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	id, err := request.GetIntParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	var req UpdateQuantityRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validator.Get().Struct(req); err != nil {
		response.Error(w, http.StatusBadRequest, "Quantity is required")
		return
	}

	c, err := h.carts.UpdateQuantity(r.Context(), middleware.SessionID(r.Context()), id, *req.Quantity)
	h.respond(w, r, c, err)
}

// Remove handles DELETE /api/v1/cart/items/:id
// @Summary Remove a line
// @Description Removing a product that is not in the cart leaves it unchanged
// @Tags Cart
// @Produce json
// @Param id path int true "Product ID"
// @Param X-Session-ID header string false "Browsing session ID"
// @Success 200 {object} map[string]interface{} "Updated cart"
// @Failure 400 {object} map[string]string "Invalid product ID"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /cart/items/{id} [delete]
func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id, err := request.GetIntParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	c, err := h.carts.Remove(r.Context(), middleware.SessionID(r.Context()), id)
	h.respond(w, r, c, err)
}

// Clear handles DELETE /api/v1/cart
// @Summary Empty the cart
// @Tags Cart
// @Param X-Session-ID header string false "Browsing session ID"
// @Success 204 "Cart emptied"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /cart [delete]
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if _, err := h.carts.Clear(r.Context(), middleware.SessionID(r.Context())); err != nil {
		h.handleError(w, r, err)
		return
	}

	response.NoContent(w)
}

func (h *CartHandler) respond(w http.ResponseWriter, r *http.Request, c *domain.Cart, err error) {
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	response.Success(w, newCartView(c, h.preferences(r).Currency))
}

// handleError handles service layer errors and returns appropriate HTTP responses
func (h *CartHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	handleCartError(w, err, h.translator, h.preferences(r).Locale, h.logger)
}
