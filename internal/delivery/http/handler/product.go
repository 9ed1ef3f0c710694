package handler

import (
	"errors"
	"net/http"

	"github.com/Pesokrava/storefront/internal/delivery/http/middleware"
	"github.com/Pesokrava/storefront/internal/delivery/http/request"
	"github.com/Pesokrava/storefront/internal/delivery/http/response"
	"github.com/Pesokrava/storefront/internal/domain"
	"github.com/Pesokrava/storefront/internal/pkg/logger"
	"github.com/Pesokrava/storefront/internal/usecase/cart"
	"github.com/Pesokrava/storefront/internal/usecase/catalog"
	"github.com/Pesokrava/storefront/internal/usecase/i18n"
	"github.com/Pesokrava/storefront/internal/usecase/session"
)

// ProductHandler handles HTTP requests for the catalog
type ProductHandler struct {
	catalog    *catalog.Service
	carts      *cart.Service
	translator *i18n.Translator
	preferencesReader
}

// NewProductHandler creates a new product handler
func NewProductHandler(
	catalogService *catalog.Service,
	cartService *cart.Service,
	prefs *session.Service,
	translator *i18n.Translator,
	log *logger.Logger,
) *ProductHandler {
	return &ProductHandler{
		catalog:           catalogService,
		carts:             cartService,
		translator:        translator,
		preferencesReader: preferencesReader{prefs: prefs, logger: log},
	}
}

// ListResponse is a filtered and sorted product list
type ListResponse struct {
	Products      []ProductView   `json:"products"`
	Total         int             `json:"total"`
	ActiveFilters int             `json:"active_filters"`
	Sort          domain.SortKey  `json:"sort"`
	Currency      domain.Currency `json:"currency"`
}

// SearchResponse is the result of a name search
type SearchResponse struct {
	Query    string        `json:"query"`
	Products []ProductView `json:"products"`
	Total    int           `json:"total"`
}

// AddVariantRequest is the detail page's add-to-cart form
type AddVariantRequest struct {
	Size  string `json:"size"`
	Color string `json:"color"`
}

// List handles GET /api/v1/products
// @Summary List products
// @Description Filter and sort the catalog. Multi-value filters accept comma lists or repeated keys.
// @Tags Products
// @Produce json
// @Param X-Session-ID header string false "Browsing session ID"
// @Param min_price query number false "Lower price bound (inclusive)"
// @Param max_price query number false "Upper price bound (inclusive)"
// @Param in_stock query bool false "Only products in stock"
// @Param sizes query string false "Sizes, comma separated"
// @Param colors query string false "Colors, comma separated"
// @Param categories query string false "Categories, comma separated"
// @Param materials query string false "Materials, comma separated"
// @Param min_rating query number false "Minimum rating"
// @Param sustainable query bool false "Only sustainable products"
// @Param sort query string false "FEATURED, PRICE_ASC, PRICE_DESC, NEWEST or BEST_SELLING"
// @Success 200 {object} map[string]interface{} "Filtered product list"
// @Failure 400 {object} map[string]string "Invalid filter"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /products [get]
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	spec, err := h.parseFilterSpec(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	key, err := domain.ParseSortKey(r.URL.Query().Get("sort"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid sort key")
		return
	}

	result, err := h.catalog.Browse(r.Context(), spec, key)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	currency := h.preferences(r).Currency
	response.Success(w, ListResponse{
		Products:      newProductViews(result.Products, currency),
		Total:         result.Total,
		ActiveFilters: result.ActiveFilters,
		Sort:          key,
		Currency:      currency,
	})
}

func (h *ProductHandler) parseFilterSpec(r *http.Request) (domain.FilterSpec, error) {
	spec := h.catalog.DefaultSpec()

	var err error
	if spec.PriceRange.Min, err = request.GetDecimalQuery(r, "min_price", spec.PriceRange.Min); err != nil {
		return spec, err
	}
	if spec.PriceRange.Max, err = request.GetDecimalQuery(r, "max_price", spec.PriceRange.Max); err != nil {
		return spec, err
	}
	if spec.InStockOnly, err = request.GetBoolQuery(r, "in_stock", false); err != nil {
		return spec, err
	}
	if spec.SustainableOnly, err = request.GetBoolQuery(r, "sustainable", false); err != nil {
		return spec, err
	}
	if spec.MinRating, err = request.GetOptionalFloatQuery(r, "min_rating"); err != nil {
		return spec, err
	}

	spec.SelectedSizes = request.GetListQuery(r, "sizes")
	spec.SelectedColors = request.GetListQuery(r, "colors")
	spec.SelectedCategories = request.GetListQuery(r, "categories")
	spec.SelectedMaterials = request.GetListQuery(r, "materials")

	return spec, nil
}

// Filters handles GET /api/v1/products/filters
// @Summary Get filter options
// @Description Available sizes, colors, categories and materials with product counts, and the catalog price range
// @Tags Products
// @Produce json
// @Success 200 {object} map[string]interface{} "Filter options"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /products/filters [get]
func (h *ProductHandler) Filters(w http.ResponseWriter, r *http.Request) {
	opts, err := h.catalog.Options(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	response.Success(w, opts)
}

// GetByID handles GET /api/v1/products/:id
// @Summary Get a product by ID
// @Description Product detail view with display prices in the session currency
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Param X-Session-ID header string false "Browsing session ID"
// @Success 200 {object} map[string]interface{} "Product details"
// @Failure 400 {object} map[string]string "Invalid product ID"
// @Failure 404 {object} map[string]string "Product not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /products/{id} [get]
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := request.GetIntParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	product, err := h.catalog.GetByID(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	response.Success(w, newProductView(*product, h.preferences(r).Currency))
}

// AddToCart handles POST /api/v1/products/:id/cart
// @Summary Add a product variant to the cart
// @Description Size and color must both be chosen and offered by the product
// @Tags Products
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param X-Session-ID header string false "Browsing session ID"
// @Param variant body AddVariantRequest true "Chosen size and color"
// @Success 200 {object} map[string]interface{} "Updated cart"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 404 {object} map[string]string "Product not found"
// @Failure 409 {object} map[string]string "Product out of stock"
// @Failure 422 {object} map[string]string "Missing or unavailable size/color"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /products/{id}/cart [post]
func (h *ProductHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	id, err := request.GetIntParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	var req AddVariantRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	c, err := h.carts.AddVariant(r.Context(), middleware.SessionID(r.Context()), id, domain.Variant{
		Size:  req.Size,
		Color: req.Color,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	response.Success(w, newCartView(c, h.preferences(r).Currency))
}

// Search handles GET /api/v1/search
// @Summary Search products by name
// @Description Case-insensitive substring match on product names. A blank query returns no products.
// @Tags Products
// @Produce json
// @Param q query string false "Search text"
// @Param X-Session-ID header string false "Browsing session ID"
// @Success 200 {object} map[string]interface{} "Search results"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /search [get]
func (h *ProductHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	products, err := h.catalog.Search(r.Context(), query)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	response.Success(w, SearchResponse{
		Query:    query,
		Products: newProductViews(products, h.preferences(r).Currency),
		Total:    len(products),
	})
}

// handleError handles service layer errors and returns appropriate HTTP responses
func (h *ProductHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	handleCartError(w, err, h.translator, h.preferences(r).Locale, h.logger)
}

// handleCartError maps catalog and cart errors. Selection errors carry a translated notice.
func handleCartError(w http.ResponseWriter, err error, translator *i18n.Translator, locale domain.Locale, log *logger.Logger) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		response.Error(w, http.StatusNotFound, "Product not found")
	case errors.Is(err, domain.ErrInvalidInput):
		response.Error(w, http.StatusBadRequest, "Invalid input")
	case errors.Is(err, domain.ErrMissingSelection):
		response.Notice(w, http.StatusUnprocessableEntity,
			translator.Translate("product.missing_info", locale),
			translator.Translate("product.missing_info_body", locale))
	case errors.Is(err, domain.ErrInvalidSelection):
		response.Notice(w, http.StatusUnprocessableEntity,
			translator.Translate("product.missing_info", locale),
			translator.Translate("product.invalid_selection", locale))
	case errors.Is(err, domain.ErrOutOfStock):
		response.Error(w, http.StatusConflict, translator.Translate("cart.out_of_stock", locale))
	default:
		log.Error("Internal error in handler", err)
		response.Error(w, http.StatusInternalServerError, "Internal server error")
	}
}
