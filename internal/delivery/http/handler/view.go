package handler

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/Pesokrava/storefront/internal/delivery/http/middleware"
	"github.com/Pesokrava/storefront/internal/domain"
	"github.com/Pesokrava/storefront/internal/pkg/logger"
	"github.com/Pesokrava/storefront/internal/usecase/i18n"
	"github.com/Pesokrava/storefront/internal/usecase/session"
)

// ProductView is a product with prices formatted in the session currency
type ProductView struct {
	domain.Product
	DisplayPrice         string `json:"display_price"`
	DisplayOriginalPrice string `json:"display_original_price"`
	DisplaySaveAmount    string `json:"display_save_amount"`
}

func newProductView(p domain.Product, currency domain.Currency) ProductView {
	return ProductView{
		Product:              p,
		DisplayPrice:         i18n.FormatPrice(p.Price, currency),
		DisplayOriginalPrice: i18n.FormatPrice(p.OriginalPrice, currency),
		DisplaySaveAmount:    i18n.FormatPrice(p.SaveAmount, currency),
	}
}

func newProductViews(products []domain.Product, currency domain.Currency) []ProductView {
	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, newProductView(p, currency))
	}
	return views
}

// CartLineView is a cart line with its total and display prices
type CartLineView struct {
	domain.CartLine
	LineTotal        decimal.Decimal `json:"line_total"`
	DisplayPrice     string          `json:"display_price"`
	DisplayLineTotal string          `json:"display_line_total"`
}

// CartView is the cart as shown in the cart drawer
type CartView struct {
	Lines           []CartLineView  `json:"lines"`
	TotalItemCount  int             `json:"total_item_count"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	DisplaySubtotal string          `json:"display_subtotal"`
	Currency        domain.Currency `json:"currency"`
}

func newCartView(cart *domain.Cart, currency domain.Currency) CartView {
	lines := make([]CartLineView, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		total := line.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		lines = append(lines, CartLineView{
			CartLine:         line,
			LineTotal:        total,
			DisplayPrice:     i18n.FormatPrice(line.Price, currency),
			DisplayLineTotal: i18n.FormatPrice(total, currency),
		})
	}

	subtotal := cart.Subtotal()
	return CartView{
		Lines:           lines,
		TotalItemCount:  cart.TotalItemCount(),
		Subtotal:        subtotal,
		DisplaySubtotal: i18n.FormatPrice(subtotal, currency),
		Currency:        currency,
	}
}

// preferencesReader resolves the display preferences of the requesting session
type preferencesReader struct {
	prefs  *session.Service
	logger *logger.Logger
}

// preferences returns the session's preferences. A ?locale= query overrides the stored locale.
// Store failures degrade to the defaults so that reads keep working.
func (p preferencesReader) preferences(r *http.Request) domain.Preferences {
	prefs, err := p.prefs.Get(r.Context(), middleware.SessionID(r.Context()))
	if err != nil {
		p.logger.Warnf("Using default preferences: %v", err)
		prefs = p.prefs.Defaults()
	}

	if locale := r.URL.Query().Get("locale"); locale != "" {
		prefs.Locale = i18n.ParseLocale(locale)
	}
	return prefs
}
