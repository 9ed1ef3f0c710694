package cart

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/Pesokrava/storefront/internal/domain"
	"github.com/Pesokrava/storefront/internal/pkg/logger"
	pkgvalidator "github.com/Pesokrava/storefront/internal/pkg/validator"
)

// EventsSubject is the subject cart events are published on
const EventsSubject = "cart.events"

const (
	EventItemAdded       = "cart.item_added"
	EventItemRemoved     = "cart.item_removed"
	EventQuantityUpdated = "cart.quantity_updated"
	EventCleared         = "cart.cleared"
)

// EventPublisher defines the interface for publishing events
type EventPublisher interface {
	Publish(ctx context.Context, subject string, data []byte) error
}

// variantSelection is the detail-page form; both fields must be chosen
type variantSelection struct {
	Size  string `validate:"required"`
	Color string `validate:"required"`
}

// Service manages one cart per browsing session.
// Each operation loads the stored snapshot, applies the change and writes the full cart back.
type Service struct {
	store     domain.KeyValueStore
	products  domain.ProductRepository
	publisher EventPublisher
	validate  *validator.Validate
	ttl       time.Duration
	logger    *logger.Logger
	now       func() time.Time
	locks     *sessionLocks
}

// NewService creates a new cart service. publisher may be nil.
func NewService(
	store domain.KeyValueStore,
	products domain.ProductRepository,
	publisher EventPublisher,
	ttl time.Duration,
	log *logger.Logger,
) *Service {
	return &Service{
		store:     store,
		products:  products,
		publisher: publisher,
		validate:  pkgvalidator.Get(),
		ttl:       ttl,
		logger:    log,
		now:       time.Now,
		locks:     newSessionLocks(),
	}
}

func cartKey(sessionID string) string {
	return "cart:" + sessionID
}

// Get returns the session's cart, empty if nothing is stored
func (s *Service) Get(ctx context.Context, sessionID string) (*domain.Cart, error) {
	unlock := s.locks.lock(sessionID)
	defer unlock()

	return s.load(ctx, sessionID)
}

// AddItem is the grid's quick add: no size or color is recorded
func (s *Service) AddItem(ctx context.Context, sessionID string, productID int) (*domain.Cart, error) {
	return s.add(ctx, sessionID, productID, domain.Variant{}, false)
}

// AddVariant is the detail page add: size and color must both be chosen and offered
func (s *Service) AddVariant(ctx context.Context, sessionID string, productID int, v domain.Variant) (*domain.Cart, error) {
	return s.add(ctx, sessionID, productID, v, true)
}

func (s *Service) add(ctx context.Context, sessionID string, productID int, v domain.Variant, requireVariant bool) (*domain.Cart, error) {
	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.logger.Debugf("Product not found for cart add: %d", productID)
		} else {
			s.logger.Error("Failed to get product for cart add", err)
		}
		return nil, err
	}

	if !product.InStock {
		return nil, domain.ErrOutOfStock
	}

	if requireVariant {
		if err := s.checkVariant(product, v); err != nil {
			return nil, err
		}
	}

	return s.mutate(ctx, sessionID, EventItemAdded, func(c *domain.Cart) {
		c.Add(*product, v)
	})
}

func (s *Service) checkVariant(product *domain.Product, v domain.Variant) error {
	if err := s.validate.Struct(variantSelection{Size: v.Size, Color: v.Color}); err != nil {
		return domain.ErrMissingSelection
	}
	if !product.OffersSize(v.Size) || !product.OffersColor(v.Color) {
		return fmt.Errorf("size %q color %q for product %d: %w", v.Size, v.Color, product.ID, domain.ErrInvalidSelection)
	}
	return nil
}

// Remove deletes a line. Removing an absent product leaves the cart unchanged.
func (s *Service) Remove(ctx context.Context, sessionID string, productID int) (*domain.Cart, error) {
	return s.mutate(ctx, sessionID, EventItemRemoved, func(c *domain.Cart) {
		c.Remove(productID)
	})
}

// UpdateQuantity sets a line's quantity; zero or less removes the line
func (s *Service) UpdateQuantity(ctx context.Context, sessionID string, productID, quantity int) (*domain.Cart, error) {
	return s.mutate(ctx, sessionID, EventQuantityUpdated, func(c *domain.Cart) {
		c.UpdateQuantity(productID, quantity)
	})
}

// Clear empties the session's cart
func (s *Service) Clear(ctx context.Context, sessionID string) (*domain.Cart, error) {
	return s.mutate(ctx, sessionID, EventCleared, func(c *domain.Cart) {
		c.Clear()
	})
}

// mutate serializes load, apply and save per session. The event is stamped
// inside the lock and published after it is released.
func (s *Service) mutate(ctx context.Context, sessionID, eventType string, apply func(*domain.Cart)) (*domain.Cart, error) {
	cart, event, err := s.commit(ctx, sessionID, eventType, apply)
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, event)

	s.logger.WithFields(map[string]interface{}{
		"session_id": sessionID,
		"event":      eventType,
		"items":      cart.TotalItemCount(),
	}).Debug("Cart updated")

	return cart, nil
}

func (s *Service) commit(ctx context.Context, sessionID, eventType string, apply func(*domain.Cart)) (*domain.Cart, []byte, error) {
	unlock := s.locks.lock(sessionID)
	defer unlock()

	cart, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}

	apply(cart)

	if err := s.save(ctx, sessionID, cart); err != nil {
		s.logger.Error("Failed to save cart", err)
		return nil, nil, err
	}

	return cart, s.encodeEvent(eventType, sessionID, cart), nil
}

// load reads the stored cart. Missing or unreadable snapshots yield an empty cart.
// Both the {"lines": [...]} object and a bare array of lines are accepted.
func (s *Service) load(ctx context.Context, sessionID string) (*domain.Cart, error) {
	cart := &domain.Cart{Lines: []domain.CartLine{}}

	data, err := s.store.Get(ctx, cartKey(sessionID))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return cart, nil
		}
		s.logger.Error("Failed to load cart", err)
		return nil, err
	}

	if err := decodeCart(data, cart); err != nil {
		s.logger.WithFields(map[string]interface{}{
			"session_id": sessionID,
			"error":      err.Error(),
		}).Warn("Discarding unreadable cart snapshot")
		return &domain.Cart{Lines: []domain.CartLine{}}, nil
	}

	lines := make([]domain.CartLine, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		if line.Quantity > 0 {
			lines = append(lines, line)
		}
	}
	if dropped := len(cart.Lines) - len(lines); dropped > 0 {
		s.logger.WithFields(map[string]interface{}{
			"session_id": sessionID,
			"dropped":    dropped,
		}).Warn("Dropping cart lines with non-positive quantity")
	}
	cart.Lines = lines

	return cart, nil
}

func decodeCart(data []byte, cart *domain.Cart) error {
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '[' {
		return json.Unmarshal(trimmed, &cart.Lines)
	}
	return json.Unmarshal(data, cart)
}

func (s *Service) save(ctx context.Context, sessionID string, cart *domain.Cart) error {
	if cart.Lines == nil {
		cart.Lines = []domain.CartLine{}
	}

	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}

	if err := s.store.Set(ctx, cartKey(sessionID), data, s.ttl); err != nil {
		return fmt.Errorf("failed to store cart: %w", err)
	}

	return nil
}

// encodeEvent returns nil when no publisher is configured or encoding fails
func (s *Service) encodeEvent(eventType, sessionID string, cart *domain.Cart) []byte {
	if s.publisher == nil {
		return nil
	}

	event := domain.CartEvent{
		EventType: eventType,
		SessionID: sessionID,
		Timestamp: s.now(),
		ItemCount: cart.TotalItemCount(),
		Subtotal:  cart.Subtotal(),
		Lines:     cart.Lines,
	}

	data, err := json.Marshal(event)
	if err != nil {
		s.logger.Errorf(err, "Failed to marshal cart event for session %s", sessionID)
		return nil
	}
	return data
}

// publishEvent publishes an encoded cart event; failures are logged and never fail the mutation
func (s *Service) publishEvent(ctx context.Context, data []byte) {
	if s.publisher == nil || data == nil {
		return
	}

	if err := s.publisher.Publish(ctx, EventsSubject, data); err != nil {
		s.logger.Error("Failed to publish cart event", err)
	}
}
