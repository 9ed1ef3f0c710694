package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// CartLine is a denormalized snapshot of a product in the cart.
// ProductID is a weak reference; the cart never reads product data after the add.
type CartLine struct {
	ProductID int             `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image"`
	Quantity  int             `json:"quantity"`
	Size      string          `json:"size,omitempty"`
	Color     string          `json:"color,omitempty"`
}

// Variant is the size/color chosen on the product detail page
type Variant struct {
	Size  string `json:"size"`
	Color string `json:"color"`
}

// Cart is an ordered collection of lines keyed by product id.
//
// Lines merge on product id alone: adding the same product with a different
// variant increments the existing line and keeps its original size/color.
// This mirrors the storefront's behavior and is pending a product decision.
type Cart struct {
	Lines []CartLine `json:"lines"`
}

// Add increments the line for p or appends a new line with quantity 1
func (c *Cart) Add(p Product, v Variant) {
	if i := c.index(p.ID); i >= 0 {
		c.Lines[i].Quantity++
		return
	}

	c.Lines = append(c.Lines, CartLine{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.Image,
		Quantity:  1,
		Size:      v.Size,
		Color:     v.Color,
	})
}

// Remove deletes the line for productID. Absent ids are a no-op.
func (c *Cart) Remove(productID int) {
	lines := c.Lines[:0]
	for _, line := range c.Lines {
		if line.ProductID != productID {
			lines = append(lines, line)
		}
	}
	c.Lines = lines
}

// UpdateQuantity sets an absolute quantity; a non-positive value removes the line
func (c *Cart) UpdateQuantity(productID, quantity int) {
	if quantity <= 0 {
		c.Remove(productID)
		return
	}

	if i := c.index(productID); i >= 0 {
		c.Lines[i].Quantity = quantity
	}
}

// Clear empties the cart
func (c *Cart) Clear() {
	c.Lines = nil
}

func (c *Cart) index(productID int) int {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// TotalItemCount is the sum of all line quantities
func (c *Cart) TotalItemCount() int {
	total := 0
	for _, line := range c.Lines {
		total += line.Quantity
	}
	return total
}

// Subtotal is the sum of price × quantity over all lines
func (c *Cart) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for _, line := range c.Lines {
		subtotal = subtotal.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return subtotal
}

// KeyValueStore persists serialized values under string keys
type KeyValueStore interface {
	// Get returns the stored value or ErrNotFound
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key; a zero ttl keeps it indefinitely
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// CartEvent is published after every cart mutation
type CartEvent struct {
	EventType string          `json:"event_type"`
	SessionID string          `json:"session_id"`
	Timestamp time.Time       `json:"timestamp"`
	ItemCount int             `json:"item_count"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Lines     []CartLine      `json:"lines"`
}

// CartSnapshot is the last known state of a session's cart, kept for reporting
type CartSnapshot struct {
	SessionID  string          `json:"session_id" db:"session_id"`
	ItemCount  int             `json:"item_count" db:"item_count"`
	Subtotal   decimal.Decimal `json:"subtotal" db:"subtotal"`
	Lines      []CartLine      `json:"lines" db:"-"`
	CapturedAt time.Time       `json:"captured_at" db:"captured_at"`
}

// CartSnapshotRepository stores cart snapshots
type CartSnapshotRepository interface {
	// Upsert writes the snapshot unless a newer one is already stored
	Upsert(ctx context.Context, snapshot *CartSnapshot) error
}
