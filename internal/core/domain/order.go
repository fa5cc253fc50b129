package domain

import (
	"encoding/json"
	"errors"
	"time"
)

var ErrOrderNotFound = errors.New("order not found")
var ErrMissingItems = errors.New("missing required fields")

// Order is a customer order. Item entries are opaque JSON values owned by
// whoever submits them; the API only guarantees the list is non-empty.
type Order struct {
	ID        string            `json:"id"`
	Items     []json.RawMessage `json:"order_items"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// Validate enforces the single order-level invariant: at least one item.
func (o *Order) Validate() error {
	if len(o.Items) == 0 {
		return ErrMissingItems
	}
	return nil
}
