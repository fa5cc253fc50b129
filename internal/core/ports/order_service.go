package ports

import (
	"context"
	"encoding/json"

	"github.com/comanda/ordering-system/internal/core/domain"
)

// OrderEntryInput is a single entry in a batch create request. Item values
// are opaque JSON passed through to storage untouched.
type OrderEntryInput struct {
	Items []json.RawMessage
}

// OrderService defines use-case operations for orders.
// CreateOrders is all-or-nothing: one invalid entry fails the whole batch
// and nothing is persisted.
type OrderService interface {
	ListOrders(ctx context.Context) ([]*domain.Order, error)
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
	CreateOrders(ctx context.Context, entries []OrderEntryInput) ([]*domain.Order, error)
	UpdateOrder(ctx context.Context, id string, items []json.RawMessage) (*domain.Order, error)
	DeleteOrder(ctx context.Context, id string) error
}
