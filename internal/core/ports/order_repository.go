package ports

import (
	"context"

	"github.com/comanda/ordering-system/internal/core/domain"
)

// OrderRepository defines persistence operations for orders.
// CreateBatch persists all orders in a single transaction: either every
// order lands or none do.
type OrderRepository interface {
	CreateBatch(ctx context.Context, orders []*domain.Order) error
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	List(ctx context.Context) ([]*domain.Order, error)
	Update(ctx context.Context, order *domain.Order) error
	Delete(ctx context.Context, id string) error
}
