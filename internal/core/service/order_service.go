package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/comanda/ordering-system/internal/core/domain"
	"github.com/comanda/ordering-system/internal/core/ports"
)

// OrderService implements order CRUD.
type OrderService struct {
	repo ports.OrderRepository
}

func NewOrderService(repo ports.OrderRepository) *OrderService {
	return &OrderService{repo: repo}
}

func (s *OrderService) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	return s.repo.List(ctx)
}

func (s *OrderService) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	return s.repo.FindByID(ctx, id)
}

// CreateOrders validates the whole batch before any write, then persists it
// in a single transaction. The first entry without items fails the request
// and nothing is stored.
func (s *OrderService) CreateOrders(ctx context.Context, entries []ports.OrderEntryInput) ([]*domain.Order, error) {
	if len(entries) == 0 {
		return nil, domain.ErrMissingItems
	}

	now := time.Now().UTC()
	orders := make([]*domain.Order, 0, len(entries))
	for _, entry := range entries {
		order := &domain.Order{
			ID:        uuid.NewString(),
			Items:     entry.Items,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := order.Validate(); err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	if err := s.repo.CreateBatch(ctx, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateOrder replaces the item list wholesale; created_at never moves.
func (s *OrderService) UpdateOrder(ctx context.Context, id string, items []json.RawMessage) (*domain.Order, error) {
	if len(items) == 0 {
		return nil, domain.ErrMissingItems
	}

	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	order.Items = items
	order.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) DeleteOrder(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
