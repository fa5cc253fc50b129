package gorm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/comanda/ordering-system/internal/core/domain"
)

// orderRecord is the relational shape of an order. Items keep whatever JSON
// the caller submitted, serialized as a single text column.
type orderRecord struct {
	ID        string `gorm:"primaryKey;size:36"`
	Items     string `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (orderRecord) TableName() string { return "orders" }

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// CreateBatch inserts every order inside one transaction so a mid-batch
// failure leaves nothing behind.
func (r *OrderRepository) CreateBatch(ctx context.Context, orders []*domain.Order) error {
	recs := make([]orderRecord, 0, len(orders))
	for _, o := range orders {
		rec, err := orderToRecord(o)
		if err != nil {
			return err
		}
		recs = append(recs, *rec)
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range recs {
			if err := tx.Create(&recs[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("insert orders: %w", err)
	}
	return nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	var rec orderRecord
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("find order: %w", err)
	}
	return recordToOrder(&rec)
}

func (r *OrderRepository) List(ctx context.Context) ([]*domain.Order, error) {
	var recs []orderRecord
	if err := r.db.WithContext(ctx).Order("created_at").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	orders := make([]*domain.Order, 0, len(recs))
	for i := range recs {
		o, err := recordToOrder(&recs[i])
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func (r *OrderRepository) Update(ctx context.Context, order *domain.Order) error {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return fmt.Errorf("encode order items: %w", err)
	}

	res := r.db.WithContext(ctx).Model(&orderRecord{}).Where("id = ?", order.ID).Updates(map[string]any{
		"items":      string(items),
		"updated_at": order.UpdatedAt,
	})
	if res.Error != nil {
		return fmt.Errorf("update order: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

func (r *OrderRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&orderRecord{})
	if res.Error != nil {
		return fmt.Errorf("delete order: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

func orderToRecord(o *domain.Order) (*orderRecord, error) {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return nil, fmt.Errorf("encode order items: %w", err)
	}
	return &orderRecord{
		ID:        o.ID,
		Items:     string(items),
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}, nil
}

func recordToOrder(rec *orderRecord) (*domain.Order, error) {
	var items []json.RawMessage
	if err := json.Unmarshal([]byte(rec.Items), &items); err != nil {
		return nil, fmt.Errorf("decode order items: %w", err)
	}
	return &domain.Order{
		ID:        rec.ID,
		Items:     items,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}, nil
}
