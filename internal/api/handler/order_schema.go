package handler

import (
	"encoding/json"
	"time"

	"github.com/comanda/ordering-system/internal/core/domain"
)

// orderEntryRequest is one element in the batch create payload. Item values
// are opaque JSON passed through unchanged.
type orderEntryRequest struct {
	OrderItems []json.RawMessage `json:"order_items"`
}

type updateOrderRequest struct {
	OrderItems []json.RawMessage `json:"order_items"`
}

type orderResponse struct {
	ID         string            `json:"id"`
	OrderItems []json.RawMessage `json:"order_items"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

func toOrderResponse(o *domain.Order) orderResponse {
	return orderResponse{
		ID:         o.ID,
		OrderItems: o.Items,
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
}

func toOrderListResponse(orders []*domain.Order) []orderResponse {
	out := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderResponse(o))
	}
	return out
}
