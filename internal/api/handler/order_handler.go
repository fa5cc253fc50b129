package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/comanda/ordering-system/internal/api/metrics"
	"github.com/comanda/ordering-system/internal/core/domain"
	"github.com/comanda/ordering-system/internal/core/ports"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service ports.OrderService
}

func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// List handles GET /orders.
//
// @Summary      List all orders
// @Tags         orders
// @Produce      json
// @Success      200  {array}   orderResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	orders, err := h.service.ListOrders(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrderListResponse(orders))
}

// Get handles GET /orders/:id.
//
// @Summary      Get an order by id
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "Order id"
// @Success      200  {object}  orderResponse
// @Failure      404  {object}  errorResponse
// @Router       /orders/{id} [get]
func (h *OrderHandler) Get(c echo.Context) error {
	order, err := h.service.GetOrder(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrderResponse(order))
}

// Create handles POST /orders — a batch of order entries. One entry without
// items fails the whole request and nothing is persisted.
//
// @Summary      Create a batch of orders
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body      []orderEntryRequest  true  "Order entries"
// @Success      201   {array}   orderResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	var reqs []orderEntryRequest
	if err := c.Bind(&reqs); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request data")
	}
	if len(reqs) == 0 {
		return domain.ErrMissingItems
	}

	entries := make([]ports.OrderEntryInput, 0, len(reqs))
	for _, req := range reqs {
		entries = append(entries, ports.OrderEntryInput{Items: req.OrderItems})
	}

	orders, err := h.service.CreateOrders(c.Request().Context(), entries)
	if err != nil {
		return err
	}

	metrics.OrdersCreatedTotal.Add(float64(len(orders)))
	return c.JSON(http.StatusCreated, toOrderListResponse(orders))
}

// Update handles PUT /orders/:id — replaces the item list wholesale.
//
// @Summary      Update an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id    path      string              true  "Order id"
// @Param        body  body      updateOrderRequest  true  "Replacement items"
// @Success      200   {object}  orderResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /orders/{id} [put]
func (h *OrderHandler) Update(c echo.Context) error {
	var req updateOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request data")
	}

	order, err := h.service.UpdateOrder(c.Request().Context(), c.Param("id"), req.OrderItems)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrderResponse(order))
}

// Delete handles DELETE /orders/:id.
//
// @Summary      Delete an order
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "Order id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /orders/{id} [delete]
func (h *OrderHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteOrder(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Order deleted successfully"})
}
