// internal/interfaces/http/handlers/order.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-client/internal/domain/booking"
	"github.com/your-org/storefront-client/internal/domain/order"
	"github.com/your-org/storefront-client/internal/store"
)

// OrderHandler handles checkout, order history and table bookings
type OrderHandler struct {
	store *store.Store
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(st *store.Store) *OrderHandler {
	return &OrderHandler{store: st}
}

// PlaceOrder handles POST /views/orders
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	var req order.PlaceOrderRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.store.PlaceOrder(c.Request.Context(), req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"data":    NewCartView(h.store.Cart()),
	})
}

// GetOrders handles GET /views/orders
func (h *OrderHandler) GetOrders(c *gin.Context) {
	orders, err := h.store.MyOrders(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	type orderView struct {
		order.Order
		ShortID string `json:"shortId"`
	}
	views := make([]orderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, orderView{Order: o, ShortID: o.ShortID()})
	}

	c.JSON(http.StatusOK, gin.H{"data": views})
}

// CreateBooking handles POST /views/bookings
func (h *OrderHandler) CreateBooking(c *gin.Context) {
	var req booking.Request
	if !bindJSON(c, &req) {
		return
	}

	if err := h.store.BookTable(c.Request.Context(), req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Table booked successfully",
	})
}

// GetBookings handles GET /views/bookings
func (h *OrderHandler) GetBookings(c *gin.Context) {
	bookings, err := h.store.MyBookings(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": bookings})
}
