// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-client/internal/domain/cart"
	"github.com/your-org/storefront-client/internal/domain/catalog"
	"github.com/your-org/storefront-client/internal/store"
)

// CartHandler handles cart endpoints
type CartHandler struct {
	store *store.Store
}

// NewCartHandler creates a new cart handler
func NewCartHandler(st *store.Store) *CartHandler {
	return &CartHandler{store: st}
}

// AddLineRequest is the body of POST /views/cart/lines
type AddLineRequest struct {
	MenuID string `json:"menuId" binding:"required"`
	// Quantity defaults to 1 when omitted.
	Quantity *int `json:"quantity"`
}

// CartLineView is one rendered cart line
type CartLineView struct {
	MenuItemID string        `json:"menuItemId"`
	Name       string        `json:"name"`
	Image      string        `json:"image,omitempty"`
	Price      catalog.Money `json:"price"`
	Quantity   int           `json:"quantity"`
	Subtotal   catalog.Money `json:"subtotal"`
}

// CartView is the cart page view model
type CartView struct {
	Lines      []CartLineView `json:"lines"`
	TotalPrice catalog.Money  `json:"totalPrice"`
	ItemCount  int            `json:"itemCount"`
	Empty      bool           `json:"empty"`
}

// NewCartView renders a cart
func NewCartView(c cart.Cart) CartView {
	lines := c.Lines()
	view := CartView{
		Lines:      make([]CartLineView, 0, len(lines)),
		TotalPrice: c.Totals().Price,
		ItemCount:  c.Totals().ItemCount,
		Empty:      c.IsEmpty(),
	}
	for _, l := range lines {
		view.Lines = append(view.Lines, CartLineView{
			MenuItemID: l.MenuItem.ID,
			Name:       l.MenuItem.Name,
			Image:      l.MenuItem.Image,
			Price:      l.MenuItem.Price,
			Quantity:   l.Quantity,
			Subtotal:   l.Subtotal(),
		})
	}
	return view
}

// GetCart handles GET /views/cart
func (h *CartHandler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": NewCartView(h.store.Cart())})
}

// AddLine handles POST /views/cart/lines
func (h *CartHandler) AddLine(c *gin.Context) {
	var req AddLineRequest
	if !bindJSON(c, &req) {
		return
	}
	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	if err := h.store.AddLine(c.Request.Context(), req.MenuID, quantity); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Added to cart",
		"data":    NewCartView(h.store.Cart()),
	})
}

// RemoveLine handles DELETE /views/cart/lines/:menuId
func (h *CartHandler) RemoveLine(c *gin.Context) {
	if err := h.store.RemoveLine(c.Request.Context(), c.Param("menuId")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Removed from cart",
		"data":    NewCartView(h.store.Cart()),
	})
}
