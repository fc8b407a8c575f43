package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/your-org/storefront-client/internal/domain/booking"
	"github.com/your-org/storefront-client/internal/domain/cart"
	"github.com/your-org/storefront-client/internal/domain/catalog"
	"github.com/your-org/storefront-client/internal/domain/order"
	"github.com/your-org/storefront-client/internal/domain/session"
)

// Credentials is the body of the login endpoints
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the body of POST /api/auth/register
type Registration struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// None is the payload type of calls that return only a message
type None struct{}

type addToCartRequest struct {
	MenuID   string `json:"menuId"`
	Quantity int    `json:"quantity"`
}

type wireCart struct {
	Items []cart.Line `json:"items"`
}

// IsAuth asks whether the cookie jar holds a shopper session
func (c *Client) IsAuth(ctx context.Context) Result[session.Identity] {
	return call[session.Identity](ctx, c, http.MethodGet, "/api/auth/is-auth", nil, "user")
}

// IsAdminAuth asks whether the cookie jar holds an admin session
func (c *Client) IsAdminAuth(ctx context.Context) Result[session.Identity] {
	return call[session.Identity](ctx, c, http.MethodGet, "/api/auth/is-admin-auth", nil, "admin")
}

// Login starts a shopper session
func (c *Client) Login(ctx context.Context, creds Credentials) Result[session.Identity] {
	return call[session.Identity](ctx, c, http.MethodPost, "/api/auth/login", creds, "user")
}

// Register creates a shopper account without logging in
func (c *Client) Register(ctx context.Context, reg Registration) Result[None] {
	return call[None](ctx, c, http.MethodPost, "/api/auth/register", reg, "")
}

// Logout ends the shopper session
func (c *Client) Logout(ctx context.Context) Result[None] {
	return call[None](ctx, c, http.MethodPost, "/api/auth/logout", nil, "")
}

// AdminLogin starts an admin session
func (c *Client) AdminLogin(ctx context.Context, creds Credentials) Result[session.Identity] {
	return call[session.Identity](ctx, c, http.MethodPost, "/api/auth/admin/login", creds, "admin")
}

// Categories fetches every category
func (c *Client) Categories(ctx context.Context) Result[[]catalog.Category] {
	return call[[]catalog.Category](ctx, c, http.MethodGet, "/api/category/all", nil, "categories")
}

// MenuItems fetches every menu item
func (c *Client) MenuItems(ctx context.Context) Result[[]catalog.MenuItem] {
	return call[[]catalog.MenuItem](ctx, c, http.MethodGet, "/api/menu/all", nil, "menuItems")
}

// Cart fetches the shopper's cart. A missing cart is reported as StatusEmpty
// with the empty cart as data.
func (c *Client) Cart(ctx context.Context) Result[cart.Cart] {
	raw := call[wireCart](ctx, c, http.MethodGet, "/api/cart/get", nil, "cart")

	res := Result[cart.Cart]{Status: raw.Status, Message: raw.Message, Err: raw.Err, Data: cart.Empty()}
	if raw.Status != StatusOK {
		return res
	}

	lines := make([]cart.Line, 0, len(raw.Data.Items))
	for _, l := range raw.Data.Items {
		// Lines whose menu item was deleted come back unpopulated.
		if l.MenuItem.ID == "" {
			continue
		}
		lines = append(lines, l)
	}
	res.Data = cart.New(lines)
	return res
}

// AddToCart adds quantity of a menu item to the server-side cart
func (c *Client) AddToCart(ctx context.Context, menuID string, quantity int) Result[None] {
	body := addToCartRequest{MenuID: menuID, Quantity: quantity}
	return call[None](ctx, c, http.MethodPost, "/api/cart/add", body, "")
}

// RemoveFromCart removes a menu item from the server-side cart
func (c *Client) RemoveFromCart(ctx context.Context, menuID string) Result[None] {
	return call[None](ctx, c, http.MethodDelete, "/api/cart/remove/"+url.PathEscape(menuID), nil, "")
}

// PlaceOrder turns the server-side cart into an order
func (c *Client) PlaceOrder(ctx context.Context, req order.PlaceOrderRequest) Result[None] {
	return call[None](ctx, c, http.MethodPost, "/api/order/place", req, "")
}

// MyOrders lists the shopper's orders
func (c *Client) MyOrders(ctx context.Context) Result[[]order.Order] {
	return call[[]order.Order](ctx, c, http.MethodGet, "/api/order/my-orders", nil, "orders")
}

// CreateBooking books a table
func (c *Client) CreateBooking(ctx context.Context, req booking.Request) Result[None] {
	return call[None](ctx, c, http.MethodPost, "/api/booking/create", req, "")
}

// MyBookings lists the shopper's table bookings
func (c *Client) MyBookings(ctx context.Context) Result[[]booking.Booking] {
	return call[[]booking.Booking](ctx, c, http.MethodGet, "/api/booking/my-bookings", nil, "bookings")
}
