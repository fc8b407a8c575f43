package order

import (
	"errors"
	"strings"
	"time"

	"github.com/your-org/storefront-client/internal/domain/catalog"
)

// PaymentMethod is how the shopper pays for an order
type PaymentMethod string

const (
	PaymentAtHotel PaymentMethod = "Pay at hotel"
	PaymentOnline  PaymentMethod = "Online Payment"
)

var (
	ErrAddressRequired      = errors.New("please enter your address")
	ErrInvalidPaymentMethod = errors.New("unsupported payment method")
)

// PlaceOrderRequest is the body of POST /api/order/place
type PlaceOrderRequest struct {
	Address       string        `json:"address"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
}

// Normalize trims the address and applies the default payment method
func (r *PlaceOrderRequest) Normalize() {
	r.Address = strings.TrimSpace(r.Address)
	if r.PaymentMethod == "" {
		r.PaymentMethod = PaymentAtHotel
	}
}

// Validate checks the request after Normalize
func (r PlaceOrderRequest) Validate() error {
	if r.Address == "" {
		return ErrAddressRequired
	}
	switch r.PaymentMethod {
	case PaymentAtHotel, PaymentOnline:
		return nil
	default:
		return ErrInvalidPaymentMethod
	}
}

// Item is an ordered menu item
type Item struct {
	MenuItem catalog.MenuItem `json:"menuItem"`
	Quantity int              `json:"quantity"`
}

// Order is an order as returned by the API
type Order struct {
	ID            string        `json:"_id"`
	Items         []Item        `json:"items"`
	TotalAmount   catalog.Money `json:"totalAmount"`
	Address       string        `json:"address"`
	Status        string        `json:"status"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	IsPaid        bool          `json:"isPaid"`
	CreatedAt     time.Time     `json:"createdAt"`
}

// ShortID returns the last six characters of the order id, as shown to shoppers
func (o Order) ShortID() string {
	if len(o.ID) <= 6 {
		return o.ID
	}
	return o.ID[len(o.ID)-6:]
}
