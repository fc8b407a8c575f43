package store

import (
	"context"

	"github.com/your-org/storefront-client/internal/domain/booking"
	"github.com/your-org/storefront-client/internal/domain/order"
	"github.com/your-org/storefront-client/internal/infrastructure/api"
)

// PlaceOrder orders the current cart. The server empties its cart on
// success, so the local cart is refetched afterwards.
func (s *Store) PlaceOrder(ctx context.Context, req order.PlaceOrderRequest) error {
	if s.shopper() == nil {
		return ErrUnauthenticated
	}
	if s.Cart().IsEmpty() {
		return ErrEmptyCart
	}

	req.Normalize()
	if err := req.Validate(); err != nil {
		return err
	}

	res := s.backend.PlaceOrder(ctx, req)
	if err := s.sessionError(ctx, "place order", res.Status, resultError("place order", res)); err != nil {
		return err
	}

	s.FetchCart(ctx)
	return nil
}

// BookTable books a table for the signed-in shopper
func (s *Store) BookTable(ctx context.Context, req booking.Request) error {
	if s.shopper() == nil {
		return ErrUnauthenticated
	}

	req.Normalize()
	if err := req.Validate(); err != nil {
		return err
	}

	res := s.backend.CreateBooking(ctx, req)
	return s.sessionError(ctx, "book table", res.Status, resultError("book table", res))
}

// MyOrders lists the shopper's orders
func (s *Store) MyOrders(ctx context.Context) ([]order.Order, error) {
	if s.shopper() == nil {
		return nil, ErrUnauthenticated
	}

	res := s.backend.MyOrders(ctx)
	if err := s.sessionError(ctx, "list orders", res.Status, resultError("list orders", res)); err != nil {
		return nil, err
	}
	if res.Data == nil {
		return []order.Order{}, nil
	}
	return res.Data, nil
}

// MyBookings lists the shopper's table bookings
func (s *Store) MyBookings(ctx context.Context) ([]booking.Booking, error) {
	if s.shopper() == nil {
		return nil, ErrUnauthenticated
	}

	res := s.backend.MyBookings(ctx)
	if err := s.sessionError(ctx, "list bookings", res.Status, resultError("list bookings", res)); err != nil {
		return nil, err
	}
	if res.Data == nil {
		return []booking.Booking{}, nil
	}
	return res.Data, nil
}

// sessionError signs the shopper out when the server reports the session
// gone, and otherwise passes err through.
func (s *Store) sessionError(ctx context.Context, op string, status api.Status, err error) error {
	if status == api.StatusUnauthorized {
		s.logger.WithField("op", op).Info("Session expired, signing shopper out")
		s.SetShopper(ctx, nil)
	}
	return err
}
