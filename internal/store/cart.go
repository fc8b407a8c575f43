package store

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-client/internal/domain/cart"
	"github.com/your-org/storefront-client/internal/domain/session"
	"github.com/your-org/storefront-client/internal/infrastructure/api"
)

// Cart returns the current cart with its totals
func (s *Store) Cart() cart.Cart {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cart
}

// RefreshCart is the refetch trigger for the cart
func (s *Store) RefreshCart(ctx context.Context) api.Status {
	return s.FetchCart(ctx)
}

// FetchCart replaces the cart with the server's copy. Anything other than a
// successful fetch leaves the cart empty. Without a shopper no request is
// made. A response that arrives after the shopper changed is discarded.
func (s *Store) FetchCart(ctx context.Context) api.Status {
	owner := s.shopper()
	if owner == nil {
		s.clearCart()
		return api.StatusEmpty
	}

	res := s.backend.Cart(ctx)

	next := cart.Empty()
	if res.Status == api.StatusOK {
		next = res.Data
	} else if res.Status != api.StatusEmpty {
		entry := s.logger.WithFields(logrus.Fields{
			"status":  res.Status.String(),
			"shopper": owner.ID,
		})
		if res.Err != nil {
			entry = entry.WithError(res.Err)
		}
		entry.Warn("Failed to fetch cart, resetting to empty")
	}

	s.commit(EventCart, func() bool {
		if !session.SameIdentity(s.session.Shopper, owner) {
			return false
		}
		s.cart = next
		return true
	})
	return res.Status
}

// AddLine adds quantity of a menu item to the cart, then resynchronizes from
// the server rather than merging locally.
func (s *Store) AddLine(ctx context.Context, menuItemID string, quantity int) error {
	if s.shopper() == nil {
		return ErrUnauthenticated
	}
	menuItemID = strings.TrimSpace(menuItemID)
	if menuItemID == "" {
		return ErrMissingMenuItem
	}
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	res := s.backend.AddToCart(ctx, menuItemID, quantity)
	if err := s.cartMutationError(ctx, "add to cart", res); err != nil {
		return err
	}

	s.FetchCart(ctx)
	return nil
}

// RemoveLine removes a menu item from the cart. Removing an item that is not
// in the cart is not an error.
func (s *Store) RemoveLine(ctx context.Context, menuItemID string) error {
	if s.shopper() == nil {
		return ErrUnauthenticated
	}
	menuItemID = strings.TrimSpace(menuItemID)
	if menuItemID == "" {
		return ErrMissingMenuItem
	}

	res := s.backend.RemoveFromCart(ctx, menuItemID)
	err := s.cartMutationError(ctx, "remove from cart", res)

	var rejected *RejectedError
	if errors.As(err, &rejected) {
		if _, present := s.Cart().Line(menuItemID); !present {
			return nil
		}
	}
	if err != nil {
		return err
	}

	s.FetchCart(ctx)
	return nil
}

// cartMutationError maps a mutation result to the store's errors. An expired
// session signs the shopper out locally.
func (s *Store) cartMutationError(ctx context.Context, op string, res api.Result[api.None]) error {
	return s.sessionError(ctx, op, res.Status, resultError(op, res))
}

func (s *Store) clearCart() {
	s.commit(EventCart, func() bool {
		if s.cart.IsEmpty() {
			return false
		}
		s.cart = cart.Empty()
		return true
	})
}
