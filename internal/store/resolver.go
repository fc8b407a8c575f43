package store

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-client/internal/domain/cart"
	"github.com/your-org/storefront-client/internal/domain/session"
	"github.com/your-org/storefront-client/internal/infrastructure/api"
	"golang.org/x/sync/errgroup"
)

// Resolve runs the startup session checks. The shopper and admin checks are
// dispatched together and both must settle before the session leaves the
// resolving state; both identities and the end of resolution are committed in
// one write. A failed check means "not authenticated" and is only logged.
// An identity set through SetShopper or SetAdmin while the checks were in
// flight is newer than the check result and is kept.
//
// Once resolved, catalog population and the initial cart fetch continue in
// the background. Only the first call does any work; later calls return the
// current session.
func (s *Store) Resolve(ctx context.Context) session.Session {
	s.resolveOnce.Do(func() {
		start := time.Now()

		s.mu.RLock()
		shopperGen, adminGen := s.shopperGen, s.adminGen
		s.mu.RUnlock()

		var shopper, admin *session.Identity
		var g errgroup.Group
		g.Go(func() error {
			shopper = s.checkIdentity(ctx, "shopper", s.backend.IsAuth)
			return nil
		})
		g.Go(func() error {
			admin = s.checkIdentity(ctx, "admin", s.backend.IsAdminAuth)
			return nil
		})
		_ = g.Wait()

		var fetchCart bool
		var resolved session.Session
		s.commit(EventSession, func() bool {
			if s.shopperGen == shopperGen {
				s.session.Shopper = shopper
				if shopper == nil {
					s.cart = cart.Empty()
				}
				fetchCart = shopper != nil
			}
			if s.adminGen == adminGen {
				s.session.Admin = admin
			}
			s.session.Resolving = false
			resolved = s.session
			return true
		})

		s.logger.WithFields(logrus.Fields{
			"shopper":  resolved.Shopper != nil,
			"admin":    resolved.Admin != nil,
			"duration": time.Since(start),
		}).Info("Session resolved")

		s.background(func(ctx context.Context) {
			s.RefreshCatalog(ctx)
		})
		if fetchCart {
			s.background(func(ctx context.Context) {
				s.FetchCart(ctx)
			})
		}
	})

	return s.Snapshot().Session
}

func (s *Store) checkIdentity(ctx context.Context, role string, check func(context.Context) api.Result[session.Identity]) *session.Identity {
	res := check(ctx)
	entry := s.logger.WithFields(logrus.Fields{
		"role":   role,
		"status": res.Status.String(),
	})

	if res.Status != api.StatusOK || res.Data.ID == "" {
		if res.Status == api.StatusTransient {
			entry.WithError(res.Err).Warn("Session check failed, treating as signed out")
		} else {
			entry.Debug("No session")
		}
		return nil
	}

	id := res.Data
	return &id
}
