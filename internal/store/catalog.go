package store

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-client/internal/domain/catalog"
	"github.com/your-org/storefront-client/internal/infrastructure/api"
	"golang.org/x/sync/errgroup"
)

// RefreshCatalog refetches categories and menu items concurrently
func (s *Store) RefreshCatalog(ctx context.Context) (categories, menuItems api.Status) {
	var g errgroup.Group
	g.Go(func() error {
		categories = s.RefreshCategories(ctx)
		return nil
	})
	g.Go(func() error {
		menuItems = s.RefreshMenuItems(ctx)
		return nil
	})
	_ = g.Wait()
	return categories, menuItems
}

// RefreshCategories replaces the category list with a fresh fetch. On any
// failure the previous list is kept and the failure is only logged.
func (s *Store) RefreshCategories(ctx context.Context) api.Status {
	res := s.backend.Categories(ctx)
	if !res.OK() {
		s.logCatalogFailure("categories", res.Status, res.Message, res.Err)
		return res.Status
	}

	next := res.Data
	if next == nil {
		next = []catalog.Category{}
	}
	s.commit(EventCategories, func() bool {
		s.categories = next
		return true
	})
	return res.Status
}

// RefreshMenuItems replaces the menu item list with a fresh fetch. On any
// failure the previous list is kept and the failure is only logged.
func (s *Store) RefreshMenuItems(ctx context.Context) api.Status {
	res := s.backend.MenuItems(ctx)
	if !res.OK() {
		s.logCatalogFailure("menu items", res.Status, res.Message, res.Err)
		return res.Status
	}

	next := res.Data
	if next == nil {
		next = []catalog.MenuItem{}
	}
	s.commit(EventMenuItems, func() bool {
		s.menuItems = next
		return true
	})
	return res.Status
}

func (s *Store) logCatalogFailure(what string, status api.Status, message string, err error) {
	entry := s.logger.WithFields(logrus.Fields{
		"catalog": what,
		"status":  status.String(),
	})
	if message != "" {
		entry = entry.WithField("message", message)
	}
	if err != nil {
		entry = entry.WithError(err)
	}
	entry.Warn("Failed to fetch catalog")
}
