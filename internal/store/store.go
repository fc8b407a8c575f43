// Package store holds the single process-wide client state: the session,
// the catalog cache, and the shopper's cart. Views read consistent snapshots
// and change state only through the Store's methods.
package store

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-client/internal/domain/booking"
	"github.com/your-org/storefront-client/internal/domain/cart"
	"github.com/your-org/storefront-client/internal/domain/catalog"
	"github.com/your-org/storefront-client/internal/domain/order"
	"github.com/your-org/storefront-client/internal/domain/session"
	"github.com/your-org/storefront-client/internal/infrastructure/api"
)

// Backend is the storefront API as seen by the Store.
type Backend interface {
	IsAuth(ctx context.Context) api.Result[session.Identity]
	IsAdminAuth(ctx context.Context) api.Result[session.Identity]
	Categories(ctx context.Context) api.Result[[]catalog.Category]
	MenuItems(ctx context.Context) api.Result[[]catalog.MenuItem]
	Cart(ctx context.Context) api.Result[cart.Cart]
	AddToCart(ctx context.Context, menuID string, quantity int) api.Result[api.None]
	RemoveFromCart(ctx context.Context, menuID string) api.Result[api.None]

	Login(ctx context.Context, creds api.Credentials) api.Result[session.Identity]
	Register(ctx context.Context, reg api.Registration) api.Result[api.None]
	Logout(ctx context.Context) api.Result[api.None]
	AdminLogin(ctx context.Context, creds api.Credentials) api.Result[session.Identity]

	PlaceOrder(ctx context.Context, req order.PlaceOrderRequest) api.Result[api.None]
	MyOrders(ctx context.Context) api.Result[[]order.Order]
	CreateBooking(ctx context.Context, req booking.Request) api.Result[api.None]
	MyBookings(ctx context.Context) api.Result[[]booking.Booking]
}

// EventKind names the part of the state a write changed
type EventKind string

const (
	EventSession    EventKind = "session"
	EventCategories EventKind = "categories"
	EventMenuItems  EventKind = "menu_items"
	EventCart       EventKind = "cart"
)

// Event is published after every committed write
type Event struct {
	Kind     EventKind `json:"kind"`
	Snapshot Snapshot  `json:"snapshot"`
}

// Snapshot is a consistent view of the whole state at one version. Its
// slices are shared with the Store and must be treated as read-only.
type Snapshot struct {
	Version    uint64             `json:"version"`
	Session    session.Session    `json:"session"`
	Gate       session.Gate       `json:"gate"`
	Categories []catalog.Category `json:"categories"`
	MenuItems  []catalog.MenuItem `json:"menuItems"`
	Cart       cart.Cart          `json:"-"`
}

// CategoryIndex indexes the snapshot's categories by id
func (s Snapshot) CategoryIndex() catalog.Index {
	return catalog.NewIndex(s.Categories)
}

// Store is the shared state container. Create exactly one per application
// with New and pass it to every consumer.
type Store struct {
	backend Backend
	logger  *logrus.Logger

	mu         sync.RWMutex
	version    uint64
	session    session.Session
	categories []catalog.Category
	menuItems  []catalog.MenuItem
	cart       cart.Cart
	subs       map[chan Event]struct{}

	// Bumped by every SetShopper/SetAdmin so Resolve can tell that an
	// identity was set after its checks were dispatched.
	shopperGen uint64
	adminGen   uint64

	resolveOnce sync.Once

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates the Store in its initial state: session resolving, empty
// catalog, empty cart.
func New(backend Backend, logger *logrus.Logger) *Store {
	ctx, cancel := context.WithCancel(context.Background())
	return &Store{
		backend:    backend,
		logger:     logger,
		session:    session.New(),
		categories: []catalog.Category{},
		menuItems:  []catalog.MenuItem{},
		cart:       cart.Empty(),
		subs:       make(map[chan Event]struct{}),
		ctx:        ctx,
		cancel:     cancel,
	}
}

// Snapshot returns the current state
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() Snapshot {
	sess := s.session
	sess.Shopper = cloneIdentity(sess.Shopper)
	sess.Admin = cloneIdentity(sess.Admin)

	return Snapshot{
		Version:    s.version,
		Session:    sess,
		Gate:       sess.AdminGate(),
		Categories: s.categories,
		MenuItems:  s.menuItems,
		Cart:       s.cart,
	}
}

// Subscribe registers for change events. The channel holds at most one
// pending event; a slow reader only ever misses intermediate snapshots, never
// the latest one. Call the returned func to unsubscribe.
func (s *Store) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, 1)

	s.mu.Lock()
	s.subs[ch] = struct{}{}
	s.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, ch)
			s.mu.Unlock()
		})
	}
}

// commit applies mutate under the write lock. When mutate reports a change
// the version is bumped and subscribers are notified before the lock is
// released, so events are delivered in commit order.
func (s *Store) commit(kind EventKind, mutate func() bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !mutate() {
		return false
	}
	s.version++

	ev := Event{Kind: kind, Snapshot: s.snapshotLocked()}
	for ch := range s.subs {
		select {
		case ch <- ev:
		default:
			// Replace the stale pending event with the newest one.
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- ev:
			default:
			}
		}
	}
	return true
}

// SetShopper replaces the shopper identity. Going from absent to present (or
// to a different shopper) fetches the cart before returning; going to absent
// clears the cart locally without a network call.
func (s *Store) SetShopper(ctx context.Context, id *session.Identity) {
	if s.applyShopper(id) {
		s.FetchCart(ctx)
	}
}

// applyShopper commits the new shopper and reports whether the cart must be
// refetched.
func (s *Store) applyShopper(id *session.Identity) bool {
	next := cloneIdentity(id)
	refetch := false

	s.commit(EventSession, func() bool {
		s.shopperGen++
		prev := s.session.Shopper
		if session.SameIdentity(prev, next) && identityEqual(prev, next) {
			return false
		}
		s.session.Shopper = next
		if next == nil {
			s.cart = cart.Empty()
		} else if !session.SameIdentity(prev, next) {
			// The previous shopper's lines must not show under the new one.
			s.cart = cart.Empty()
			refetch = true
		}
		return true
	})

	return refetch
}

// SetAdmin replaces the admin identity
func (s *Store) SetAdmin(id *session.Identity) {
	next := cloneIdentity(id)
	s.commit(EventSession, func() bool {
		s.adminGen++
		if identityEqual(s.session.Admin, next) {
			return false
		}
		s.session.Admin = next
		return true
	})
}

// Close cancels background work and waits for it to finish
func (s *Store) Close() {
	s.cancel()
	s.wg.Wait()
}

// Wait blocks until background work started so far has finished
func (s *Store) Wait() {
	s.wg.Wait()
}

// background runs fn on its own goroutine, detached from any request
// context but bound to the Store's lifetime.
func (s *Store) background(fn func(ctx context.Context)) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		fn(s.ctx)
	}()
}

func (s *Store) shopper() *session.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneIdentity(s.session.Shopper)
}

func cloneIdentity(id *session.Identity) *session.Identity {
	if id == nil {
		return nil
	}
	c := *id
	return &c
}

func identityEqual(a, b *session.Identity) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
