package store

import (
	"context"
	"sync"

	"github.com/your-org/storefront-client/internal/domain/booking"
	"github.com/your-org/storefront-client/internal/domain/cart"
	"github.com/your-org/storefront-client/internal/domain/catalog"
	"github.com/your-org/storefront-client/internal/domain/order"
	"github.com/your-org/storefront-client/internal/domain/session"
	"github.com/your-org/storefront-client/internal/infrastructure/api"
)

// fakeBackend is an in-memory Backend that records calls. Hooks, when set,
// run before the canned result is returned.
type fakeBackend struct {
	mu    sync.Mutex
	calls map[string]int

	isAuth      api.Result[session.Identity]
	isAdminAuth api.Result[session.Identity]
	categories  api.Result[[]catalog.Category]
	menuItems   api.Result[[]catalog.MenuItem]
	cart        api.Result[cart.Cart]
	addToCart   api.Result[api.None]
	removeLine  api.Result[api.None]
	login       api.Result[session.Identity]
	register    api.Result[api.None]
	logout      api.Result[api.None]
	adminLogin  api.Result[session.Identity]
	placeOrder  api.Result[api.None]
	myOrders    api.Result[[]order.Order]
	booking     api.Result[api.None]
	myBookings  api.Result[[]booking.Booking]

	onIsAuth      func()
	onIsAdminAuth func()
	onCart        func()

	lastOrder   order.PlaceOrderRequest
	lastBooking booking.Request
}

func newFakeBackend() *fakeBackend {
	unauth := api.Result[session.Identity]{Status: api.StatusUnauthorized}
	return &fakeBackend{
		calls:       map[string]int{},
		isAuth:      unauth,
		isAdminAuth: unauth,
		categories:  api.Result[[]catalog.Category]{Status: api.StatusOK, Data: []catalog.Category{}},
		menuItems:   api.Result[[]catalog.MenuItem]{Status: api.StatusOK, Data: []catalog.MenuItem{}},
		cart:        api.Result[cart.Cart]{Status: api.StatusEmpty, Data: cart.Empty()},
		addToCart:   api.Result[api.None]{Status: api.StatusEmpty},
		removeLine:  api.Result[api.None]{Status: api.StatusEmpty},
		register:    api.Result[api.None]{Status: api.StatusEmpty},
		logout:      api.Result[api.None]{Status: api.StatusEmpty},
		placeOrder:  api.Result[api.None]{Status: api.StatusEmpty},
		booking:     api.Result[api.None]{Status: api.StatusEmpty},
	}
}

func (f *fakeBackend) record(name string) {
	f.mu.Lock()
	f.calls[name]++
	f.mu.Unlock()
}

func (f *fakeBackend) count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeBackend) total() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		n += c
	}
	return n
}

func (f *fakeBackend) set(fn func(f *fakeBackend)) {
	f.mu.Lock()
	fn(f)
	f.mu.Unlock()
}

func (f *fakeBackend) IsAuth(ctx context.Context) api.Result[session.Identity] {
	f.record("IsAuth")
	if f.onIsAuth != nil {
		f.onIsAuth()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.isAuth
}

func (f *fakeBackend) IsAdminAuth(ctx context.Context) api.Result[session.Identity] {
	f.record("IsAdminAuth")
	if f.onIsAdminAuth != nil {
		f.onIsAdminAuth()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.isAdminAuth
}

func (f *fakeBackend) Categories(ctx context.Context) api.Result[[]catalog.Category] {
	f.record("Categories")
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.categories
}

func (f *fakeBackend) MenuItems(ctx context.Context) api.Result[[]catalog.MenuItem] {
	f.record("MenuItems")
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.menuItems
}

func (f *fakeBackend) Cart(ctx context.Context) api.Result[cart.Cart] {
	f.record("Cart")
	if f.onCart != nil {
		f.onCart()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cart
}

func (f *fakeBackend) AddToCart(ctx context.Context, menuID string, quantity int) api.Result[api.None] {
	f.record("AddToCart")
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.addToCart
}

func (f *fakeBackend) RemoveFromCart(ctx context.Context, menuID string) api.Result[api.None] {
	f.record("RemoveFromCart")
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.removeLine
}

func (f *fakeBackend) Login(ctx context.Context, creds api.Credentials) api.Result[session.Identity] {
	f.record("Login")
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.login
}

func (f *fakeBackend) Register(ctx context.Context, reg api.Registration) api.Result[api.None] {
	f.record("Register")
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.register
}

func (f *fakeBackend) Logout(ctx context.Context) api.Result[api.None] {
	f.record("Logout")
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.logout
}

func (f *fakeBackend) AdminLogin(ctx context.Context, creds api.Credentials) api.Result[session.Identity] {
	f.record("AdminLogin")
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.adminLogin
}

func (f *fakeBackend) PlaceOrder(ctx context.Context, req order.PlaceOrderRequest) api.Result[api.None] {
	f.record("PlaceOrder")
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastOrder = req
	return f.placeOrder
}

func (f *fakeBackend) MyOrders(ctx context.Context) api.Result[[]order.Order] {
	f.record("MyOrders")
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.myOrders
}

func (f *fakeBackend) CreateBooking(ctx context.Context, req booking.Request) api.Result[api.None] {
	f.record("CreateBooking")
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastBooking = req
	return f.booking
}

func (f *fakeBackend) MyBookings(ctx context.Context) api.Result[[]booking.Booking] {
	f.record("MyBookings")
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.myBookings
}

func identity(id string) *session.Identity {
	return &session.Identity{ID: id, Name: "Shopper " + id, Email: id + "@example.com"}
}

func okIdentity(id string) api.Result[session.Identity] {
	return api.Result[session.Identity]{Status: api.StatusOK, Data: *identity(id)}
}

func menuItem(id, name string, price float64) catalog.MenuItem {
	return catalog.MenuItem{ID: id, Name: name, Price: catalog.MoneyFromFloat(price)}
}

func cartOf(lines ...cart.Line) api.Result[cart.Cart] {
	return api.Result[cart.Cart]{Status: api.StatusOK, Data: cart.New(lines)}
}
