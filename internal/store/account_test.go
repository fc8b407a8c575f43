package store

import (
	"context"
	"errors"
	"testing"

	"github.com/your-org/storefront-client/internal/domain/booking"
	"github.com/your-org/storefront-client/internal/domain/cart"
	"github.com/your-org/storefront-client/internal/domain/order"
	"github.com/your-org/storefront-client/internal/domain/session"
	"github.com/your-org/storefront-client/internal/infrastructure/api"
)

func TestLogin(t *testing.T) {
	b := newFakeBackend()
	b.login = okIdentity("u1")
	b.cart = cartOf(cart.Line{MenuItem: menuItem("m1", "Cake", 4), Quantity: 1})
	s := newTestStore(t, b)
	ctx := context.Background()

	if _, err := s.Login(ctx, api.Credentials{Email: " ", Password: "x"}); !errors.Is(err, ErrMissingCredentials) {
		t.Errorf("blank email: err = %v", err)
	}
	if b.count("Login") != 0 {
		t.Errorf("blank credentials reached the API")
	}

	id, err := s.Login(ctx, api.Credentials{Email: "u1@example.com", Password: "secret"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if id.ID != "u1" || s.Snapshot().Session.Shopper == nil {
		t.Errorf("shopper not set after login: %+v", id)
	}
	if s.Cart().Len() != 1 {
		t.Errorf("cart not loaded after login")
	}
}

func TestLoginRejected(t *testing.T) {
	b := newFakeBackend()
	b.login = api.Result[session.Identity]{Status: api.StatusUnauthorized}
	s := newTestStore(t, b)

	_, err := s.Login(context.Background(), api.Credentials{Email: "a@b.c", Password: "wrong"})
	var rejected *RejectedError
	if !errors.As(err, &rejected) {
		t.Fatalf("err = %v, want RejectedError", err)
	}
	if rejected.Message == "" {
		t.Errorf("rejection has no message")
	}
	if s.Snapshot().Session.Shopper != nil {
		t.Errorf("shopper set after failed login")
	}
}

func TestLoginWithoutPayloadAsksServer(t *testing.T) {
	b := newFakeBackend()
	b.login = api.Result[session.Identity]{Status: api.StatusEmpty}
	b.isAuth = okIdentity("u9")
	s := newTestStore(t, b)

	id, err := s.Login(context.Background(), api.Credentials{Email: "u9@example.com", Password: "pw"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if id.ID != "u9" || b.count("IsAuth") != 1 {
		t.Errorf("id = %+v, IsAuth calls = %d", id, b.count("IsAuth"))
	}
}

func TestLogout(t *testing.T) {
	for _, status := range []api.Status{api.StatusEmpty, api.StatusUnauthorized} {
		t.Run(status.String(), func(t *testing.T) {
			b := newFakeBackend()
			b.cart = cartOf(cart.Line{MenuItem: menuItem("m1", "Cake", 4), Quantity: 1})
			b.logout = api.Result[api.None]{Status: status}
			s := newTestStore(t, b)
			ctx := context.Background()
			s.SetShopper(ctx, identity("u1"))

			if err := s.Logout(ctx); err != nil {
				t.Fatalf("Logout: %v", err)
			}
			snap := s.Snapshot()
			if snap.Session.Shopper != nil || !snap.Cart.IsEmpty() {
				t.Errorf("logout left shopper/cart behind")
			}
		})
	}

	b := newFakeBackend()
	b.logout = api.Result[api.None]{Status: api.StatusTransient, Err: errors.New("down")}
	s := newTestStore(t, b)
	ctx := context.Background()
	s.SetShopper(ctx, identity("u1"))

	if err := s.Logout(ctx); err == nil {
		t.Errorf("transient logout returned nil")
	}
	if s.Snapshot().Session.Shopper == nil {
		t.Errorf("shopper cleared although the server did not confirm logout")
	}
}

func TestRegister(t *testing.T) {
	b := newFakeBackend()
	s := newTestStore(t, b)
	ctx := context.Background()

	if err := s.Register(ctx, api.Registration{Email: "x@y.z", Password: "p"}); !errors.Is(err, ErrMissingCredentials) {
		t.Errorf("missing name: err = %v", err)
	}
	if err := s.Register(ctx, api.Registration{Name: "X", Email: "x@y.z", Password: "p"}); err != nil {
		t.Errorf("Register: %v", err)
	}
	if s.Snapshot().Session.Shopper != nil {
		t.Errorf("register signed the shopper in")
	}

	b.set(func(f *fakeBackend) {
		f.register = api.Result[api.None]{Status: api.StatusRejected, Message: "User already exists"}
	})
	var rejected *RejectedError
	if err := s.Register(ctx, api.Registration{Name: "X", Email: "x@y.z", Password: "p"}); !errors.As(err, &rejected) {
		t.Errorf("duplicate: err = %v", err)
	}
}

func TestAdminLogin(t *testing.T) {
	b := newFakeBackend()
	b.adminLogin = okIdentity("a1")
	s := newTestStore(t, b)

	if _, err := s.AdminLogin(context.Background(), api.Credentials{Email: "admin@example.com", Password: "pw"}); err != nil {
		t.Fatalf("AdminLogin: %v", err)
	}
	sess := s.Snapshot().Session
	if sess.Admin == nil || sess.Shopper != nil {
		t.Errorf("session = %+v, want admin only", sess)
	}
}

func TestPlaceOrder(t *testing.T) {
	b := newFakeBackend()
	s := newTestStore(t, b)
	ctx := context.Background()

	if err := s.PlaceOrder(ctx, order.PlaceOrderRequest{Address: "Room 12"}); !errors.Is(err, ErrUnauthenticated) {
		t.Errorf("no shopper: err = %v", err)
	}

	s.SetShopper(ctx, identity("u1"))
	if err := s.PlaceOrder(ctx, order.PlaceOrderRequest{Address: "Room 12"}); !errors.Is(err, ErrEmptyCart) {
		t.Errorf("empty cart: err = %v", err)
	}

	b.set(func(f *fakeBackend) {
		f.cart = cartOf(cart.Line{MenuItem: menuItem("m1", "Cake", 4), Quantity: 1})
	})
	s.FetchCart(ctx)

	if err := s.PlaceOrder(ctx, order.PlaceOrderRequest{Address: "  "}); !errors.Is(err, order.ErrAddressRequired) {
		t.Errorf("blank address: err = %v", err)
	}
	if b.count("PlaceOrder") != 0 {
		t.Errorf("invalid order reached the API")
	}

	b.set(func(f *fakeBackend) {
		f.cart = api.Result[cart.Cart]{Status: api.StatusEmpty, Data: cart.Empty()}
	})
	if err := s.PlaceOrder(ctx, order.PlaceOrderRequest{Address: " Room 12 "}); err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}
	if b.lastOrder.Address != "Room 12" || b.lastOrder.PaymentMethod != order.PaymentAtHotel {
		t.Errorf("sent %+v", b.lastOrder)
	}
	if !s.Cart().IsEmpty() {
		t.Errorf("cart not resynced after ordering")
	}
}

func TestBookTable(t *testing.T) {
	b := newFakeBackend()
	s := newTestStore(t, b)
	ctx := context.Background()

	req := booking.Request{Name: "Asha", Phone: "555", NumberOfPeople: 2, Date: "2025-03-01", Time: "19:30"}
	if err := s.BookTable(ctx, req); !errors.Is(err, ErrUnauthenticated) {
		t.Errorf("no shopper: err = %v", err)
	}

	s.SetShopper(ctx, identity("u1"))

	bad := req
	bad.NumberOfPeople = 0
	if err := s.BookTable(ctx, bad); !errors.Is(err, booking.ErrInvalidGuests) {
		t.Errorf("zero guests: err = %v", err)
	}

	if err := s.BookTable(ctx, req); err != nil {
		t.Fatalf("BookTable: %v", err)
	}
	if b.lastBooking != req {
		t.Errorf("sent %+v", b.lastBooking)
	}
}

func TestMyOrdersExpiredSession(t *testing.T) {
	b := newFakeBackend()
	b.myOrders = api.Result[[]order.Order]{Status: api.StatusUnauthorized}
	s := newTestStore(t, b)
	ctx := context.Background()
	s.SetShopper(ctx, identity("u1"))

	if _, err := s.MyOrders(ctx); !errors.Is(err, ErrUnauthenticated) {
		t.Errorf("err = %v", err)
	}
	if s.Snapshot().Session.Shopper != nil {
		t.Errorf("shopper kept after 401")
	}
}

func TestMyBookingsEmpty(t *testing.T) {
	b := newFakeBackend()
	b.myBookings = api.Result[[]booking.Booking]{Status: api.StatusEmpty}
	s := newTestStore(t, b)
	ctx := context.Background()
	s.SetShopper(ctx, identity("u1"))

	got, err := s.MyBookings(ctx)
	if err != nil || got == nil || len(got) != 0 {
		t.Errorf("MyBookings = %v, %v; want empty non-nil", got, err)
	}
}
