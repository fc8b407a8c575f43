package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-client/internal/config"
	"github.com/your-org/storefront-client/internal/domain/order"
	"github.com/your-org/storefront-client/internal/pkg/logger"
)

func newTestClient(t *testing.T, setup func(r *gin.Engine)) *Client {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	setup(r)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	c, err := NewClient(config.APIConfig{BaseURL: srv.URL, RequestTimeout: 2 * time.Second}, logger.Discard())
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return c
}

func TestIsAuthSuccessAndCookies(t *testing.T) {
	c := newTestClient(t, func(r *gin.Engine) {
		r.POST("/api/auth/login", func(ctx *gin.Context) {
			ctx.SetCookie("token", "abc", 3600, "/", "", false, true)
			ctx.JSON(http.StatusOK, gin.H{"success": true, "user": gin.H{"_id": "u1", "name": "Ana", "email": "ana@example.com"}})
		})
		r.GET("/api/auth/is-auth", func(ctx *gin.Context) {
			if _, err := ctx.Cookie("token"); err != nil {
				ctx.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Not authorized"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"success": true, "user": gin.H{"_id": "u1", "name": "Ana", "email": "ana@example.com"}})
		})
	})
	ctx := context.Background()

	before := c.IsAuth(ctx)
	if before.Status != StatusUnauthorized || before.Message != "Not authorized" {
		t.Fatalf("IsAuth before login = %+v", before)
	}

	login := c.Login(ctx, Credentials{Email: "ana@example.com", Password: "pw"})
	if login.Status != StatusOK || login.Data.ID != "u1" {
		t.Fatalf("Login = %+v", login)
	}

	after := c.IsAuth(ctx)
	if after.Status != StatusOK || after.Data.Name != "Ana" {
		t.Fatalf("IsAuth after login = %+v", after)
	}
}

func TestResultClassification(t *testing.T) {
	c := newTestClient(t, func(r *gin.Engine) {
		r.GET("/api/category/all", func(ctx *gin.Context) {
			ctx.JSON(http.StatusOK, gin.H{"success": false, "message": "db down"})
		})
		r.GET("/api/menu/all", func(ctx *gin.Context) {
			ctx.String(http.StatusBadGateway, "<html>bad gateway</html>")
		})
		r.GET("/api/cart/get", func(ctx *gin.Context) {
			ctx.JSON(http.StatusOK, gin.H{"success": true, "cart": nil})
		})
		r.POST("/api/cart/add", func(ctx *gin.Context) {
			ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Menu item not found"})
		})
		r.GET("/api/order/my-orders", func(ctx *gin.Context) {
			ctx.String(http.StatusOK, "not json")
		})
	})
	ctx := context.Background()

	if res := c.Categories(ctx); res.Status != StatusRejected || res.Message != "db down" {
		t.Errorf("Categories = %+v, want rejected", res)
	}
	if res := c.MenuItems(ctx); res.Status != StatusTransient || !IsStatus(res.Err, http.StatusBadGateway) {
		t.Errorf("MenuItems = %+v, want transient 502", res)
	}
	if res := c.Cart(ctx); res.Status != StatusEmpty || !res.Data.IsEmpty() {
		t.Errorf("Cart = %+v, want empty", res)
	}
	if res := c.AddToCart(ctx, "m1", 1); res.Status != StatusRejected || res.Message != "Menu item not found" {
		t.Errorf("AddToCart = %+v, want rejected", res)
	}
	if res := c.MyOrders(ctx); res.Status != StatusTransient {
		t.Errorf("MyOrders = %+v, want transient", res)
	}
}

func TestTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c, err := NewClient(config.APIConfig{BaseURL: url, RequestTimeout: time.Second}, logger.Discard())
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	res := c.IsAdminAuth(context.Background())
	if res.Status != StatusTransient || res.Err == nil {
		t.Errorf("IsAdminAuth = %+v, want transient", res)
	}
}

func TestCartDecoding(t *testing.T) {
	c := newTestClient(t, func(r *gin.Engine) {
		r.GET("/api/cart/get", func(ctx *gin.Context) {
			ctx.Data(http.StatusOK, "application/json", []byte(`{
				"success": true,
				"cart": {"items": [
					{"menuItem": {"_id": "m1", "name": "Cake", "price": 10}, "quantity": 2},
					{"menuItem": null, "quantity": 4},
					{"menuItem": {"_id": "m2", "name": "Tea", "price": 5}, "quantity": 1}
				]}
			}`))
		})
	})

	res := c.Cart(context.Background())
	if res.Status != StatusOK {
		t.Fatalf("Cart = %+v", res)
	}
	if res.Data.Len() != 2 {
		t.Errorf("lines = %d, want 2", res.Data.Len())
	}
	if got := res.Data.Totals(); got.Price != 2500 || got.ItemCount != 3 {
		t.Errorf("totals = %+v, want 25.00 / 3", got)
	}
}

func TestRequestBodiesAndPaths(t *testing.T) {
	var gotMenuID string
	var gotAdd addToCartRequest
	var gotOrder order.PlaceOrderRequest
	var requestID string

	c := newTestClient(t, func(r *gin.Engine) {
		r.POST("/api/cart/add", func(ctx *gin.Context) {
			requestID = ctx.GetHeader("X-Request-ID")
			_ = ctx.ShouldBindJSON(&gotAdd)
			ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "Added to cart"})
		})
		r.DELETE("/api/cart/remove/:menuId", func(ctx *gin.Context) {
			gotMenuID = ctx.Param("menuId")
			ctx.JSON(http.StatusOK, gin.H{"success": true})
		})
		r.POST("/api/order/place", func(ctx *gin.Context) {
			_ = ctx.ShouldBindJSON(&gotOrder)
			ctx.JSON(http.StatusOK, gin.H{"success": true})
		})
	})
	ctx := context.Background()

	if res := c.AddToCart(ctx, "m9", 2); res.Status != StatusEmpty || res.Message != "Added to cart" {
		t.Errorf("AddToCart = %+v", res)
	}
	if gotAdd.MenuID != "m9" || gotAdd.Quantity != 2 {
		t.Errorf("add body = %+v", gotAdd)
	}
	if requestID == "" {
		t.Errorf("missing X-Request-ID header")
	}

	c.RemoveFromCart(ctx, "m9")
	if gotMenuID != "m9" {
		t.Errorf("remove path id = %q", gotMenuID)
	}

	c.PlaceOrder(ctx, order.PlaceOrderRequest{Address: "1 Main St", PaymentMethod: order.PaymentOnline})
	if gotOrder.Address != "1 Main St" || gotOrder.PaymentMethod != order.PaymentOnline {
		t.Errorf("order body = %+v", gotOrder)
	}
}
