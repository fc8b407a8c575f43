package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/your-org/storefront-client/internal/config"
	"github.com/your-org/storefront-client/internal/pkg/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIsOriginAllowed(t *testing.T) {
	allowed := []string{"http://localhost:5173", "*.example.com"}

	tests := []struct {
		origin string
		want   bool
	}{
		{"http://localhost:5173", true},
		{"http://localhost:3000", false},
		{"https://shop.example.com", true},
		{"https://evilexample.com", false},
	}
	for _, tt := range tests {
		if got := isOriginAllowed(tt.origin, allowed); got != tt.want {
			t.Errorf("isOriginAllowed(%q) = %v, want %v", tt.origin, got, tt.want)
		}
	}
	if !isOriginAllowed("https://anything.test", []string{"*"}) {
		t.Errorf("* did not allow every origin")
	}
}

func TestCORSPreflight(t *testing.T) {
	cfg := &config.Config{Security: config.SecurityConfig{
		CORSAllowedOrigins: []string{"http://localhost:5173"},
		CORSAllowedMethods: []string{"GET", "POST"},
		CORSAllowedHeaders: []string{"Content-Type"},
	}}
	r := gin.New()
	r.Use(CORS(cfg))
	r.GET("/views/cart", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/views/cart", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := serve(r, req)

	if w.Header().Get("Access-Control-Allow-Origin") != "http://localhost:5173" {
		t.Errorf("allow origin = %q", w.Header().Get("Access-Control-Allow-Origin"))
	}
	if w.Header().Get("Access-Control-Allow-Credentials") != "true" {
		t.Errorf("credentials not allowed")
	}

	req = httptest.NewRequest(http.MethodGet, "/views/cart", nil)
	req.Header.Set("Origin", "http://evil.test")
	w = serve(r, req)
	if w.Code != http.StatusForbidden {
		t.Errorf("disallowed origin status = %d, want 403", w.Code)
	}
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(RequestIDKey)) })

	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	id := w.Header().Get("X-Request-ID")
	if _, err := uuid.Parse(id); err != nil || w.Body.String() != id {
		t.Errorf("generated id %q, body %q", id, w.Body.String())
	}

	incoming := uuid.New().String()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", incoming)
	if got := serve(r, req).Header().Get("X-Request-ID"); got != incoming {
		t.Errorf("incoming id not reused: %q", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "<script>")
	if got := serve(r, req).Header().Get("X-Request-ID"); got == "<script>" {
		t.Errorf("malformed id echoed back")
	}
}

type fakeLimiter struct {
	remaining int
	allowed   bool
	err       error
	keys      []string
}

func (f *fakeLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (int, bool, error) {
	f.keys = append(f.keys, key)
	return f.remaining, f.allowed, f.err
}

func TestRateLimit(t *testing.T) {
	cfg := &config.Config{Security: config.SecurityConfig{RateLimitPerMinute: 10}}

	tests := []struct {
		name     string
		limiter  *fakeLimiter
		wantCode int
	}{
		{"allowed", &fakeLimiter{remaining: 9, allowed: true}, http.StatusOK},
		{"exceeded", &fakeLimiter{allowed: false}, http.StatusTooManyRequests},
		{"limiter down", &fakeLimiter{err: errors.New("dial tcp: refused")}, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(RateLimit(cfg, tt.limiter, logger.Discard()))
			r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

			w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
			if w.Code != tt.wantCode {
				t.Errorf("status = %d, want %d", w.Code, tt.wantCode)
			}
			if len(tt.limiter.keys) != 1 {
				t.Errorf("limiter consulted %d times", len(tt.limiter.keys))
			}
		})
	}

	r := gin.New()
	r.Use(RateLimit(cfg, nil, logger.Discard()))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })
	if w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil)); w.Code != http.StatusOK {
		t.Errorf("nil limiter status = %d", w.Code)
	}
}

func TestTimeoutSetsDeadline(t *testing.T) {
	r := gin.New()
	r.Use(Timeout(time.Second))
	r.GET("/", func(c *gin.Context) {
		if _, ok := c.Request.Context().Deadline(); !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.Status(http.StatusOK)
	})

	if w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil)); w.Code != http.StatusOK {
		t.Errorf("no deadline on request context")
	}
}

func TestRequestSizeLimit(t *testing.T) {
	r := gin.New()
	r.Use(RequestSizeLimit(8))
	r.POST("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := serve(r, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"quantity": 1000000}`)))
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("status = %d, want 413", w.Code)
	}
}
