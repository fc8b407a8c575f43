package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-client/internal/domain/cart"
	"github.com/your-org/storefront-client/internal/domain/session"
	"github.com/your-org/storefront-client/internal/pkg/auth"
	"github.com/your-org/storefront-client/internal/store"
)

// CookieSource exposes the session cookies held for the upstream API
type CookieSource interface {
	Cookies() []*http.Cookie
}

// SessionHandler serves the session and admin gate views
type SessionHandler struct {
	store   *store.Store
	tokens  *auth.TokenInspector
	cookies CookieSource
}

// NewSessionHandler creates a new session handler. cookies may be nil.
func NewSessionHandler(st *store.Store, tokens *auth.TokenInspector, cookies CookieSource) *SessionHandler {
	return &SessionHandler{store: st, tokens: tokens, cookies: cookies}
}

type sessionView struct {
	Session session.Session `json:"session"`
	Gate    session.Gate    `json:"gate"`
	Cart    cart.Totals     `json:"cart"`
	Token   auth.TokenInfo  `json:"token"`
	Version uint64          `json:"version"`
}

// GetSession handles GET /views/session
func (h *SessionHandler) GetSession(c *gin.Context) {
	snap := h.store.Snapshot()

	view := sessionView{
		Session: snap.Session,
		Gate:    snap.Gate,
		Cart:    snap.Cart.Totals(),
		Version: snap.Version,
	}
	if h.tokens != nil && h.cookies != nil {
		view.Token = h.tokens.Inspect(h.cookies.Cookies())
	}

	c.JSON(http.StatusOK, gin.H{"data": view})
}

// GetAdminView handles GET /views/admin. While the startup checks are in
// flight it answers "checking", never "login".
func (h *SessionHandler) GetAdminView(c *gin.Context) {
	snap := h.store.Snapshot()

	view := "login"
	switch snap.Gate {
	case session.GateChecking:
		view = "checking"
	case session.GateAuthenticated:
		view = "dashboard"
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"view":  view,
			"gate":  snap.Gate,
			"admin": snap.Session.Admin,
		},
	})
}
