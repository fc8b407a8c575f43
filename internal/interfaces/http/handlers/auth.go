// internal/interfaces/http/handlers/auth.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-client/internal/infrastructure/api"
	"github.com/your-org/storefront-client/internal/store"
)

// AuthHandler handles shopper and admin sign-in
type AuthHandler struct {
	store *store.Store
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(st *store.Store) *AuthHandler {
	return &AuthHandler{store: st}
}

// Login handles POST /views/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req api.Credentials
	if !bindJSON(c, &req) {
		return
	}

	id, err := h.store.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"data": gin.H{
			"user": id,
			"cart": NewCartView(h.store.Cart()),
		},
	})
}

// Register handles POST /views/register. The shopper still has to log in.
func (h *AuthHandler) Register(c *gin.Context) {
	var req api.Registration
	if !bindJSON(c, &req) {
		return
	}

	if err := h.store.Register(c.Request.Context(), req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Account created, please login",
	})
}

// Logout handles POST /views/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.store.Logout(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out",
	})
}

// AdminLogin handles POST /views/admin/login
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req api.Credentials
	if !bindJSON(c, &req) {
		return
	}

	id, err := h.store.AdminLogin(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Admin login successful",
		"data":    gin.H{"admin": id},
	})
}
