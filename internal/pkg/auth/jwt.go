// internal/pkg/auth/jwt.go
package auth

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/your-org/storefront-client/internal/config"
)

// Claims is the part of the API's session token the client can read. The
// signing key stays on the server, so nothing here is trusted for access
// decisions; the server's is-auth answer remains authoritative.
type Claims struct {
	ID string `json:"id"`
	jwt.RegisteredClaims
}

// TokenInfo describes the session cookie currently held by the client
type TokenInfo struct {
	Present   bool       `json:"present"`
	Subject   string     `json:"subject,omitempty"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
	Expired   bool       `json:"expired"`
}

// TokenInspector reads the session token cookie without verifying it
type TokenInspector struct {
	cookieName string
	parser     *jwt.Parser
	now        func() time.Time
}

// NewTokenInspector creates an inspector for the configured cookie name
func NewTokenInspector(cfg config.APIConfig) *TokenInspector {
	name := cfg.TokenCookie
	if name == "" {
		name = "token"
	}
	return &TokenInspector{
		cookieName: name,
		parser:     jwt.NewParser(),
		now:        time.Now,
	}
}

// Inspect finds the session cookie among cookies and decodes its claims. A
// cookie that is not a JWT is reported as present with no expiry.
func (i *TokenInspector) Inspect(cookies []*http.Cookie) TokenInfo {
	for _, c := range cookies {
		if c.Name != i.cookieName || c.Value == "" {
			continue
		}

		info := TokenInfo{Present: true}
		claims, err := i.ParseUnverified(c.Value)
		if err != nil {
			return info
		}

		info.Subject = claims.ID
		if info.Subject == "" {
			info.Subject = claims.Subject
		}
		if claims.ExpiresAt != nil {
			exp := claims.ExpiresAt.Time.UTC()
			info.ExpiresAt = &exp
			info.Expired = !i.now().Before(exp)
		}
		return info
	}
	return TokenInfo{}
}

// ParseUnverified decodes a token's claims without checking its signature
func (i *TokenInspector) ParseUnverified(tokenString string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := i.parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, fmt.Errorf("failed to parse session token: %w", err)
	}
	return claims, nil
}
