package store

import (
	"context"
	"errors"
	"strings"

	"github.com/your-org/storefront-client/internal/domain/session"
	"github.com/your-org/storefront-client/internal/infrastructure/api"
)

// Login signs a shopper in and loads their cart
func (s *Store) Login(ctx context.Context, creds api.Credentials) (session.Identity, error) {
	creds.Email = strings.TrimSpace(creds.Email)
	if creds.Email == "" || creds.Password == "" {
		return session.Identity{}, ErrMissingCredentials
	}

	res := s.backend.Login(ctx, creds)
	if err := loginError("login", res); err != nil {
		return session.Identity{}, err
	}

	id := res.Data
	if res.Status != api.StatusOK || id.ID == "" {
		// Some deployments only set the cookie; ask who we are.
		who := s.backend.IsAuth(ctx)
		if who.Status != api.StatusOK || who.Data.ID == "" {
			return session.Identity{}, &TransientError{Op: "login", Err: errors.New("session not established")}
		}
		id = who.Data
	}

	s.SetShopper(ctx, &id)
	return id, nil
}

// Register creates a shopper account. It does not sign in.
func (s *Store) Register(ctx context.Context, reg api.Registration) error {
	reg.Name = strings.TrimSpace(reg.Name)
	reg.Email = strings.TrimSpace(reg.Email)
	if reg.Name == "" || reg.Email == "" || reg.Password == "" {
		return ErrMissingCredentials
	}

	return resultError("register", s.backend.Register(ctx, reg))
}

// Logout signs the shopper out and clears the cart
func (s *Store) Logout(ctx context.Context) error {
	res := s.backend.Logout(ctx)
	if res.Status == api.StatusUnauthorized {
		// The server already considers us signed out.
		s.SetShopper(ctx, nil)
		return nil
	}
	if err := resultError("logout", res); err != nil {
		return err
	}

	s.SetShopper(ctx, nil)
	return nil
}

// AdminLogin signs an admin in
func (s *Store) AdminLogin(ctx context.Context, creds api.Credentials) (session.Identity, error) {
	creds.Email = strings.TrimSpace(creds.Email)
	if creds.Email == "" || creds.Password == "" {
		return session.Identity{}, ErrMissingCredentials
	}

	res := s.backend.AdminLogin(ctx, creds)
	if err := loginError("admin login", res); err != nil {
		return session.Identity{}, err
	}

	id := res.Data
	if res.Status != api.StatusOK || id.ID == "" {
		who := s.backend.IsAdminAuth(ctx)
		if who.Status != api.StatusOK || who.Data.ID == "" {
			return session.Identity{}, &TransientError{Op: "admin login", Err: errors.New("session not established")}
		}
		id = who.Data
	}

	s.SetAdmin(&id)
	return id, nil
}

// loginError treats a 401 from a login endpoint as bad credentials.
func loginError(op string, res api.Result[session.Identity]) error {
	if res.Status == api.StatusUnauthorized {
		msg := res.Message
		if msg == "" {
			msg = "invalid email or password"
		}
		return &RejectedError{Op: op, Message: msg}
	}
	return resultError(op, res)
}
