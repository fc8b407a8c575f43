package session

// Identity is a principal issued by the storefront API after a session check
// or a login. It is replaced as a whole on login/logout.
type Identity struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Gate is the resolution state of admin-gated views.
type Gate string

const (
	GateChecking        Gate = "checking"
	GateUnauthenticated Gate = "unauthenticated"
	GateAuthenticated   Gate = "authenticated"
)

// Session holds the shopper and admin identities known to the client.
// Resolving is true only until the startup checks have both settled.
type Session struct {
	Shopper   *Identity `json:"shopper,omitempty"`
	Admin     *Identity `json:"admin,omitempty"`
	Resolving bool      `json:"resolving"`
}

// New returns the session every process starts with.
func New() Session {
	return Session{Resolving: true}
}

// AdminGate reports which admin view may be rendered. While resolving, an
// absent admin identity does not mean "not an admin".
func (s Session) AdminGate() Gate {
	switch {
	case s.Resolving:
		return GateChecking
	case s.Admin != nil:
		return GateAuthenticated
	default:
		return GateUnauthenticated
	}
}

// HasShopper reports whether a shopper is logged in.
func (s Session) HasShopper() bool {
	return s.Shopper != nil
}

// SameIdentity reports whether a and b name the same principal. Two absent
// identities are the same.
func SameIdentity(a, b *Identity) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.ID == b.ID
}
