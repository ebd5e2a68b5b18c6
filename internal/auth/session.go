// Package auth owns the client session: the persisted credentials, the
// resolver that maps them to a route group at startup, and the invalidator
// that tears them down on logout or an authorization failure.
package auth

// Role is the platform role cached at login time
type Role string

// Platform roles. The wire values come from the login response.
const (
	RoleNone  Role = ""
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// ParseRole maps a wire role string to a Role.
// Unknown values degrade to RoleNone rather than failing: a client that
// cannot classify a role must not grant it any screen set.
func ParseRole(s string) Role {
	switch s {
	case "user":
		return RoleUser
	case "admin":
		return RoleAdmin
	default:
		return RoleNone
	}
}

// RouteGroup is the coarse navigation mode derived from the session role
type RouteGroup int

const (
	// RoutePublic is the unauthenticated screen set
	RoutePublic RouteGroup = iota
	// RouteUser is the authenticated end-user screen set
	RouteUser
	// RouteAdmin is the administrator screen set
	RouteAdmin
)

// String returns the string representation of the route group
func (g RouteGroup) String() string {
	switch g {
	case RoutePublic:
		return "public"
	case RouteUser:
		return "user"
	case RouteAdmin:
		return "admin"
	default:
		return "unknown"
	}
}

// RouteGroupForRole derives the route group from a role.
// The mapping is fixed: none→public, user→user, admin→admin.
func RouteGroupForRole(r Role) RouteGroup {
	switch r {
	case RoleUser:
		return RouteUser
	case RoleAdmin:
		return RouteAdmin
	default:
		return RoutePublic
	}
}

// Profile is the cached display record for the logged-in user
type Profile struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// Session is the persisted authentication state.
//
// Invariants: a non-empty Role implies a Token is present; an absent Token
// implies RoleNone and a nil Profile. Normalize enforces both, so every
// Session observed outside the store satisfies them.
type Session struct {
	Token   string   `json:"token,omitempty"`
	Role    Role     `json:"role,omitempty"`
	Profile *Profile `json:"profile,omitempty"`
}

// Empty reports whether the session carries no credentials
func (s Session) Empty() bool {
	return s.Token == ""
}

// Normalize repairs a session that violates the invariants.
// A tokenless session loses role and profile; a token with an
// unrecognized role is treated as public pending a fresh login.
func (s Session) Normalize() Session {
	if s.Token == "" {
		return Session{}
	}
	if s.Role != RoleUser && s.Role != RoleAdmin {
		s.Role = RoleNone
		s.Profile = nil
	}
	return s
}

// RouteGroup returns the navigation mode for this session
func (s Session) RouteGroup() RouteGroup {
	return RouteGroupForRole(s.Normalize().Role)
}
