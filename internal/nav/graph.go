// Package nav holds the navigation graph state machine.
//
// Exactly one screen graph is active at a time. The selector owns the
// legal transitions between them; screens never decide their own graph.
package nav

import (
	"fmt"
	"sync"

	"github.com/clinbook/clinbook/internal/auth"
	"github.com/clinbook/clinbook/internal/errors"
)

// Graph identifies a screen graph
type Graph int

const (
	// GraphBooting is the initial state while the persisted session is
	// being resolved; nothing is mounted yet
	GraphBooting Graph = iota
	// GraphPublic is the unauthenticated tab set
	GraphPublic
	// GraphUser is the authenticated end-user drawer
	GraphUser
	// GraphAdmin is the administrator drawer
	GraphAdmin
)

// String returns the string representation of the graph
func (g Graph) String() string {
	switch g {
	case GraphBooting:
		return "booting"
	case GraphPublic:
		return "public"
	case GraphUser:
		return "user"
	case GraphAdmin:
		return "admin"
	default:
		return "unknown"
	}
}

// graphForRouteGroup maps a resolved route group to its graph
func graphForRouteGroup(rg auth.RouteGroup) Graph {
	switch rg {
	case auth.RouteUser:
		return GraphUser
	case auth.RouteAdmin:
		return GraphAdmin
	default:
		return GraphPublic
	}
}

// Selector is the navigation graph state machine.
//
// Legal transitions:
//
//	Booting      → Public | User | Admin   (Boot, exactly once)
//	Public       → User | Admin            (LoginSucceeded)
//	User | Admin → Public                  (Invalidated)
//
// Booting is never re-entered; a full restart is the only way back.
// Every transition resets the navigation stack, so back-navigation can
// never reach a screen set the user is no longer authorized to see.
type Selector struct {
	mu      sync.Mutex
	current Graph

	// onTransition observes every state change; the TUI swaps and resets
	// its mounted screen set here
	onTransition func(from, to Graph)
}

// NewSelector creates a selector in the Booting state
func NewSelector(onTransition func(from, to Graph)) *Selector {
	return &Selector{current: GraphBooting, onTransition: onTransition}
}

// Current returns the active graph
func (s *Selector) Current() Graph {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Boot leaves the Booting state once session resolution completes
func (s *Selector) Boot(rg auth.RouteGroup) error {
	s.mu.Lock()
	if s.current != GraphBooting {
		current := s.current
		s.mu.Unlock()
		return errors.New(errors.ErrCodeNavAlreadyBooted,
			fmt.Sprintf("boot transition from %s: already booted", current))
	}
	to := graphForRouteGroup(rg)
	s.transitionLocked(to)
	return nil
}

// LoginSucceeded moves from Public into the graph for the role returned
// by the login response
func (s *Selector) LoginSucceeded(role auth.Role) error {
	to := graphForRouteGroup(auth.RouteGroupForRole(role))
	if to == GraphPublic {
		return errors.New(errors.ErrCodeNavIllegalTransition,
			fmt.Sprintf("login with role %q grants no authenticated graph", string(role)))
	}

	s.mu.Lock()
	if s.current != GraphPublic {
		current := s.current
		s.mu.Unlock()
		return errors.New(errors.ErrCodeNavIllegalTransition,
			fmt.Sprintf("login transition from %s: only legal from public", current))
	}
	s.transitionLocked(to)
	return nil
}

// Invalidated returns navigation to the public graph after a logout or
// authorization failure
func (s *Selector) Invalidated() error {
	s.mu.Lock()
	if s.current != GraphUser && s.current != GraphAdmin {
		current := s.current
		s.mu.Unlock()
		return errors.New(errors.ErrCodeNavIllegalTransition,
			fmt.Sprintf("invalidation transition from %s: session graphs only", current))
	}
	s.transitionLocked(GraphPublic)
	return nil
}

// transitionLocked commits the state change and fires the observer
// outside the lock. Callers hold s.mu.
func (s *Selector) transitionLocked(to Graph) {
	from := s.current
	s.current = to
	hook := s.onTransition
	s.mu.Unlock()

	if hook != nil {
		hook(from, to)
	}
}
