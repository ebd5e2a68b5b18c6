package auth

import (
	"context"

	"github.com/clinbook/clinbook/internal/log"
)

// Resolver classifies the persisted session into a route group at startup.
//
// Resolution is a pure function of stored state: the cached role is not
// re-verified against the server. A stale role is corrected by the next
// successful login or by the 401-triggered invalidation, never here.
type Resolver struct {
	store  Store
	logger *log.Logger
}

// NewResolver creates a resolver backed by the given store
func NewResolver(store Store, logger *log.Logger) *Resolver {
	if logger == nil {
		logger = log.DefaultLogger()
	}
	return &Resolver{store: store, logger: logger.With("component", "resolver")}
}

// Resolve loads the session and returns its route group.
// Storage failures degrade to RoutePublic; callers must not render any
// screen set before this returns.
func (r *Resolver) Resolve(ctx context.Context) RouteGroup {
	s, err := r.store.Load(ctx)
	if err != nil {
		r.logger.WarnContext(ctx, "session load failed during resolution", "error", err.Error())
		return RoutePublic
	}

	group := s.RouteGroup()
	r.logger.DebugContext(ctx, "session resolved", "route_group", group.String())
	return group
}
