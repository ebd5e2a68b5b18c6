package auth

import (
	"context"
	"sync/atomic"

	"github.com/clinbook/clinbook/internal/log"
)

// InvalidateReason says why the session is being torn down
type InvalidateReason int

const (
	// ReasonLogout is an explicit user action; a confirmation is surfaced
	ReasonLogout InvalidateReason = iota
	// ReasonUnauthorized is a 401 from the platform; teardown is silent
	// so it doesn't contradict whatever the user was doing
	ReasonUnauthorized
)

// String returns the string representation of the reason
func (r InvalidateReason) String() string {
	switch r {
	case ReasonLogout:
		return "logout"
	case ReasonUnauthorized:
		return "unauthorized"
	default:
		return "unknown"
	}
}

// Invalidator tears down the session and notifies navigation.
//
// It is armed by a successful login and fires at most once per armed
// session: concurrent 401s from parallel in-flight requests collapse into
// a single invalidation. The hook runs outside the store, so navigation
// observes the cleared state.
type Invalidator struct {
	store  Store
	logger *log.Logger

	// armed is 1 between a successful login and the next invalidation
	armed atomic.Bool

	// onInvalidate is called exactly once per invalidation, after the
	// store is cleared
	onInvalidate func(reason InvalidateReason)
}

// NewInvalidator creates an invalidator over the given store.
// The hook may be nil; SetHook installs it later (the TUI and CLI wire
// different reactions).
func NewInvalidator(store Store, hook func(reason InvalidateReason), logger *log.Logger) *Invalidator {
	if logger == nil {
		logger = log.DefaultLogger()
	}
	inv := &Invalidator{
		store:        store,
		logger:       logger.With("component", "invalidator"),
		onInvalidate: hook,
	}
	return inv
}

// SetHook replaces the invalidation hook
func (inv *Invalidator) SetHook(hook func(reason InvalidateReason)) {
	inv.onInvalidate = hook
}

// Arm re-enables invalidation after a successful login.
// Arm is also called when a persisted session is resolved at boot, so a
// 401 against restored credentials still tears them down.
func (inv *Invalidator) Arm() {
	inv.armed.Store(true)
}

// Armed reports whether an invalidation would currently run
func (inv *Invalidator) Armed() bool {
	return inv.armed.Load()
}

// Invalidate clears the session and fires the hook.
//
// Requests arriving while an invalidation is in progress, or after one
// already ran for this session, are dropped. Returns true when this call
// performed the teardown.
func (inv *Invalidator) Invalidate(ctx context.Context, reason InvalidateReason) bool {
	if !inv.armed.CompareAndSwap(true, false) {
		inv.logger.DebugContext(ctx, "invalidation dropped, none armed", "reason", reason.String())
		return false
	}

	if err := inv.store.Clear(ctx); err != nil {
		// The session file survived; navigation still resets so the user
		// is not left on a screen set their credentials no longer back.
		inv.logger.WarnContext(ctx, "session clear failed during invalidation", "error", err.Error())
	}

	inv.logger.InfoContext(ctx, "session invalidated", "reason", reason.String())

	if inv.onInvalidate != nil {
		inv.onInvalidate(reason)
	}
	return true
}
