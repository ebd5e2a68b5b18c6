package auth

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestInvalidator_ClearsStoreAndFiresHook(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Save(ctx, Session{Token: "tok", Role: RoleUser}))

	var gotReason InvalidateReason
	var fired int
	inv := NewInvalidator(store, func(reason InvalidateReason) {
		gotReason = reason
		fired++
	}, nil)
	inv.Arm()

	assert.True(t, inv.Invalidate(ctx, ReasonLogout))

	s, err := store.Load(ctx)
	require.NoError(t, err)
	assert.True(t, s.Empty())
	assert.Equal(t, ReasonLogout, gotReason)
	assert.Equal(t, 1, fired)
}

func TestInvalidator_DroppedWhenNotArmed(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	var fired int
	inv := NewInvalidator(store, func(InvalidateReason) { fired++ }, nil)

	assert.False(t, inv.Invalidate(ctx, ReasonUnauthorized))
	assert.Zero(t, fired)
}

func TestInvalidator_AtMostOncePerSession(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Save(ctx, Session{Token: "tok", Role: RoleUser}))

	var fired atomic.Int32
	inv := NewInvalidator(store, func(InvalidateReason) { fired.Add(1) }, nil)
	inv.Arm()

	// N concurrent 401 outcomes must collapse into one invalidation.
	var g errgroup.Group
	var ran atomic.Int32
	for i := 0; i < 16; i++ {
		g.Go(func() error {
			if inv.Invalidate(ctx, ReasonUnauthorized) {
				ran.Add(1)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, int32(1), ran.Load())
	assert.Equal(t, int32(1), fired.Load())
}

func TestInvalidator_RearmedByLogin(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	var fired int
	inv := NewInvalidator(store, func(InvalidateReason) { fired++ }, nil)

	inv.Arm()
	require.NoError(t, store.Save(ctx, Session{Token: "tok1", Role: RoleUser}))
	assert.True(t, inv.Invalidate(ctx, ReasonUnauthorized))
	assert.False(t, inv.Invalidate(ctx, ReasonUnauthorized), "still disarmed")

	// a new login re-establishes the session and re-arms
	require.NoError(t, store.Save(ctx, Session{Token: "tok2", Role: RoleAdmin}))
	inv.Arm()
	assert.True(t, inv.Invalidate(ctx, ReasonLogout))
	assert.Equal(t, 2, fired)
}

func TestInvalidator_NilHook(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Save(ctx, Session{Token: "tok", Role: RoleUser}))

	inv := NewInvalidator(store, nil, nil)
	inv.Arm()

	assert.True(t, inv.Invalidate(ctx, ReasonLogout))
}
