package auth

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFileStore(t *testing.T) *FileStore {
	t.Helper()
	return NewFileStore(t.TempDir(), nil)
}

func TestFileStore_SaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestFileStore(t)

	want := Session{
		Token:   "tok-abc",
		Role:    RoleUser,
		Profile: &Profile{ID: 7, Name: "Maria", Email: "maria@example.com"},
	}
	require.NoError(t, store.Save(ctx, want))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFileStore_LoadEmptyWhenNothingPersisted(t *testing.T) {
	ctx := context.Background()
	store := newTestFileStore(t)

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.True(t, got.Empty())
}

func TestFileStore_CorruptFileDegradesToEmpty(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store := NewFileStore(dir, nil)

	require.NoError(t, os.WriteFile(filepath.Join(dir, sessionFileName), []byte("{not json"), 0o600))

	got, err := store.Load(ctx)
	require.NoError(t, err, "decode errors must not surface")
	assert.True(t, got.Empty())
}

func TestFileStore_SaveNormalizes(t *testing.T) {
	ctx := context.Background()
	store := newTestFileStore(t)

	// role without token violates the session invariant
	require.NoError(t, store.Save(ctx, Session{Role: RoleAdmin}))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.True(t, got.Empty())
	assert.Equal(t, RoleNone, got.Role)
}

func TestFileStore_ClearIdempotent(t *testing.T) {
	ctx := context.Background()
	store := newTestFileStore(t)

	require.NoError(t, store.Save(ctx, Session{Token: "tok", Role: RoleUser}))
	require.NoError(t, store.Clear(ctx))
	require.NoError(t, store.Clear(ctx), "second clear must succeed")

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.True(t, got.Empty())
}

func TestFileStore_FilePermissions(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store := NewFileStore(dir, nil)

	require.NoError(t, store.Save(ctx, Session{Token: "tok", Role: RoleUser}))

	info, err := os.Stat(filepath.Join(dir, sessionFileName))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.True(t, got.Empty())

	want := Session{Token: "tok", Role: RoleAdmin, Profile: &Profile{ID: 1, Name: "Root"}}
	require.NoError(t, store.Save(ctx, want))

	got, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	require.NoError(t, store.Clear(ctx))
	require.NoError(t, store.Clear(ctx))

	got, err = store.Load(ctx)
	require.NoError(t, err)
	assert.True(t, got.Empty())
}
