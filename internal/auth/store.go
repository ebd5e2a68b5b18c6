package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/clinbook/clinbook/internal/errors"
	"github.com/clinbook/clinbook/internal/log"
)

// Store defines the interface for credential persistence.
//
// The session is owned exclusively by the store: Save and Clear are the
// only mutation paths, and Load hands out value snapshots that callers
// must not cache beyond the current operation.
type Store interface {
	// Save persists the session as a single logical unit.
	Save(ctx context.Context, s Session) error

	// Load returns the persisted snapshot. A missing or undecodable
	// session is returned as the empty Session with a nil error; storage
	// corruption must degrade to logged-out, never surface to the user.
	Load(ctx context.Context) (Session, error)

	// Clear removes the persisted session. Idempotent.
	Clear(ctx context.Context) error
}

const sessionFileName = "session.json"

// FileStore persists the session as one JSON file under the config home.
//
// The token, role, and profile live in a single file written via a temp
// file and rename, so a concurrent reader sees either the whole previous
// session or the whole next one, never a partial write.
type FileStore struct {
	dir    string
	logger *log.Logger

	mu sync.Mutex
}

// NewFileStore creates a store rooted at dir (typically ~/.clinbook)
func NewFileStore(dir string, logger *log.Logger) *FileStore {
	if logger == nil {
		logger = log.DefaultLogger()
	}
	return &FileStore{dir: dir, logger: logger.With("component", "credstore")}
}

func (fs *FileStore) path() string {
	return filepath.Join(fs.dir, sessionFileName)
}

// Save persists the session atomically
func (fs *FileStore) Save(ctx context.Context, s Session) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	s = s.Normalize()

	if err := os.MkdirAll(fs.dir, 0o700); err != nil {
		return errors.Wrap(errors.ErrCodeStoreWriteFailed, fmt.Sprintf("failed to create session dir: %s", fs.dir), err)
	}

	data, err := json.Marshal(s)
	if err != nil {
		return errors.Wrap(errors.ErrCodeStoreWriteFailed, "failed to encode session", err)
	}

	// Write-then-rename keeps the multi-field write atomic for readers.
	tmp, err := os.CreateTemp(fs.dir, sessionFileName+".*")
	if err != nil {
		return errors.Wrap(errors.ErrCodeStoreWriteFailed, "failed to create temp session file", err)
	}
	tmpName := tmp.Name()
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.Wrap(errors.ErrCodeStoreWriteFailed, "failed to restrict session file permissions", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.Wrap(errors.ErrCodeStoreWriteFailed, "failed to write session file", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.Wrap(errors.ErrCodeStoreWriteFailed, "failed to close session file", err)
	}
	if err := os.Rename(tmpName, fs.path()); err != nil {
		os.Remove(tmpName)
		return errors.Wrap(errors.ErrCodeStoreWriteFailed, "failed to commit session file", err)
	}

	fs.logger.DebugContext(ctx, "session saved", "role", string(s.Role))
	return nil
}

// Load returns the persisted session snapshot.
// Decode failures are downgraded to the empty session so that storage
// corruption reads as "logged out" instead of breaking startup.
func (fs *FileStore) Load(ctx context.Context) (Session, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	data, err := os.ReadFile(fs.path())
	if err != nil {
		if !os.IsNotExist(err) {
			fs.logger.WarnContext(ctx, "session read failed, treating as logged out", "error", err.Error())
		}
		return Session{}, nil
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		fs.logger.WarnContext(ctx, "session decode failed, treating as logged out", "error", err.Error())
		return Session{}, nil
	}

	return s.Normalize(), nil
}

// Clear removes the persisted session. Safe to call repeatedly.
func (fs *FileStore) Clear(ctx context.Context) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if err := os.Remove(fs.path()); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(errors.ErrCodeStoreClearFailed, "failed to remove session file", err)
	}
	fs.logger.DebugContext(ctx, "session cleared")
	return nil
}

// MemoryStore implements in-memory credential storage.
//
// Suitable for tests and ephemeral runs where nothing should touch disk.
type MemoryStore struct {
	mu      sync.RWMutex
	session Session
	present bool
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Save stores the session
func (ms *MemoryStore) Save(_ context.Context, s Session) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.session = s.Normalize()
	ms.present = true
	return nil
}

// Load returns the stored snapshot, or the empty session
func (ms *MemoryStore) Load(_ context.Context) (Session, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	if !ms.present {
		return Session{}, nil
	}
	return ms.session, nil
}

// Clear drops the stored session. Idempotent.
func (ms *MemoryStore) Clear(_ context.Context) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.session = Session{}
	ms.present = false
	return nil
}
