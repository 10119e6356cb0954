// Package storage is a JSON file-backed key-value store used to persist the
// session across process restarts. One file per key, last write wins.
package storage

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/zeebo/blake3"
)

// Keys used by the session layer.
const (
	KeyAuthToken = "auth_token"
	KeyAuthUser  = "auth_user"
	// KeyAuthSnapshot is the combined session snapshot read by hydration.
	KeyAuthSnapshot = "taskzilla-auth"
)

// ErrNotFound is returned when a key has no stored value.
var ErrNotFound = errors.New("storage: key not found")

// record is the on-disk envelope. Checksum is the blake3 hex digest of Data;
// a mismatch on read means a torn or tampered write and the record is treated
// as absent.
type record struct {
	Checksum string          `json:"checksum"`
	Data     json.RawMessage `json:"data"`
}

// Store persists JSON values under a directory.
type Store struct {
	dir string
	mu  sync.Mutex
}

// New creates a store rooted at dir. The directory is created on first write.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the store's root directory.
func (s *Store) Dir() string {
	return s.dir
}

// Set marshals value as JSON and writes it under key.
func (s *Store) Set(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}

	rec := record{
		Checksum: digest(data),
		Data:     data,
	}

	// The record must marshal without re-indenting Data: the checksum holds
	// over the exact bytes read back.
	encoded, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal record %s: %w", key, err)
	}

	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("create storage dir: %w", err)
	}

	if err := os.WriteFile(s.path(key), encoded, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}

	return nil
}

// Get reads the value stored under key into target.
// Returns ErrNotFound when the key is absent or the record is corrupt.
func (s *Store) Get(key string, target any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	encoded, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return fmt.Errorf("read %s: %w", key, err)
	}

	var rec record
	if err := json.Unmarshal(encoded, &rec); err != nil {
		return ErrNotFound
	}

	// Digest over compacted bytes so insignificant whitespace in the file
	// never invalidates the record.
	var compacted bytes.Buffer
	if err := json.Compact(&compacted, rec.Data); err != nil {
		return ErrNotFound
	}
	if rec.Checksum != digest(compacted.Bytes()) {
		return ErrNotFound
	}

	if err := json.Unmarshal(rec.Data, target); err != nil {
		return fmt.Errorf("unmarshal %s: %w", key, err)
	}

	return nil
}

// Delete removes the value stored under key. Missing keys are not an error.
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// Has reports whether a valid value is stored under key.
func (s *Store) Has(key string) bool {
	var raw json.RawMessage
	return s.Get(key, &raw) == nil
}

func (s *Store) path(key string) string {
	// Keys come from a fixed set, but normalize anyway so a key can never
	// escape the storage directory.
	name := strings.ReplaceAll(key, string(filepath.Separator), "-")
	return filepath.Join(s.dir, name+".json")
}

func digest(data []byte) string {
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:])
}
