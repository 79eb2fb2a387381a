package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jeanpaul/birthday/internal/birthday"
)

// ErrNotFound is returned when a remove targets a user or contact that does
// not exist. The store is left unchanged.
var ErrNotFound = errors.New("not found")

// Store is a JSON-file-backed mapping of user id to birthday list. Exactly
// one Store is constructed per run and passed by reference to the command
// layer; there is no package-level instance.
type Store struct {
	path  string
	users map[string][]birthday.Birthday
}

// DefaultPath resolves the backing file under the invoking user's home
// directory.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".birthday_reminder.json")
}

// Open loads the store at path. A missing or malformed backing file yields
// an empty store rather than an error; read failures other than not-exist
// propagate.
func Open(path string) (*Store, error) {
	s := &Store{path: path, users: make(map[string][]birthday.Birthday)}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("read store %s: %w", path, err)
	}

	// Malformed content is treated as no data, favoring availability over
	// strict integrity.
	if err := validateDocument(data); err != nil {
		return s, nil
	}
	if err := json.Unmarshal(data, &s.users); err != nil {
		s.users = make(map[string][]birthday.Birthday)
	}
	return s, nil
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Save serializes the mapping and writes it atomically: a temp file in the
// target directory is renamed over the backing file.
func (s *Store) Save() error {
	data, err := json.MarshalIndent(s.users, "", "  ")
	if err != nil {
		return fmt.Errorf("encode store: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create store dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".birthday-*.json")
	if err != nil {
		return fmt.Errorf("write store: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write store: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write store: %w", err)
	}
	return nil
}

// Add validates and appends a birthday to the user's list, creating the user
// if needed, and persists. Duplicate contact names are permitted.
func (s *Store) Add(user, name string, day, month int) error {
	b := birthday.Birthday{Name: name, Day: day, Month: month}
	if err := b.Validate(); err != nil {
		return err
	}
	s.users[user] = append(s.users[user], b)
	return s.Save()
}

// Remove deletes every entry matching the contact name from the user's list
// and persists. Returns ErrNotFound, leaving the store unchanged, when the
// user is unknown or no entry matched.
func (s *Store) Remove(user, name string) error {
	entries, ok := s.users[user]
	if !ok {
		return fmt.Errorf("user %q: %w", user, ErrNotFound)
	}

	kept := entries[:0:0]
	for _, b := range entries {
		if b.Name != name {
			kept = append(kept, b)
		}
	}
	if len(kept) == len(entries) {
		return fmt.Errorf("birthday %q for user %q: %w", name, user, ErrNotFound)
	}
	if len(kept) == 0 {
		delete(s.users, user)
	} else {
		s.users[user] = kept
	}
	return s.Save()
}

// List returns the user's birthdays in stored order. Unknown users yield an
// empty slice, not an error.
func (s *Store) List(user string) []birthday.Birthday {
	entries := s.users[user]
	out := make([]birthday.Birthday, len(entries))
	copy(out, entries)
	return out
}

// Users returns the known user ids in unspecified order.
func (s *Store) Users() []string {
	out := make([]string, 0, len(s.users))
	for u := range s.users {
		out = append(out, u)
	}
	return out
}

// All returns a copy of the full mapping.
func (s *Store) All() map[string][]birthday.Birthday {
	out := make(map[string][]birthday.Birthday, len(s.users))
	for u, entries := range s.users {
		cp := make([]birthday.Birthday, len(entries))
		copy(cp, entries)
		out[u] = cp
	}
	return out
}
