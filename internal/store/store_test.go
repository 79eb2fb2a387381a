package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jeanpaul/birthday/internal/birthday"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "birthdays.json")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	return s
}

func TestAddThenList(t *testing.T) {
	s := tempStore(t)

	if err := s.Add("alice", "Bob", 24, 1); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	entries := s.List("alice")
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}
	want := birthday.Birthday{Name: "Bob", Day: 24, Month: 1}
	if entries[0] != want {
		t.Errorf("Entry = %+v, want %+v", entries[0], want)
	}
}

func TestAdd_InvalidDate(t *testing.T) {
	s := tempStore(t)

	err := s.Add("alice", "Bob", 31, 2)
	if err == nil {
		t.Fatal("Expected validation error for Feb 31")
	}
	var verr *birthday.ValidationError
	if !errors.As(err, &verr) {
		t.Errorf("Expected ValidationError, got %T", err)
	}
	if len(s.List("alice")) != 0 {
		t.Error("Invalid add must not change the store")
	}
}

func TestAdd_DuplicateNamesPermitted(t *testing.T) {
	s := tempStore(t)

	if err := s.Add("alice", "Bob", 24, 1); err != nil {
		t.Fatal(err)
	}
	if err := s.Add("alice", "Bob", 3, 7); err != nil {
		t.Fatalf("Duplicate name rejected: %v", err)
	}
	if got := len(s.List("alice")); got != 2 {
		t.Errorf("Expected 2 entries, got %d", got)
	}
}

func TestList_UnknownUserIsEmpty(t *testing.T) {
	s := tempStore(t)
	if got := s.List("nobody"); len(got) != 0 {
		t.Errorf("Expected empty list, got %v", got)
	}
}

func TestRemove(t *testing.T) {
	s := tempStore(t)
	s.Add("alice", "Bob", 24, 1)
	s.Add("alice", "Bob", 3, 7)
	s.Add("alice", "Carol", 1, 2)

	if err := s.Remove("alice", "Bob"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}

	entries := s.List("alice")
	if len(entries) != 1 || entries[0].Name != "Carol" {
		t.Errorf("Expected only Carol left, got %v", entries)
	}
}

func TestRemove_NotFound(t *testing.T) {
	s := tempStore(t)
	s.Add("alice", "Bob", 24, 1)

	err := s.Remove("alice", "Dave")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
	if len(s.List("alice")) != 1 {
		t.Error("Failed remove must leave the store unchanged")
	}

	err = s.Remove("nobody", "Bob")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Expected ErrNotFound for unknown user, got %v", err)
	}
}

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "birthdays.json")
	s, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	s.Add("alice", "Bob", 24, 1)
	s.Add("alice", "Carol", 29, 2)
	s.Add("dan", "Eve", 31, 12)

	s2, err := Open(path)
	if err != nil {
		t.Fatalf("Reopen failed: %v", err)
	}

	for _, user := range []string{"alice", "dan"} {
		a, b := s.List(user), s2.List(user)
		if len(a) != len(b) {
			t.Fatalf("User %q: %d entries before, %d after", user, len(a), len(b))
		}
		for i := range a {
			if a[i] != b[i] {
				t.Errorf("User %q entry %d: %+v != %+v", user, i, a[i], b[i])
			}
		}
	}
}

func TestOpen_MalformedFileIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "birthdays.json")
	os.WriteFile(path, []byte("{not json"), 0644)

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed on malformed file: %v", err)
	}
	if len(s.Users()) != 0 {
		t.Error("Malformed file must load as empty store")
	}
}

func TestOpen_SchemaInvalidIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "birthdays.json")
	// valid JSON, wrong shape: day is a string
	os.WriteFile(path, []byte(`{"alice": [{"name": "Bob", "day": "24", "month": 1}]}`), 0644)

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if len(s.Users()) != 0 {
		t.Error("Schema-invalid file must load as empty store")
	}
}

func TestRemove_LastEntryDropsUser(t *testing.T) {
	s := tempStore(t)
	s.Add("alice", "Bob", 24, 1)

	if err := s.Remove("alice", "Bob"); err != nil {
		t.Fatal(err)
	}
	if len(s.Users()) != 0 {
		t.Errorf("Expected no users, got %v", s.Users())
	}
}
