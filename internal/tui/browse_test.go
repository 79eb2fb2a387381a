package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeanpaul/birthday/internal/birthday"
)

func TestNewBrowseModel_View(t *testing.T) {
	rems := []birthday.Reminder{
		{Birthday: birthday.Birthday{Name: "Bob", Day: 24, Month: 1}, DaysUntil: 0},
		{Birthday: birthday.Birthday{Name: "Carol", Day: 2, Month: 11}, DaysUntil: 10},
	}
	m := NewBrowseModel("alice", rems)

	view := m.View()
	if !strings.Contains(view, "alice") {
		t.Error("View missing user title")
	}
	if !strings.Contains(view, "Bob") {
		t.Error("View missing first entry")
	}
	if !strings.Contains(view, "today!") {
		t.Error("View missing today marker")
	}
}

func TestBrowseModel_QuitKeys(t *testing.T) {
	m := NewBrowseModel("alice", nil)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("Expected quit command for 'q'")
	}
	if msg := cmd(); msg != (tea.QuitMsg{}) {
		t.Errorf("Expected tea.QuitMsg, got %T", msg)
	}
}
