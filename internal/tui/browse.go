package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeanpaul/birthday/internal/birthday"
)

type item struct {
	title, desc string
}

func (i item) Title() string       { return i.title }
func (i item) Description() string { return i.desc }
func (i item) FilterValue() string { return i.title }

// BrowseModel is a read-only scrollable view of a user's upcoming birthdays.
type BrowseModel struct {
	list list.Model
}

func NewBrowseModel(user string, rems []birthday.Reminder) BrowseModel {
	items := make([]list.Item, 0, len(rems))
	for _, r := range rems {
		var when string
		switch r.DaysUntil {
		case 0:
			when = "today!"
		case 1:
			when = "tomorrow"
		default:
			when = fmt.Sprintf("in %d days", r.DaysUntil)
		}
		items = append(items, item{
			title: r.Name,
			desc:  fmt.Sprintf("%02d.%02d. — %s", r.Day, r.Month, when),
		})
	}

	d := list.NewDefaultDelegate()
	d.Styles.SelectedTitle = lipgloss.NewStyle().Foreground(Green).Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(Green).PaddingLeft(1)
	d.Styles.SelectedDesc = d.Styles.SelectedTitle.Copy().Foreground(DimGreen)

	l := list.New(items, d, 40, 20)
	l.Title = fmt.Sprintf("Birthdays — %s", user)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = lipgloss.NewStyle().Foreground(Green).Bold(true).MarginLeft(2)

	return BrowseModel{list: l}
}

func (m BrowseModel) Init() tea.Cmd {
	return nil
}

func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width-2, msg.Height-2)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m BrowseModel) View() string {
	return "\n" + m.list.View()
}

// Browse runs the interactive list until the user quits.
func Browse(user string, rems []birthday.Reminder) error {
	p := tea.NewProgram(NewBrowseModel(user, rems), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("browse: %w", err)
	}
	return nil
}
