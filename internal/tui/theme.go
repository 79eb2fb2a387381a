package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Core palette
	Green       = lipgloss.Color("#00FF41")
	BrightGreen = lipgloss.Color("#39FF14")
	MedGreen    = lipgloss.Color("#00C832")
	DarkGreen   = lipgloss.Color("#008F11")
	DimGreen    = lipgloss.Color("#003B00")
	Cyan        = lipgloss.Color("#00D4AA")
	LightGray   = lipgloss.Color("#aaaaaa")
	Red         = lipgloss.Color("#FF4444")

	// Section banners and success marks
	BannerStyle = lipgloss.NewStyle().
			Foreground(Green).
			Bold(true)

	// Contact names
	NameStyle = lipgloss.NewStyle().
			Foreground(BrightGreen).
			Bold(true)

	// Dates and counts
	DateStyle = lipgloss.NewStyle().
			Foreground(Cyan)

	// Secondary hints
	HelpStyle = lipgloss.NewStyle().
			Foreground(LightGray)

	WarningStyle = lipgloss.NewStyle().
			Foreground(MedGreen).
			Italic(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red).
			Bold(true)
)
