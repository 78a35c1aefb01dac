package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Dim         lipgloss.Style
	Status      lipgloss.Style
	Help        lipgloss.Style
	Main        lipgloss.Style
	Scroll      lipgloss.Style
	Highlight   lipgloss.Style
	SelectionBg lipgloss.Style
	BookID      lipgloss.Style
	DetailBox   lipgloss.Style
	SearchBox   lipgloss.Style
	SearchTitle lipgloss.Style
	CloseButton lipgloss.Style
	NoResults   lipgloss.Style
	AudioOn     lipgloss.Style
	AudioMuted  lipgloss.Style
	AudioIdle   lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Dim: lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		Help: lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2).
			MaxHeight(100), // Will be dynamically adjusted
		Scroll:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Highlight:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		SelectionBg: lipgloss.NewStyle().Background(lipgloss.Color("238")),
		BookID:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		DetailBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2).
			Width(60).
			BorderForeground(lipgloss.Color("99")),
		SearchBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(0, 1).
			Width(50).
			BorderForeground(lipgloss.Color("99")),
		SearchTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		CloseButton: lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		NoResults:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		AudioOn:     lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		AudioMuted:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		AudioIdle:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
	}
}
