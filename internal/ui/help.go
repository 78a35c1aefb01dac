package ui

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"
)

// HelpRenderer handles help content rendering
type HelpRenderer struct{}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{}
}

// RenderHelpContent generates the help page shown in the pager
func (r *HelpRenderer) RenderHelpContent(audio, search bool) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Width(12)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	line := func(k, desc string) string {
		return fmt.Sprintf("  %s%s\n", keyStyle.Render(k), descStyle.Render(desc))
	}

	var help strings.Builder

	help.WriteString(titleStyle.Render("LiteraryLens Help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Catalog"))
	help.WriteString("\n")
	help.WriteString(line("↑/↓, j/k", "Move through the books"))
	help.WriteString(line("Enter", "Show the selected book"))
	help.WriteString(line("Esc", "Back to the catalog"))

	if search {
		help.WriteString(sectionStyle.Render("Search"))
		help.WriteString("\n")
		help.WriteString(line("/", "Open the search box"))
		help.WriteString(line("type", "Filter titles as you type"))
		help.WriteString(line("↑/↓", "Move through results (wraps around)"))
		help.WriteString(line("Enter", "Open the highlighted result"))
		help.WriteString(line("Esc", "Close the search box"))
		help.WriteString(line("click", "Outside the box or on [x] to close"))
	}

	if audio {
		help.WriteString(sectionStyle.Render("Audio"))
		help.WriteString("\n")
		help.WriteString(line("m", "Mute or resume the ambient track"))
	}

	help.WriteString(sectionStyle.Render("Other"))
	help.WriteString("\n")
	help.WriteString(line("?", "Show this help"))
	help.WriteString(line("q", "Quit"))

	return help.String()
}

// pagerCommand shows content in ov. It implements tea.ExecCommand so
// bubbletea releases the terminal while the pager runs.
type pagerCommand struct {
	content string
}

func (p *pagerCommand) Run() error {
	root, err := oviewer.NewRoot(strings.NewReader(p.content))
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// ov opens the terminal itself
func (p *pagerCommand) SetStdin(io.Reader) {}
func (p *pagerCommand) SetStdout(io.Writer) {}
func (p *pagerCommand) SetStderr(io.Writer) {}

// showHelpInPager returns a command that shows help using the ov pager
func showHelpInPager(content string) tea.Cmd {
	return tea.Exec(&pagerCommand{content: content}, func(err error) tea.Msg {
		return helpPagerMsg{err: err}
	})
}
