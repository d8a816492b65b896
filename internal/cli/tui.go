package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verdantlab/lsys/pkg/pipeline"
)

// List styles
var (
	playSymbolStyle = lipgloss.NewStyle().Foreground(colorWhite)
	playDimStyle    = lipgloss.NewStyle().Foreground(colorDim)
	playBadgeStyle  = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
)

// =============================================================================
// PlayModel - Interactive generation browser
// =============================================================================

// PlayModel is the bubbletea model for stepping through the generations of
// a derivation. Left/right (or h/l) move between generations, home/end jump
// to the axiom and the final generation.
type PlayModel struct {
	Result *pipeline.Result
	Cursor int
	Width  int
}

// NewPlayModel creates a play model positioned at the axiom.
func NewPlayModel(result *pipeline.Result) PlayModel {
	return PlayModel{Result: result, Width: 80}
}

func (m PlayModel) Init() tea.Cmd {
	return nil
}

func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "right", "l", " ":
			if m.Cursor < len(m.Result.Generations)-1 {
				m.Cursor++
			}
		case "home", "g":
			m.Cursor = 0
		case "end", "G":
			m.Cursor = len(m.Result.Generations) - 1
		}
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		if m.Width < 20 {
			m.Width = 20
		}
	}
	return m, nil
}

func (m PlayModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("%s · %s", m.Result.System, m.Result.Engine)))
	b.WriteString("\n")
	b.WriteString(playDimStyle.Render("←/→ step  g/G first/last  q quit"))
	b.WriteString("\n\n")

	gen := m.Result.Generations[m.Cursor]
	label := fmt.Sprintf("generation %d/%d", m.Cursor, len(m.Result.Generations)-1)
	if m.Cursor == 0 {
		label = "axiom"
	}
	b.WriteString(playBadgeStyle.Render(label))
	b.WriteString(playDimStyle.Render(fmt.Sprintf("  %d symbols", len(gen))))
	b.WriteString("\n\n")

	b.WriteString(playSymbolStyle.Render(wrapString(gen, m.Width-2)))
	b.WriteString("\n")

	return b.String()
}

// wrapString hard-wraps s at width columns. Generations have no natural
// break points, so plain slicing is the right behavior.
func wrapString(s string, width int) string {
	if width < 1 || len(s) <= width {
		return s
	}
	var b strings.Builder
	runes := []rune(s)
	for start := 0; start < len(runes); start += width {
		end := start + width
		if end > len(runes) {
			end = len(runes)
		}
		if start > 0 {
			b.WriteString("\n")
		}
		b.WriteString(string(runes[start:end]))
	}
	return b.String()
}
