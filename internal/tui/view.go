package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))
	displayStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder())
	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196")).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder())
	previewStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			PaddingLeft(2)
	indicatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("170"))
	historyTitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("241")).
				Underline(true)
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true)
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

const helpMarkdown = `# rechenwerk

Every printable key is a calculator button.

## Keypad

| Key | Button |
|-----|--------|
| 0-9 . | digits |
| + - * / % ^ | operators (× and ÷ on screen) |
| ( ) | parentheses |
| s c t | sin( cos( tan( |
| l n r | log( ln( √( |
| p e | π and Euler's number |

## Control

| Key | Action |
|-----|--------|
| enter | equals |
| backspace | delete last token |
| esc | clear |
| _ | toggle sign |
| d | toggle degrees/radians |
| y | copy result to clipboard |
| m / M | memory add / subtract |
| R / X | memory recall / clear |
| H | clear history |
| ? | this help |
| q | quit |
`

// View implements tea.Model
func (m *Model) View() string {
	if m.showHelp {
		return m.helpView()
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("rechenwerk"))
	b.WriteString("  ")
	b.WriteString(indicatorStyle.Render(m.indicators()))
	b.WriteString("\n\n")

	display := m.calc.DisplayText()
	if m.calc.IsError() {
		b.WriteString(errorStyle.Render(display))
	} else {
		b.WriteString(displayStyle.Render(display))
	}
	b.WriteString("\n")

	if preview, ok := m.calc.PreviewText(); ok {
		b.WriteString(previewStyle.Render("= " + preview))
	}
	b.WriteString("\n\n")

	b.WriteString(historyTitleStyle.Render("History"))
	b.WriteString("\n")
	b.WriteString(m.history.View())
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("? help • q quit"))
	return b.String()
}

// indicators renders the angle-unit and memory badges
func (m *Model) indicators() string {
	badge := m.calc.AngleUnit().String()
	if m.calc.Memory() != 0 {
		badge += " • M"
	}
	return badge
}

// helpView renders the markdown help overlay, falling back to plain wrapped
// text when the terminal renderer cannot be built.
func (m *Model) helpView() string {
	if m.helpRendered == "" {
		width := m.width - 2
		if width < 20 {
			width = 20
		}
		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(width),
		)
		if err == nil {
			if out, renderErr := renderer.Render(helpMarkdown); renderErr == nil {
				m.helpRendered = out
			}
		}
		if m.helpRendered == "" {
			m.helpRendered = wordwrap.String(helpMarkdown, width)
		}
	}
	return fmt.Sprintf("%s\n%s", m.helpRendered,
		helpStyle.Render("press any key to return"))
}
