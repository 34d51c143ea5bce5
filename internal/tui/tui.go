// Package tui is the interactive keypad shell around the calculator engine.
// Every printable key is a calculator button; the engine owns all state and
// the shell only renders what it exposes.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"golang.design/x/clipboard"

	"github.com/codefionn/rechenwerk/internal/config"
	"github.com/codefionn/rechenwerk/internal/engine"
	"github.com/codefionn/rechenwerk/internal/eval"
	"github.com/codefionn/rechenwerk/internal/logger"
)

// keypad translations from typed key to engine action
var (
	operatorKeys = map[string]string{
		"+": "+",
		"-": "-",
		"*": "×",
		"/": "÷",
		"%": "%",
		"^": "^",
	}
	functionKeys = map[string]string{
		"s": "sin(",
		"c": "cos(",
		"t": "tan(",
		"l": "log(",
		"n": "ln(",
		"r": "√(",
	}
	constantKeys = map[string]string{
		"p": "π",
		"e": "e",
	}
)

// ClipboardCopyMsg is sent after a yank attempt
type ClipboardCopyMsg struct {
	Content string
	Success bool
}

// Model is the bubbletea model of the calculator shell
type Model struct {
	calc *engine.Calculator
	keys KeyMap

	history viewport.Model
	width   int

	showHelp     bool
	helpRendered string

	status      string
	clipboardOK bool

	log *logger.Logger
}

// New creates the shell model from configuration
func New(cfg *config.Config) *Model {
	unit := eval.Degrees
	if cfg != nil && cfg.AngleUnit == "radians" {
		unit = eval.Radians
	}
	historyLimit := 0
	if cfg != nil {
		historyLimit = cfg.HistoryLimit
	}

	clipboardOK := clipboard.Init() == nil

	vp := viewport.New(40, 8)

	return &Model{
		calc: engine.New(engine.Options{
			AngleUnit:    unit,
			HistoryLimit: historyLimit,
		}),
		keys:        DefaultKeyMap(),
		history:     vp,
		width:       60,
		clipboardOK: clipboardOK,
		log:         logger.Global().WithPrefix("tui"),
	}
}

// Calculator exposes the engine, mainly for tests
func (m *Model) Calculator() *engine.Calculator {
	return m.calc
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.history.Width = msg.Width - 4
		if h := msg.Height - 9; h > 2 {
			m.history.Height = h
		}
		m.helpRendered = "" // re-render at the new width
		m.refreshHistory()
		return m, nil

	case ClipboardCopyMsg:
		if msg.Success {
			m.status = "copied " + msg.Content
		} else {
			m.status = "clipboard unavailable"
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key leaves the help overlay except quit.
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.Clear):
		m.calc.Apply(engine.Action{Kind: engine.ActionClear})
	case key.Matches(msg, m.keys.Backspace):
		m.calc.Apply(engine.Action{Kind: engine.ActionBackspace})
	case key.Matches(msg, m.keys.Equals):
		m.calc.Apply(engine.Action{Kind: engine.ActionEquals})
		m.refreshHistory()
	case key.Matches(msg, m.keys.ToggleSign):
		m.calc.Apply(engine.Action{Kind: engine.ActionToggleSign})
	case key.Matches(msg, m.keys.ToggleAngle):
		m.calc.Apply(engine.Action{Kind: engine.ActionToggleAngleUnit})
	case key.Matches(msg, m.keys.Yank):
		return m, m.yankResult()
	case key.Matches(msg, m.keys.MemoryAdd):
		m.calc.Apply(engine.Action{Kind: engine.ActionMemoryAdd})
	case key.Matches(msg, m.keys.MemorySubtract):
		m.calc.Apply(engine.Action{Kind: engine.ActionMemorySubtract})
	case key.Matches(msg, m.keys.MemoryRecall):
		m.calc.Apply(engine.Action{Kind: engine.ActionMemoryRecall})
	case key.Matches(msg, m.keys.MemoryClear):
		m.calc.Apply(engine.Action{Kind: engine.ActionMemoryClear})
	case key.Matches(msg, m.keys.ClearHistory):
		m.calc.Apply(engine.Action{Kind: engine.ActionClearHistory})
		m.refreshHistory()
	case key.Matches(msg, m.keys.ScrollUp):
		m.history.ScrollUp(1)
	case key.Matches(msg, m.keys.ScrollDown):
		m.history.ScrollDown(1)
	default:
		m.pressKeypad(msg.String())
	}

	m.status = ""
	return m, nil
}

// pressKeypad maps a printable key to its keypad action
func (m *Model) pressKeypad(k string) {
	switch {
	case len(k) == 1 && (k[0] >= '0' && k[0] <= '9' || k[0] == '.'):
		m.calc.Apply(engine.Action{Kind: engine.ActionDigit, Text: k})
	case operatorKeys[k] != "":
		m.calc.Apply(engine.Action{Kind: engine.ActionOperator, Text: operatorKeys[k]})
	case functionKeys[k] != "":
		m.calc.Apply(engine.Action{Kind: engine.ActionFunction, Text: functionKeys[k]})
	case constantKeys[k] != "":
		m.calc.Apply(engine.Action{Kind: engine.ActionConstant, Text: constantKeys[k]})
	case k == "(":
		m.calc.Apply(engine.Action{Kind: engine.ActionOpenParen})
	case k == ")":
		m.calc.Apply(engine.Action{Kind: engine.ActionCloseParen})
	}
}

// yankResult copies the display text to the system clipboard
func (m *Model) yankResult() tea.Cmd {
	content := m.calc.DisplayText()
	ok := m.clipboardOK
	m.log.Debug("yank %q (clipboard available: %v)", content, ok)
	return func() tea.Msg {
		if ok {
			clipboard.Write(clipboard.FmtText, []byte(content))
		}
		return ClipboardCopyMsg{Content: content, Success: ok}
	}
}

// refreshHistory rebuilds the history viewport content, newest entry last,
// and keeps the view pinned to the bottom.
func (m *Model) refreshHistory() {
	entries := m.calc.History()
	var b strings.Builder
	for _, entry := range entries {
		fmt.Fprintf(&b, "%s = %s\n", entry.Expression, entry.Result)
	}
	m.history.SetContent(b.String())
	m.history.GotoBottom()
}
