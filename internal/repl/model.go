package repl

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const maxHistory = 200

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	helpStyle   = lipgloss.NewStyle().Faint(true)
)

type model struct {
	opts    Options
	input   textinput.Model
	history []string
	// cursor indexes history while browsing with up/down; len(history) is
	// the fresh line.
	cursor  int
	answers int
	quit    bool
}

// NewModel returns the interactive REPL: a text input whose submitted lines
// are evaluated and printed above the prompt.
func NewModel(opts Options) tea.Model {
	ti := textinput.New()
	ti.Prompt = promptStyle.Render("swc> ")
	ti.Placeholder = "namespace demo; var x = 1 + 2;"
	ti.CharLimit = 4096
	ti.Focus()
	return &model{opts: opts, input: ti}
}

func (m *model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyCtrlD, tea.KeyEsc:
			m.quit = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m, m.submit()
		case tea.KeyUp:
			m.browse(-1)
			return m, nil
		case tea.KeyDown:
			m.browse(+1)
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *model) submit() tea.Cmd {
	line := m.input.Value()
	m.input.Reset()
	if IsQuit(line) {
		m.quit = true
		return tea.Quit
	}
	if strings.TrimSpace(line) != "" {
		m.history = append(m.history, line)
		if len(m.history) > maxHistory {
			m.history = m.history[len(m.history)-maxHistory:]
		}
	}
	m.cursor = len(m.history)
	m.answers++
	return tea.Println(promptStyle.Render("swc> ") + line + "\n" + Eval(line, m.opts))
}

func (m *model) browse(delta int) {
	next := m.cursor + delta
	if next < 0 || next > len(m.history) {
		return
	}
	m.cursor = next
	if next == len(m.history) {
		m.input.SetValue("")
		return
	}
	m.input.SetValue(m.history[next])
	m.input.CursorEnd()
}

func (m *model) View() string {
	if m.quit {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("Selawik REPL"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter: parse  up/down: history  :q or ctrl+d: quit"))
	b.WriteString("\n")
	return b.String()
}

// RunInteractive runs the bubbletea program until the user quits or ctx
// is cancelled.
func RunInteractive(ctx context.Context, in io.Reader, out io.Writer, opts Options) error {
	p := tea.NewProgram(NewModel(opts), tea.WithContext(ctx), tea.WithInput(in), tea.WithOutput(out))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}
