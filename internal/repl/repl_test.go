package repl

import (
	"bytes"
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestEvalRendersTree(t *testing.T) {
	out := Eval("namespace a; 1;", Options{})
	if !strings.HasPrefix(out, "CompilationUnit\n") {
		t.Fatalf("unexpected output:\n%s", out)
	}
	if !strings.Contains(out, "NumberLit 1") {
		t.Errorf("tree lacks literal:\n%s", out)
	}
	if strings.Contains(out, "Unexpected") {
		t.Errorf("clean input produced diagnostics:\n%s", out)
	}
}

func TestEvalAppendsDiagnostics(t *testing.T) {
	out := Eval("namespace a; @", Options{})
	lines := strings.Split(out, "\n")
	last := lines[len(lines)-1]
	if !strings.HasPrefix(last, "(") || !strings.Contains(out, "Bad character input: '@'.") {
		t.Errorf("diagnostics missing:\n%s", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("plain output has escape codes:\n%s", out)
	}
}

func TestEvalColorsDiagnostics(t *testing.T) {
	out := Eval("@", Options{Color: true})
	if !strings.Contains(out, "\x1b[31m") {
		t.Errorf("expected red diagnostics:\n%q", out)
	}
}

func TestIsQuit(t *testing.T) {
	for _, in := range []string{":q", " :quit ", ":exit"} {
		if !IsQuit(in) {
			t.Errorf("IsQuit(%q) = false", in)
		}
	}
	if IsQuit("namespace q;") {
		t.Error("ordinary input treated as quit")
	}
}

func TestRunPlain(t *testing.T) {
	in := strings.NewReader("namespace a;\n@\n:q\nnamespace never;\n")
	var out bytes.Buffer
	if err := RunPlain(context.Background(), in, &out, Options{}); err != nil {
		t.Fatal(err)
	}
	got := out.String()
	if strings.Count(got, "CompilationUnit") != 2 {
		t.Errorf("expected two answers:\n%s", got)
	}
	if strings.Contains(got, "never") {
		t.Errorf("input after :q was evaluated:\n%s", got)
	}
}

func TestRunPlainCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	if err := RunPlain(ctx, strings.NewReader("namespace a;\n"), &out, Options{}); err == nil {
		t.Fatal("expected context error")
	}
}

func typeLine(m tea.Model, s string) tea.Model {
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return m
}

func TestModelSubmitAndHistory(t *testing.T) {
	m := NewModel(Options{})
	m = typeLine(m, "namespace a;")
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("submit returned no command")
	}
	rm := m.(*model)
	if rm.answers != 1 || len(rm.history) != 1 || rm.history[0] != "namespace a;" {
		t.Fatalf("state after submit: answers=%d history=%v", rm.answers, rm.history)
	}
	if rm.input.Value() != "" {
		t.Errorf("input not cleared: %q", rm.input.Value())
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	if got := m.(*model).input.Value(); got != "namespace a;" {
		t.Errorf("history recall = %q", got)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if got := m.(*model).input.Value(); got != "" {
		t.Errorf("history forward = %q", got)
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(Options{})
	m = typeLine(m, ":q")
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("command is not tea.Quit")
	}
	if m.View() != "" {
		t.Errorf("view after quit = %q", m.View())
	}
}

func TestModelCtrlD(t *testing.T) {
	m := NewModel(Options{})
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlD})
	if cmd == nil || !m.(*model).quit {
		t.Fatal("ctrl+d should quit")
	}
}

func TestModelView(t *testing.T) {
	view := NewModel(Options{}).View()
	if !strings.Contains(view, "Selawik REPL") || !strings.Contains(view, "swc> ") {
		t.Errorf("view = %q", view)
	}
}
