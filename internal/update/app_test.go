package update

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/mtc/internal/commands"
	"github.com/sandeepkv93/mtc/internal/model"
	"github.com/sandeepkv93/mtc/internal/session"
)

func newTestModel() Model {
	return NewModel(session.New(), DefaultRuntimeConfig(), fixedClock)
}

func typeText(m Model, text string) Model {
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return next.(Model)
}

func press(m Model, k tea.KeyType) (Model, tea.Cmd) {
	next, cmd := m.Update(tea.KeyMsg{Type: k})
	return next.(Model), cmd
}

func runCommand(m Model, input string) Model {
	next, _ := m.Update(RunCommandMsg{Input: input})
	return next.(Model)
}

func TestNewModelFocusesToday(t *testing.T) {
	m := newTestModel()
	if m.FocusDate != model.NewDate(2024, 3, 5) {
		t.Fatalf("expected focus on today, got %s", m.FocusDate)
	}
	if m.HelpVisible || m.Quitting {
		t.Fatalf("unexpected initial flags: %+v", m)
	}
}

func TestTypingAndEnterRunsCommand(t *testing.T) {
	m := newTestModel()
	m = typeText(m, "add todo water plants on:tue")
	m, _ = press(m, tea.KeyEnter)

	if ids := m.Session.TodoIDs(); len(ids) != 1 || ids[0] != 0 {
		t.Fatalf("expected one todo, got %v", ids)
	}
	if len(m.History) != 1 || m.History[0].Message != "added todo 0: water plants (Tuesday)" {
		t.Fatalf("unexpected history: %+v", m.History)
	}
	if m.Status.IsError || m.input.Value() != "" {
		t.Fatalf("expected clean prompt after success, status=%+v input=%q", m.Status, m.input.Value())
	}
}

func TestCommandErrorSetsErrorStatus(t *testing.T) {
	m := runCommand(newTestModel(), "remove todo 9")
	if !m.Status.IsError {
		t.Fatal("expected error status")
	}
	var cmdErr *commands.CommandError
	if !errors.As(m.LastError, &cmdErr) || cmdErr.Code != commands.ErrCodeNotFound {
		t.Fatalf("expected not_found command error, got %v", m.LastError)
	}
	if len(m.History) != 1 || !m.History[0].IsError {
		t.Fatalf("error should be recorded in history: %+v", m.History)
	}

	m = runCommand(m, "frobnicate")
	if !errors.As(m.LastError, &cmdErr) || cmdErr.Code != commands.ErrCodeUnknownCommand {
		t.Fatalf("expected unknown_command, got %v", m.LastError)
	}
}

func TestAgendaPaneFollowsFocus(t *testing.T) {
	m := runCommand(newTestModel(), "add event dentist on:2024-03-06")

	if pane := m.renderAgendaPane(); !strings.Contains(pane, "(today)") || !strings.Contains(pane, "nothing scheduled") {
		t.Fatalf("expected empty agenda for today, got:\n%s", pane)
	}

	m, _ = press(m, tea.KeyPgDown)
	if m.FocusDate != model.NewDate(2024, 3, 6) {
		t.Fatalf("pgdown should move focus forward, got %s", m.FocusDate)
	}
	if pane := m.renderAgendaPane(); !strings.Contains(pane, "#0 dentist") {
		t.Fatalf("expected event in agenda pane, got:\n%s", pane)
	}

	m, _ = press(m, tea.KeyPgUp)
	m, _ = press(m, tea.KeyPgUp)
	if m.FocusDate != model.NewDate(2024, 3, 4) {
		t.Fatalf("pgup should move focus back, got %s", m.FocusDate)
	}

	m, _ = press(m, tea.KeyHome)
	if m.FocusDate != model.NewDate(2024, 3, 5) {
		t.Fatalf("home should reset focus, got %s", m.FocusDate)
	}
}

func TestAgendaCommandMovesFocus(t *testing.T) {
	m := runCommand(newTestModel(), "agenda on:2024-12-25")
	if m.FocusDate != model.NewDate(2024, 12, 25) {
		t.Fatalf("expected focus to follow agenda date, got %s", m.FocusDate)
	}
}

func TestHelpToggleRequiresEmptyPrompt(t *testing.T) {
	m := typeText(newTestModel(), "?")
	if !m.HelpVisible {
		t.Fatal("expected help visible")
	}
	if !strings.Contains(m.View(), "toggle help") {
		t.Fatal("expected key help in view")
	}

	m = typeText(m, "?")
	if m.HelpVisible {
		t.Fatal("expected help hidden")
	}

	m = typeText(m, "get todo")
	m = typeText(m, "?")
	if m.HelpVisible || m.input.Value() != "get todo?" {
		t.Fatalf("? should be typed into a non-empty prompt, input=%q", m.input.Value())
	}
}

func TestEscClearsPromptThenQuits(t *testing.T) {
	m := typeText(newTestModel(), "add todo")
	m, cmd := press(m, tea.KeyEsc)
	if m.Quitting || cmd != nil || m.input.Value() != "" {
		t.Fatalf("first esc should clear the prompt, quitting=%v input=%q", m.Quitting, m.input.Value())
	}

	m, cmd = press(m, tea.KeyEsc)
	if !m.Quitting || cmd == nil {
		t.Fatal("esc on empty prompt should quit")
	}
}

func TestCtrlCQuits(t *testing.T) {
	m := typeText(newTestModel(), "add todo")
	m, cmd := press(m, tea.KeyCtrlC)
	if !m.Quitting || cmd == nil {
		t.Fatal("ctrl+c should always quit")
	}
}

func TestHistoryLimitAndClear(t *testing.T) {
	cfg := DefaultRuntimeConfig()
	cfg.HistoryLimit = 2
	m := NewModel(session.New(), cfg, fixedClock)
	m = runCommand(m, "add todo a")
	m = runCommand(m, "add todo b")
	m = runCommand(m, "add todo c")

	if len(m.History) != 2 || m.History[0].Message != "added todo 1: b" {
		t.Fatalf("expected trimmed history, got %+v", m.History)
	}

	m = runCommand(m, "clear")
	if len(m.History) != 0 {
		t.Fatalf("expected cleared history, got %d entries", len(m.History))
	}
	if len(m.Session.TodoIDs()) != 3 {
		t.Fatal("clear must not touch the session")
	}
}

func TestHelpCommandRendersReference(t *testing.T) {
	m := runCommand(newTestModel(), "help")
	if len(m.History) != 1 || !strings.Contains(m.History[0].Message, "agenda") {
		t.Fatalf("expected command reference in history, got %+v", m.History)
	}
}

func TestStatusMessages(t *testing.T) {
	m := newTestModel()
	next, _ := m.Update(SetStatusMsg{Text: "saved", IsError: false})
	m = next.(Model)
	if m.Status.Text != "saved" {
		t.Fatalf("unexpected status: %+v", m.Status)
	}
	next, _ = m.Update(AppErrorMsg{Err: errors.New("boom")})
	m = next.(Model)
	if !m.Status.IsError || m.Status.Text != "boom" {
		t.Fatalf("unexpected error status: %+v", m.Status)
	}
	next, _ = m.Update(ClearStatusMsg{})
	m = next.(Model)
	if m.Status.Text != "" {
		t.Fatalf("expected cleared status, got %+v", m.Status)
	}
}

func TestWindowResizeAndView(t *testing.T) {
	m := runCommand(newTestModel(), "add task standup for:15 on:tue")
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(Model)
	if m.paneWidth != 56 {
		t.Fatalf("expected pane width 56, got %d", m.paneWidth)
	}

	view := m.View()
	for _, want := range []string{"mtc | todos: 0 | tasks: 1 | events: 0", "agenda: 2024-03-05 Tuesday (today)", "task time: 15 min"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
}
