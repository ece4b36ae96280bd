package update

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/mtc/internal/views"
)

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(typed.Width, typed.Height)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(typed)
	case RunCommandMsg:
		return m.runInput(typed.Input)
	case FocusDateMsg:
		m.FocusDate = typed.Date
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		m.Quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.Keys.Quit):
		if m.input.Value() != "" {
			m.input.Reset()
			return m, nil
		}
		m.Quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.Keys.Submit):
		return m.runInput(m.input.Value())
	case key.Matches(msg, m.Keys.PrevDay):
		m.shiftFocus(-1)
		return m, nil
	case key.Matches(msg, m.Keys.NextDay):
		m.shiftFocus(1)
		return m, nil
	case key.Matches(msg, m.Keys.Today):
		m.resetFocus()
		return m, nil
	case key.Matches(msg, m.Keys.Help) && m.input.Value() == "":
		m.HelpVisible = !m.HelpVisible
		if m.HelpVisible {
			m.Status = StatusBar{Text: "help shown"}
		} else {
			m.Status = StatusBar{Text: "help hidden"}
		}
		return m, nil
	case msg.String() == "up" || msg.String() == "down":
		var cmd tea.Cmd
		m.output, cmd = m.output.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) resize(width, height int) {
	if width > 0 {
		// two bordered, padded panes side by side
		if pw := width/2 - 4; pw >= 20 {
			m.paneWidth = pw
		}
		m.input.Width = width - 4
	}
	m.output.Width = m.paneWidth
	if height > 0 {
		h := height - 10
		if h < 5 {
			h = 5
		}
		m.output.Height = h
	}
	m.helpModel.Width = width
	m.syncOutput()
}

func (m Model) View() string {
	if m.Quitting {
		return ""
	}
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	output := m.output.View()
	if strings.TrimSpace(output) == "" {
		output = "type a command, or help for the reference"
	}

	return views.RenderApp(views.AppData{
		Header: fmt.Sprintf("mtc | todos: %d | tasks: %d | events: %d | today: %s",
			len(m.Session.Todos.Items()), len(m.Session.Tasks.Items()), len(m.Session.Events.Items()), dayTitle(m.today())),
		LeftPane:   output,
		RightPane:  m.renderAgendaPane() + m.renderHelpIfVisible(),
		Prompt:     m.input.View(),
		StatusLine: status,
		IsError:    m.Status.IsError,
		Footer:     m.helpModel.ShortHelpView(m.keyMap().ShortHelp()),
		PaneWidth:  m.paneWidth,
	})
}
