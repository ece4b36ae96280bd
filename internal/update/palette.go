package update

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/mtc/internal/commands"
	"github.com/sandeepkv93/mtc/internal/log"
	"github.com/sandeepkv93/mtc/internal/views"
)

func (m Model) runInput(input string) (Model, tea.Cmd) {
	raw := strings.TrimSpace(input)
	m.input.Reset()
	if raw == "" {
		return m, nil
	}

	switch strings.ToLower(strings.TrimPrefix(raw, "/")) {
	case "quit", "exit":
		m.Quitting = true
		return m, tea.Quit
	case "clear":
		m.History = nil
		m.Status = StatusBar{Text: "history cleared"}
		m.syncOutput()
		return m, nil
	case "help":
		m.record(views.ResultData{Input: raw, Message: renderCommandReference()})
		m.Status = StatusBar{Text: "command reference"}
		return m, nil
	}

	cmd, err := commands.Parse(raw)
	var res commands.Result
	if err == nil {
		res, err = commands.Execute(cmd, m.handlers)
	}
	if err != nil {
		log.Debug("command failed", "input", raw, "error", err)
		m.LastError = err
		m.record(views.ResultData{Input: raw, Message: err.Error(), IsError: true})
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}

	log.Debug("command executed", "type", cmd.Type, "input", raw)
	if cmd.Type == commands.TypeAgenda && cmd.Agenda.Date != nil {
		m.FocusDate = *cmd.Agenda.Date
	}
	m.LastError = nil
	m.record(ResultData(raw, res))
	m.Status = StatusBar{Text: res.Message}
	return m, nil
}

func (m *Model) record(entry views.ResultData) {
	m.History = append(m.History, entry)
	if limit := m.Config.HistoryLimit; limit > 0 && len(m.History) > limit {
		m.History = m.History[len(m.History)-limit:]
	}
	m.syncOutput()
}

func (m *Model) syncOutput() {
	blocks := make([]string, 0, len(m.History))
	for _, entry := range m.History {
		blocks = append(blocks, views.RenderResult(entry))
	}
	m.output.SetContent(strings.Join(blocks, "\n\n"))
	m.output.GotoBottom()
}

// ResultData converts a command result into its rendered form.
func ResultData(input string, res commands.Result) views.ResultData {
	return views.ResultData{Input: input, Message: res.Message, Sections: toViewSections(res.Sections)}
}

func toViewSections(sections []commands.Section) []views.SectionData {
	out := make([]views.SectionData, 0, len(sections))
	for _, s := range sections {
		out = append(out, views.SectionData{Title: s.Title, Lines: s.Lines})
	}
	return out
}
