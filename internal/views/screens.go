package views

import (
	"fmt"
	"strings"
)

type SectionData struct {
	Title string
	Lines []string
}

type ResultData struct {
	Input    string
	Message  string
	IsError  bool
	Sections []SectionData
}

type AgendaPanelData struct {
	FocusDate   string
	Weekday     string
	IsToday     bool
	TaskMinutes uint64
	Sections    []SectionData
}

type HelpPanelData struct {
	Bindings []string
	HelpView string
}

// RenderResult renders one command's output: the message, then each section
// as a bold header followed by its rows.
func RenderResult(data ResultData) string {
	var b strings.Builder
	if data.Input != "" {
		b.WriteString(mutedStyle.Render("> "+data.Input) + "\n")
	}
	if data.Message != "" {
		if data.IsError {
			b.WriteString(errorStyle.Render("error: "+data.Message) + "\n")
		} else {
			b.WriteString(data.Message + "\n")
		}
	}
	renderSections(&b, data.Sections)
	return strings.TrimSuffix(b.String(), "\n")
}

func RenderAgendaPanel(data AgendaPanelData) string {
	var b strings.Builder
	title := fmt.Sprintf("agenda: %s %s", data.FocusDate, data.Weekday)
	if data.IsToday {
		title += " (today)"
	}
	b.WriteString(headerStyle.Render(title) + "\n")
	b.WriteString(mutedStyle.Render("[pgup/pgdown]day [home]today") + "\n")
	if len(data.Sections) == 0 {
		b.WriteString("(nothing scheduled)")
		return b.String()
	}
	renderSections(&b, data.Sections)
	if data.TaskMinutes > 0 {
		b.WriteString(fmt.Sprintf("\ntask time: %d min", data.TaskMinutes))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("help:\n%s\n%s",
		strings.Join(data.Bindings, "\n"),
		data.HelpView,
	)
}

func renderSections(b *strings.Builder, sections []SectionData) {
	for _, sec := range sections {
		if sec.Title != "" {
			b.WriteString(sectionStyle.Render(sec.Title) + "\n")
		}
		if len(sec.Lines) == 0 {
			b.WriteString("  (none)\n")
			continue
		}
		for _, line := range sec.Lines {
			b.WriteString("  " + line + "\n")
		}
	}
}
