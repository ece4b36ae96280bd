package update

import (
	"fmt"

	"github.com/sandeepkv93/mtc/internal/model"
	"github.com/sandeepkv93/mtc/internal/views"
)

func (m Model) today() model.Date {
	return model.DateOf(m.clock())
}

func (m *Model) shiftFocus(delta int) {
	m.FocusDate = m.FocusDate.AddDays(delta)
	m.Status = StatusBar{Text: fmt.Sprintf("agenda focus: %s", dayTitle(m.FocusDate))}
}

func (m *Model) resetFocus() {
	m.FocusDate = m.today()
	m.Status = StatusBar{Text: "agenda focus: today"}
}

func (m Model) renderAgendaPane() string {
	day := m.Session.Day(m.FocusDate)
	return views.RenderAgendaPanel(views.AgendaPanelData{
		FocusDate:   day.Date.String(),
		Weekday:     day.Date.Weekday().String(),
		IsToday:     day.Date == m.today(),
		TaskMinutes: day.TaskMinutes(),
		Sections:    toViewSections(AgendaSections(day)),
	})
}
