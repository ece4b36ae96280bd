package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/sandeepkv93/mtc/internal/views"
)

const commandReference = `# Commands

| command | does |
|---|---|
| ` + "`add todo <text> [on:<day>]`" + ` | add a todo, optionally on a weekday or date |
| ` + "`add task <text> for:<min> on:<day>`" + ` | add a task with a duration |
| ` + "`add event <text> on:<date>`" + ` | add a one-off event |
| ` + "`remove <kind> <id>`" + ` | remove an item |
| ` + "`get <kind> <id>`" + ` | show one item, removed or not |
| ` + "`show <kind> [on:<day>]`" + ` | list active items |
| ` + "`agenda [on:<date>] [days:<n>]`" + ` | everything scheduled per day |
| ` + "`next <kind> <id> [count:<n>]`" + ` | upcoming dates for an item |

Days are weekday names (` + "`tue`, `tuesday`" + `) or dates (` + "`2024-03-05`" + `).
Type ` + "`clear`" + ` to empty the history and ` + "`quit`" + ` to leave.
`

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

func (m Model) keyMap() helpKeyMap {
	bindings := []key.Binding{m.Keys.Submit, m.Keys.PrevDay, m.Keys.NextDay, m.Keys.Today, m.Keys.Help, m.Keys.Quit}
	return helpKeyMap{
		short: bindings,
		full:  [][]key.Binding{bindings[:1], bindings[1:4], bindings[4:]},
	}
}

func (m Model) renderHelpIfVisible() string {
	if !m.HelpVisible {
		return ""
	}
	return "\n\n" + m.renderHelpView()
}

func (m Model) renderHelpView() string {
	var plain []string
	for _, b := range m.keyMap().short {
		h := b.Help()
		plain = append(plain, fmt.Sprintf("- %s: %s", h.Key, h.Desc))
	}
	hm := m.helpModel
	hm.ShowAll = true
	return views.RenderHelpPanel(views.HelpPanelData{
		Bindings: plain,
		HelpView: hm.View(m.keyMap()),
	})
}

func renderCommandReference() string {
	return views.RenderMarkdown(commandReference)
}
