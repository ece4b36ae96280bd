package update

import (
	"errors"
	"fmt"
	"time"

	"github.com/sandeepkv93/mtc/internal/commands"
	"github.com/sandeepkv93/mtc/internal/model"
	"github.com/sandeepkv93/mtc/internal/session"
	"github.com/sandeepkv93/mtc/internal/storage"
)

// NewHandlers binds the command language to sess. clock supplies "today" for
// agenda and next; a nil clock means time.Now.
func NewHandlers(sess *session.Session, clock func() time.Time, cfg RuntimeConfig) commands.Handlers {
	if clock == nil {
		clock = time.Now
	}
	today := func() model.Date { return model.DateOf(clock()) }

	return commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			var (
				id  storage.ID
				err error
			)
			switch a.Kind {
			case model.KindTodo:
				id, err = sess.AddTodoOn(a.Body, a.When)
			case model.KindTask:
				id, err = sess.AddTaskOn(a.Body, a.Minutes, a.When)
			case model.KindEvent:
				id, err = sess.AddEvent(a.Body, a.When.Date)
			default:
				err = fmt.Errorf("%w: %q", session.ErrUnknownKind, a.Kind)
			}
			if err != nil {
				return commands.Result{}, commandError(err)
			}
			text, err := sess.String(a.Kind, id)
			if err != nil {
				return commands.Result{}, commandError(err)
			}
			return commands.Result{Message: fmt.Sprintf("added %s %d: %s", a.Kind, id, text)}, nil
		},
		Remove: func(r commands.RemoveArgs) (commands.Result, error) {
			if err := sess.Remove(r.Kind, r.ID); err != nil {
				return commands.Result{}, commandError(err)
			}
			return commands.Result{Message: fmt.Sprintf("removed %s %d", r.Kind, r.ID)}, nil
		},
		Get: func(g commands.GetArgs) (commands.Result, error) {
			text, err := sess.String(g.Kind, g.ID)
			if err != nil {
				return commands.Result{}, commandError(err)
			}
			removed, err := sess.IsRemoved(g.Kind, g.ID)
			if err != nil {
				return commands.Result{}, commandError(err)
			}
			if removed {
				text += " [removed]"
			}
			return commands.Result{Message: fmt.Sprintf("#%d %s", g.ID, text)}, nil
		},
		Show: func(s commands.ShowArgs) (commands.Result, error) {
			var lines []string
			switch s.Kind {
			case model.KindTodo:
				lines = showLines(sess.Todos, s)
			case model.KindTask:
				lines = showLines(sess.Tasks, s)
			case model.KindEvent:
				lines = showLines(sess.Events, s)
			default:
				return commands.Result{}, commandError(fmt.Errorf("%w: %q", session.ErrUnknownKind, s.Kind))
			}
			return commands.Result{
				Message:  fmt.Sprintf("%d %s(s)", len(lines), s.Kind),
				Sections: []commands.Section{{Title: showTitle(s), Lines: lines}},
			}, nil
		},
		Agenda: func(a commands.AgendaArgs) (commands.Result, error) {
			start := today()
			if a.Date != nil {
				start = *a.Date
			}
			days := a.Days
			if days <= 0 {
				days = cfg.AgendaDays
			}
			days = max(1, min(days, commands.MaxAgendaDays))
			res := commands.Result{Message: fmt.Sprintf("agenda for %d day(s) from %s", days, start)}
			for _, day := range sess.Days(start, days) {
				res.Sections = append(res.Sections, commands.Section{
					Title: dayTitle(day.Date),
					Lines: AgendaLines(day),
				})
			}
			return res, nil
		},
		Next: func(n commands.NextArgs) (commands.Result, error) {
			count := n.Count
			if count <= 0 {
				count = cfg.PreviewCount
			}
			count = min(count, commands.MaxPreviewCount)
			text, err := sess.String(n.Kind, n.ID)
			if err != nil {
				return commands.Result{}, commandError(err)
			}
			dates, err := sess.Upcoming(n.Kind, n.ID, today(), count)
			if err != nil {
				return commands.Result{}, commandError(err)
			}
			lines := make([]string, 0, len(dates))
			for _, d := range dates {
				lines = append(lines, dayTitle(d))
			}
			msg := fmt.Sprintf("next dates for %s %d: %s", n.Kind, n.ID, text)
			if len(lines) == 0 {
				msg = fmt.Sprintf("no upcoming dates for %s %d: %s", n.Kind, n.ID, text)
			}
			return commands.Result{
				Message:  msg,
				Sections: []commands.Section{{Title: "upcoming", Lines: lines}},
			}, nil
		},
	}
}

// AgendaSections groups a day's items by kind, skipping empty kinds.
func AgendaSections(day session.Agenda) []commands.Section {
	var out []commands.Section
	if len(day.Events) > 0 {
		out = append(out, commands.Section{Title: "events", Lines: entryLines(day.Events)})
	}
	if len(day.Tasks) > 0 {
		out = append(out, commands.Section{Title: "tasks", Lines: entryLines(day.Tasks)})
	}
	if len(day.Todos) > 0 {
		out = append(out, commands.Section{Title: "todos", Lines: entryLines(day.Todos)})
	}
	return out
}

// AgendaLines flattens a day into one row per item, prefixed with its kind.
func AgendaLines(day session.Agenda) []string {
	var out []string
	for _, sec := range AgendaSections(day) {
		kind := sec.Title[:len(sec.Title)-1]
		for _, line := range sec.Lines {
			out = append(out, kind+" "+line)
		}
	}
	return out
}

func showLines[T model.Schedulable](store *storage.Store[T], args commands.ShowArgs) []string {
	switch {
	case args.Date != nil:
		return entryLines(store.ItemsForDate(*args.Date))
	case args.Weekday != nil:
		return entryLines(store.ItemsForWeekday(*args.Weekday))
	default:
		return entryLines(store.Items())
	}
}

func entryLines[T model.Schedulable](entries []storage.Entry[T]) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, fmt.Sprintf("#%d %s", e.ID, e.Item.String()))
	}
	return out
}

func showTitle(s commands.ShowArgs) string {
	title := string(s.Kind) + "s"
	switch {
	case s.Date != nil:
		return title + " on " + dayTitle(*s.Date)
	case s.Weekday != nil:
		return title + " on " + s.Weekday.String()
	}
	return title
}

func dayTitle(d model.Date) string {
	return d.String() + " " + d.Weekday().String()
}

// commandError maps engine errors onto user-facing command errors. Anything
// it does not recognise is returned unchanged.
func commandError(err error) error {
	var cmdErr *commands.CommandError
	switch {
	case errors.As(err, &cmdErr):
		return err
	case errors.Is(err, storage.ErrNotFound):
		return &commands.CommandError{Code: commands.ErrCodeNotFound, Message: err.Error()}
	case errors.Is(err, model.ErrBodyRequired),
		errors.Is(err, model.ErrScheduleRequired),
		errors.Is(err, model.ErrDateRequired),
		errors.Is(err, model.ErrInvalidSchedule),
		errors.Is(err, model.ErrInvalidDate),
		errors.Is(err, model.ErrInvalidWeekday),
		errors.Is(err, session.ErrUnknownKind):
		return &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: err.Error()}
	}
	return err
}
