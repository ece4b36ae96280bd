package session

import (
	"github.com/sandeepkv93/mtc/internal/model"
	"github.com/sandeepkv93/mtc/internal/storage"
)

// Agenda is everything active on one date, grouped by kind.
type Agenda struct {
	Date   model.Date
	Todos  []storage.Entry[model.Todo]
	Tasks  []storage.Entry[model.Task]
	Events []storage.Entry[model.Event]
}

func (a Agenda) Empty() bool {
	return len(a.Todos) == 0 && len(a.Tasks) == 0 && len(a.Events) == 0
}

// TaskMinutes sums the durations of the day's tasks.
func (a Agenda) TaskMinutes() uint64 {
	var total uint64
	for _, t := range a.Tasks {
		total += uint64(t.Item.Duration)
	}
	return total
}

func (s *Session) Day(date model.Date) Agenda {
	return Agenda{
		Date:   date,
		Todos:  s.Todos.ItemsForDate(date),
		Tasks:  s.Tasks.ItemsForDate(date),
		Events: s.Events.ItemsForDate(date),
	}
}

// Days returns n consecutive daily agendas starting at start.
func (s *Session) Days(start model.Date, n int) []Agenda {
	if n <= 0 {
		return []Agenda{}
	}
	out := make([]Agenda, 0, min(n, 7))
	for i := 0; i < n; i++ {
		out = append(out, s.Day(start.AddDays(i)))
	}
	return out
}

func (s *Session) Week(start model.Date) []Agenda {
	return s.Days(start, 7)
}
