package model

import (
	"time"

	"github.com/teambition/rrule-go"
)

var rruleWeekdays = map[time.Weekday]rrule.Weekday{
	time.Sunday:    rrule.SU,
	time.Monday:    rrule.MO,
	time.Tuesday:   rrule.TU,
	time.Wednesday: rrule.WE,
	time.Thursday:  rrule.TH,
	time.Friday:    rrule.FR,
	time.Saturday:  rrule.SA,
}

// weeklyRule builds a FREQ=WEEKLY;BYDAY=<w> rule starting at from.
func weeklyRule(w time.Weekday, from Date) (*rrule.RRule, error) {
	return rrule.NewRRule(rrule.ROption{
		Freq:      rrule.WEEKLY,
		Interval:  1,
		Byweekday: []rrule.Weekday{rruleWeekdays[w]},
		Dtstart:   from.Time(time.UTC),
	})
}

// Occurrences lists the dates in [from, to] on which the schedule applies,
// in ascending order.
func (s ScheduleSpec) Occurrences(from, to Date) []Date {
	if to.Before(from) {
		return nil
	}
	switch s.Kind {
	case ScheduleOnDate:
		if s.Date.Before(from) || s.Date.After(to) {
			return nil
		}
		return []Date{s.Date}
	case ScheduleOnWeekday:
		rule, err := weeklyRule(s.Weekday, from)
		if err != nil {
			return nil
		}
		times := rule.Between(from.Time(time.UTC), to.Time(time.UTC), true)
		out := make([]Date, 0, len(times))
		for _, t := range times {
			out = append(out, DateOf(t))
		}
		return out
	default:
		return nil
	}
}

// NextAfter returns the first date strictly after from on which the schedule
// applies. Unscheduled items and dated items already past report false.
func (s ScheduleSpec) NextAfter(from Date) (Date, bool) {
	switch s.Kind {
	case ScheduleOnDate:
		if s.Date.After(from) {
			return s.Date, true
		}
		return Date{}, false
	case ScheduleOnWeekday:
		rule, err := weeklyRule(s.Weekday, from)
		if err != nil {
			return Date{}, false
		}
		next := rule.After(from.Time(time.UTC), false)
		if next.IsZero() {
			return Date{}, false
		}
		return DateOf(next), true
	default:
		return Date{}, false
	}
}

// Preview returns up to count upcoming dates, starting with from itself when
// the schedule applies on it.
func (s ScheduleSpec) Preview(from Date, count int) []Date {
	if count <= 0 {
		return []Date{}
	}
	out := make([]Date, 0, min(count, 16))
	if s.MatchesDate(from) {
		out = append(out, from)
	}
	cursor := from
	for len(out) < count {
		next, ok := s.NextAfter(cursor)
		if !ok {
			break
		}
		out = append(out, next)
		cursor = next
	}
	return out
}
