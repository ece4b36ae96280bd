package model

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidSchedule = errors.New("model: invalid schedule")

type ScheduleKind string

const (
	ScheduleUnscheduled ScheduleKind = ""
	ScheduleOnDate      ScheduleKind = "on_date"
	ScheduleOnWeekday   ScheduleKind = "on_weekday"
)

func (k ScheduleKind) IsValid() bool {
	switch k {
	case ScheduleUnscheduled, ScheduleOnDate, ScheduleOnWeekday:
		return true
	default:
		return false
	}
}

// ScheduleSpec says when an item applies: on one calendar date, on every
// occurrence of a weekday, or (the zero value) never.
type ScheduleSpec struct {
	Kind    ScheduleKind
	Date    Date
	Weekday time.Weekday
}

func OnDate(d Date) ScheduleSpec {
	return ScheduleSpec{Kind: ScheduleOnDate, Date: d}
}

func OnWeekday(w time.Weekday) ScheduleSpec {
	return ScheduleSpec{Kind: ScheduleOnWeekday, Weekday: w}
}

func Unscheduled() ScheduleSpec {
	return ScheduleSpec{}
}

func (s ScheduleSpec) IsScheduled() bool {
	return s.Kind != ScheduleUnscheduled
}

func (s ScheduleSpec) Validate() error {
	switch s.Kind {
	case ScheduleUnscheduled:
		return nil
	case ScheduleOnDate:
		if s.Date.IsZero() {
			return fmt.Errorf("%w: missing date", ErrInvalidSchedule)
		}
		if !s.Date.normalized() {
			return fmt.Errorf("%w: %w: %d-%d-%d", ErrInvalidSchedule, ErrInvalidDate, s.Date.Year, s.Date.Month, s.Date.Day)
		}
		return nil
	case ScheduleOnWeekday:
		if !validWeekday(s.Weekday) {
			return fmt.Errorf("%w: weekday %d", ErrInvalidSchedule, s.Weekday)
		}
		return nil
	default:
		return fmt.Errorf("%w: kind %q", ErrInvalidSchedule, s.Kind)
	}
}

// MatchesDate reports whether the item applies on date. A weekday schedule
// matches every date falling on that weekday.
func (s ScheduleSpec) MatchesDate(date Date) bool {
	switch s.Kind {
	case ScheduleOnDate:
		return s.Date == date
	case ScheduleOnWeekday:
		return date.Weekday() == s.Weekday
	default:
		return false
	}
}

// MatchesWeekday reports whether the item applies on weekday w. A dated
// schedule matches the weekday its date falls on, so a one-off item also
// shows up in a recurring weekday view.
func (s ScheduleSpec) MatchesWeekday(w time.Weekday) bool {
	switch s.Kind {
	case ScheduleOnWeekday:
		return s.Weekday == w
	case ScheduleOnDate:
		return s.Date.Weekday() == w
	default:
		return false
	}
}

func (s ScheduleSpec) String() string {
	switch s.Kind {
	case ScheduleOnDate:
		return s.Date.String()
	case ScheduleOnWeekday:
		return s.Weekday.String()
	default:
		return ""
	}
}
