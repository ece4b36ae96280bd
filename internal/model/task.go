package model

import (
	"fmt"
	"time"
)

type Task struct {
	Body string
	// Duration is in minutes.
	Duration uint32
	When     ScheduleSpec
}

// NewTask builds a task for a weekday. A nil day is rejected rather than
// defaulted.
func NewTask(body string, duration uint32, day *time.Weekday) (Task, error) {
	if day == nil {
		return Task{}, ErrScheduleRequired
	}
	return NewTaskOn(body, duration, OnWeekday(*day))
}

func NewTaskOn(body string, duration uint32, when ScheduleSpec) (Task, error) {
	t := Task{Body: body, Duration: duration, When: when}
	if err := t.Validate(); err != nil {
		return Task{}, err
	}
	return t, nil
}

func (t Task) Schedule() ScheduleSpec { return t.When }

func (t Task) Validate() error {
	if err := validateBody(t.Body); err != nil {
		return err
	}
	if !t.When.IsScheduled() {
		return ErrScheduleRequired
	}
	return t.When.Validate()
}

func (t Task) String() string {
	return fmt.Sprintf("%s (%d min, %s)", t.Body, t.Duration, t.When)
}
