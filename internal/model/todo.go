package model

import "time"

type Todo struct {
	Body string
	When ScheduleSpec
}

// NewTodo builds a todo bound to day, or an unscheduled one when day is nil.
func NewTodo(body string, day *time.Weekday) (Todo, error) {
	when := Unscheduled()
	if day != nil {
		when = OnWeekday(*day)
	}
	return NewTodoOn(body, when)
}

func NewTodoOn(body string, when ScheduleSpec) (Todo, error) {
	t := Todo{Body: body, When: when}
	if err := t.Validate(); err != nil {
		return Todo{}, err
	}
	return t, nil
}

func (t Todo) Schedule() ScheduleSpec { return t.When }

func (t Todo) Validate() error {
	if err := validateBody(t.Body); err != nil {
		return err
	}
	return t.When.Validate()
}

func (t Todo) String() string {
	if !t.When.IsScheduled() {
		return t.Body
	}
	return t.Body + " (" + t.When.String() + ")"
}
