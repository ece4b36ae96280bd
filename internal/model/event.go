package model

import "fmt"

// Event is a one-off item pinned to a single date; it has no recurring form.
type Event struct {
	Body string
	On   Date
}

func NewEvent(body string, on Date) (Event, error) {
	e := Event{Body: body, On: on}
	if err := e.Validate(); err != nil {
		return Event{}, err
	}
	return e, nil
}

func (e Event) Schedule() ScheduleSpec { return OnDate(e.On) }

func (e Event) Validate() error {
	if err := validateBody(e.Body); err != nil {
		return err
	}
	if e.On.IsZero() {
		return ErrDateRequired
	}
	return OnDate(e.On).Validate()
}

func (e Event) String() string {
	return fmt.Sprintf("%s (%s %s)", e.Body, e.On, e.On.Weekday())
}
