package model

import (
	"errors"
	"strings"
)

var (
	ErrBodyRequired     = errors.New("model: body is required")
	ErrScheduleRequired = errors.New("model: task requires a date or weekday")
	ErrDateRequired     = errors.New("model: event requires a date")
)

type Kind string

const (
	KindTodo  Kind = "todo"
	KindTask  Kind = "task"
	KindEvent Kind = "event"
)

func (k Kind) IsValid() bool {
	switch k {
	case KindTodo, KindTask, KindEvent:
		return true
	default:
		return false
	}
}

// Schedulable is implemented by every item kind a store can hold.
type Schedulable interface {
	Schedule() ScheduleSpec
	Validate() error
	String() string
}

func validateBody(body string) error {
	if strings.TrimSpace(body) == "" {
		return ErrBodyRequired
	}
	return nil
}
