// Package session owns the three item stores of one user session and exposes
// them through id-based calls, the shape a front end crossing a process or
// language boundary needs.
package session

import (
	"errors"
	"fmt"
	"time"

	applog "github.com/sandeepkv93/mtc/internal/log"
	"github.com/sandeepkv93/mtc/internal/model"
	"github.com/sandeepkv93/mtc/internal/storage"
)

var ErrUnknownKind = errors.New("session: unknown item kind")

type Session struct {
	Todos  *storage.Store[model.Todo]
	Tasks  *storage.Store[model.Task]
	Events *storage.Store[model.Event]
}

// New returns a session with three empty stores.
func New() *Session {
	return &Session{
		Todos:  storage.New[model.Todo](),
		Tasks:  storage.New[model.Task](),
		Events: storage.New[model.Event](),
	}
}

func (s *Session) AddTodo(body string, day *time.Weekday) (storage.ID, error) {
	todo, err := model.NewTodo(body, day)
	if err != nil {
		return 0, err
	}
	return s.added(model.KindTodo, s.Todos.Add(todo), todo), nil
}

func (s *Session) AddTodoOn(body string, when model.ScheduleSpec) (storage.ID, error) {
	todo, err := model.NewTodoOn(body, when)
	if err != nil {
		return 0, err
	}
	return s.added(model.KindTodo, s.Todos.Add(todo), todo), nil
}

func (s *Session) AddTask(body string, minutes uint32, day *time.Weekday) (storage.ID, error) {
	task, err := model.NewTask(body, minutes, day)
	if err != nil {
		return 0, err
	}
	return s.added(model.KindTask, s.Tasks.Add(task), task), nil
}

func (s *Session) AddTaskOn(body string, minutes uint32, when model.ScheduleSpec) (storage.ID, error) {
	task, err := model.NewTaskOn(body, minutes, when)
	if err != nil {
		return 0, err
	}
	return s.added(model.KindTask, s.Tasks.Add(task), task), nil
}

func (s *Session) AddEvent(body string, on model.Date) (storage.ID, error) {
	event, err := model.NewEvent(body, on)
	if err != nil {
		return 0, err
	}
	return s.added(model.KindEvent, s.Events.Add(event), event), nil
}

func (s *Session) added(kind model.Kind, id storage.ID, item model.Schedulable) storage.ID {
	applog.Debug("item added", "kind", kind, "id", id, "schedule", item.Schedule())
	return id
}

// String renders the item with the given id, including removed ones.
func (s *Session) String(kind model.Kind, id storage.ID) (string, error) {
	v, err := s.view(kind)
	if err != nil {
		return "", err
	}
	out, ok := v.render(id)
	if !ok {
		return "", notFound(kind, id)
	}
	return out, nil
}

func (s *Session) TodoString(id storage.ID) (string, error)  { return s.String(model.KindTodo, id) }
func (s *Session) TaskString(id storage.ID) (string, error)  { return s.String(model.KindTask, id) }
func (s *Session) EventString(id storage.ID) (string, error) { return s.String(model.KindEvent, id) }

// TaskDuration returns the task's duration in minutes.
func (s *Session) TaskDuration(id storage.ID) (uint32, error) {
	task, ok := s.Tasks.Get(id)
	if !ok {
		return 0, notFound(model.KindTask, id)
	}
	return task.Duration, nil
}

// IsRemoved reports whether id has been soft-removed.
func (s *Session) IsRemoved(kind model.Kind, id storage.ID) (bool, error) {
	v, err := s.view(kind)
	if err != nil {
		return false, err
	}
	removed, ok := v.removed(id)
	if !ok {
		return false, notFound(kind, id)
	}
	return removed, nil
}

func (s *Session) Remove(kind model.Kind, id storage.ID) error {
	v, err := s.view(kind)
	if err != nil {
		return err
	}
	if err := v.remove(id); err != nil {
		applog.Error("remove item", err, "kind", kind, "id", id)
		return err
	}
	applog.Debug("item removed", "kind", kind, "id", id)
	return nil
}

func (s *Session) RemoveTodo(id storage.ID) error  { return s.Remove(model.KindTodo, id) }
func (s *Session) RemoveTask(id storage.ID) error  { return s.Remove(model.KindTask, id) }
func (s *Session) RemoveEvent(id storage.ID) error { return s.Remove(model.KindEvent, id) }

// IDs lists the active ids of kind in ascending order.
func (s *Session) IDs(kind model.Kind) ([]storage.ID, error) {
	v, err := s.view(kind)
	if err != nil {
		return nil, err
	}
	return v.ids(), nil
}

func (s *Session) IDsForDate(kind model.Kind, date model.Date) ([]storage.ID, error) {
	v, err := s.view(kind)
	if err != nil {
		return nil, err
	}
	return v.idsForDate(date), nil
}

func (s *Session) IDsForWeekday(kind model.Kind, w time.Weekday) ([]storage.ID, error) {
	v, err := s.view(kind)
	if err != nil {
		return nil, err
	}
	return v.idsForWeekday(w), nil
}

func (s *Session) TodoIDs() []storage.ID  { return storage.IDs(s.Todos.Items()) }
func (s *Session) TaskIDs() []storage.ID  { return storage.IDs(s.Tasks.Items()) }
func (s *Session) EventIDs() []storage.ID { return storage.IDs(s.Events.Items()) }

// Upcoming previews up to count dates, starting at from, on which the item
// applies.
func (s *Session) Upcoming(kind model.Kind, id storage.ID, from model.Date, count int) ([]model.Date, error) {
	v, err := s.view(kind)
	if err != nil {
		return nil, err
	}
	spec, ok := v.schedule(id)
	if !ok {
		return nil, notFound(kind, id)
	}
	return spec.Preview(from, count), nil
}

func notFound(kind model.Kind, id storage.ID) error {
	return fmt.Errorf("%w: %s %d", storage.ErrNotFound, kind, id)
}
