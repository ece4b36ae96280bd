package session

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/sandeepkv93/mtc/internal/model"
	"github.com/sandeepkv93/mtc/internal/storage"
)

func weekday(w time.Weekday) *time.Weekday { return &w }

func TestNewSessionStartsEmpty(t *testing.T) {
	s := New()
	if len(s.TodoIDs()) != 0 || len(s.TaskIDs()) != 0 || len(s.EventIDs()) != 0 {
		t.Fatal("expected empty stores")
	}
}

func TestStoresAreIndependent(t *testing.T) {
	s := New()
	todoID, err := s.AddTodo("buy milk", nil)
	if err != nil {
		t.Fatalf("add todo: %v", err)
	}
	taskID, err := s.AddTask("write report", 30, weekday(time.Friday))
	if err != nil {
		t.Fatalf("add task: %v", err)
	}
	eventID, err := s.AddEvent("dentist", model.NewDate(2024, time.March, 5))
	if err != nil {
		t.Fatalf("add event: %v", err)
	}
	if todoID != 0 || taskID != 0 || eventID != 0 {
		t.Fatalf("each store should number from zero: %d %d %d", todoID, taskID, eventID)
	}
	if err := s.RemoveTask(taskID); err != nil {
		t.Fatalf("remove task: %v", err)
	}
	if len(s.TodoIDs()) != 1 || len(s.EventIDs()) != 1 || len(s.TaskIDs()) != 0 {
		t.Fatal("removing a task touched another store")
	}
}

func TestConstructionErrorsNeverReachStore(t *testing.T) {
	s := New()
	if _, err := s.AddTask("no day", 10, nil); !errors.Is(err, model.ErrScheduleRequired) {
		t.Fatalf("expected ErrScheduleRequired, got %v", err)
	}
	if _, err := s.AddEvent("no date", model.Date{}); !errors.Is(err, model.ErrDateRequired) {
		t.Fatalf("expected ErrDateRequired, got %v", err)
	}
	if _, err := s.AddTodo("", nil); !errors.Is(err, model.ErrBodyRequired) {
		t.Fatalf("expected ErrBodyRequired, got %v", err)
	}
	if _, err := s.AddEvent("party", model.Date{Year: 2024, Month: time.February, Day: 30}); !errors.Is(err, model.ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
	if s.Tasks.Len() != 0 || s.Events.Len() != 0 || s.Todos.Len() != 0 {
		t.Fatal("invalid payload admitted into a store")
	}
}

func TestStringAndDuration(t *testing.T) {
	s := New()
	id, err := s.AddTask("Write report", 30, weekday(time.Friday))
	if err != nil {
		t.Fatalf("add task: %v", err)
	}
	got, err := s.TaskString(id)
	if err != nil || got != "Write report (30 min, Friday)" {
		t.Fatalf("unexpected task string %q err=%v", got, err)
	}
	minutes, err := s.TaskDuration(id)
	if err != nil || minutes != 30 {
		t.Fatalf("unexpected duration %d err=%v", minutes, err)
	}

	if _, err := s.TaskString(7); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := s.TaskDuration(7); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRemovedStillRenders(t *testing.T) {
	s := New()
	id, err := s.AddTodo("water plants", weekday(time.Monday))
	if err != nil {
		t.Fatalf("add todo: %v", err)
	}
	if err := s.RemoveTodo(id); err != nil {
		t.Fatalf("remove: %v", err)
	}
	got, err := s.TodoString(id)
	if err != nil || got != "water plants (Monday)" {
		t.Fatalf("unexpected rendering %q err=%v", got, err)
	}
	removed, err := s.IsRemoved(model.KindTodo, id)
	if err != nil || !removed {
		t.Fatalf("expected removed flag, got %v err=%v", removed, err)
	}
}

func TestRemoveUnknownID(t *testing.T) {
	s := New()
	if err := s.RemoveEvent(3); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUnknownKind(t *testing.T) {
	s := New()
	if _, err := s.IDs(model.Kind("note")); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
	if err := s.Remove(model.Kind("note"), 0); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
}

func TestIDsForDateAndWeekday(t *testing.T) {
	s := New()
	tuesday := model.NewDate(2024, time.March, 5)
	dated, err := s.AddTodoOn("call bank", model.OnDate(tuesday))
	if err != nil {
		t.Fatalf("add dated todo: %v", err)
	}
	weekly, err := s.AddTodo("gym", weekday(time.Tuesday))
	if err != nil {
		t.Fatalf("add weekly todo: %v", err)
	}
	if _, err := s.AddTodo("someday", nil); err != nil {
		t.Fatalf("add floating todo: %v", err)
	}

	ids, err := s.IDsForDate(model.KindTodo, tuesday.AddDays(7))
	if err != nil || len(ids) != 1 || ids[0] != weekly {
		t.Fatalf("unexpected ids next Tuesday: %v err=%v", ids, err)
	}
	ids, err = s.IDsForWeekday(model.KindTodo, time.Tuesday)
	if err != nil || len(ids) != 2 || ids[0] != dated || ids[1] != weekly {
		t.Fatalf("unexpected Tuesday ids: %v err=%v", ids, err)
	}
	ids, err = s.IDs(model.KindTodo)
	if err != nil || len(ids) != 3 {
		t.Fatalf("unexpected all ids: %v err=%v", ids, err)
	}
}

func TestDayAgenda(t *testing.T) {
	s := New()
	friday := model.NewDate(2024, time.March, 8)
	if _, err := s.AddTask("write report", 30, weekday(time.Friday)); err != nil {
		t.Fatalf("add task: %v", err)
	}
	if _, err := s.AddTaskOn("review", 45, model.OnDate(friday)); err != nil {
		t.Fatalf("add dated task: %v", err)
	}
	if _, err := s.AddEvent("party", friday); err != nil {
		t.Fatalf("add event: %v", err)
	}
	if _, err := s.AddTodo("stretch", weekday(time.Friday)); err != nil {
		t.Fatalf("add todo: %v", err)
	}

	day := s.Day(friday)
	if len(day.Tasks) != 2 || len(day.Events) != 1 || len(day.Todos) != 1 {
		t.Fatalf("unexpected agenda: %+v", day)
	}
	if day.TaskMinutes() != 75 {
		t.Fatalf("expected 75 task minutes, got %d", day.TaskMinutes())
	}
	big := New()
	for i := 0; i < 2; i++ {
		if _, err := big.AddTaskOn("marathon", math.MaxUint32, model.OnDate(friday)); err != nil {
			t.Fatalf("add task: %v", err)
		}
	}
	if got := big.Day(friday).TaskMinutes(); got != 2*uint64(math.MaxUint32) {
		t.Fatalf("task minutes wrapped: got %d", got)
	}
	if !s.Day(friday.AddDays(1)).Empty() {
		t.Fatal("expected empty Saturday")
	}

	week := s.Week(model.NewDate(2024, time.March, 4))
	if len(week) != 7 {
		t.Fatalf("expected 7 days, got %d", len(week))
	}
	if week[4].Date != friday || len(week[4].Tasks) != 2 {
		t.Fatalf("unexpected friday in week: %+v", week[4])
	}
	if got := s.Days(friday, 0); len(got) != 0 {
		t.Fatalf("expected no days, got %d", len(got))
	}
}

func TestUpcoming(t *testing.T) {
	s := New()
	id, err := s.AddTask("standup", 15, weekday(time.Monday))
	if err != nil {
		t.Fatalf("add task: %v", err)
	}
	dates, err := s.Upcoming(model.KindTask, id, model.NewDate(2024, time.March, 5), 2)
	if err != nil {
		t.Fatalf("upcoming: %v", err)
	}
	if len(dates) != 2 || dates[0].String() != "2024-03-11" || dates[1].String() != "2024-03-18" {
		t.Fatalf("unexpected upcoming dates: %v", dates)
	}
	if _, err := s.Upcoming(model.KindTask, 9, model.NewDate(2024, time.March, 5), 2); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
