package storage

import (
	"errors"
	"time"

	"github.com/sandeepkv93/mtc/internal/model"
)

// ErrNotFound is returned when an id was never assigned by the store.
var ErrNotFound = errors.New("storage: not found")

// ID identifies an item within one store. It is never reused.
type ID uint64

// Record is a stored item together with its removal flag.
type Record[T any] struct {
	ID      ID
	Item    T
	Removed bool
}

// Entry is an active item handed out by queries.
type Entry[T any] struct {
	ID   ID
	Item T
}

// Repository is the item store contract shared by all item kinds.
type Repository[T model.Schedulable] interface {
	Add(item T) ID
	Get(id ID) (T, bool)
	Record(id ID) (Record[T], bool)
	MarkRemoved(id ID) error
	Items() []Entry[T]
	ItemsForDate(date model.Date) []Entry[T]
	ItemsForWeekday(w time.Weekday) []Entry[T]
	Len() int
}

// IDs projects entries onto their ids, preserving order.
func IDs[T any](entries []Entry[T]) []ID {
	out := make([]ID, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.ID)
	}
	return out
}
