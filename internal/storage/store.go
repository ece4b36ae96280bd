package storage

import (
	"fmt"
	"sync"
	"time"

	"github.com/sandeepkv93/mtc/internal/model"
)

// Store keeps items of one kind in memory. Ids are slot positions: records
// are only ever appended and removal flips a flag, so an id stays resolvable
// for the lifetime of the store.
type Store[T model.Schedulable] struct {
	mu      sync.RWMutex
	records []Record[T]
}

var (
	_ Repository[model.Todo]  = (*Store[model.Todo])(nil)
	_ Repository[model.Task]  = (*Store[model.Task])(nil)
	_ Repository[model.Event] = (*Store[model.Event])(nil)
)

// New returns an empty store.
func New[T model.Schedulable]() *Store[T] {
	return &Store[T]{records: make([]Record[T], 0)}
}

// Add appends item and returns its freshly assigned id.
func (s *Store[T]) Add(item T) ID {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := ID(len(s.records))
	s.records = append(s.records, Record[T]{ID: id, Item: item})
	return id
}

// Get returns the item for any id the store has assigned, removed or not.
func (s *Store[T]) Get(id ID) (T, bool) {
	rec, ok := s.Record(id)
	return rec.Item, ok
}

// Record returns the full record for id, including its removal flag.
func (s *Store[T]) Record(id ID) (Record[T], bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.inRange(id) {
		return Record[T]{}, false
	}
	return s.records[id], true
}

// MarkRemoved soft-removes the item. Removing twice is not an error.
func (s *Store[T]) MarkRemoved(id ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.inRange(id) {
		return fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	s.records[id].Removed = true
	return nil
}

// Items returns all active items in ascending id order.
func (s *Store[T]) Items() []Entry[T] {
	return s.filter(func(T) bool { return true })
}

// ItemsForDate returns active items applying on date, including weekday
// items whose weekday matches it.
func (s *Store[T]) ItemsForDate(date model.Date) []Entry[T] {
	return s.filter(func(item T) bool {
		return item.Schedule().MatchesDate(date)
	})
}

// ItemsForWeekday returns active items applying on w, including dated items
// falling on that weekday.
func (s *Store[T]) ItemsForWeekday(w time.Weekday) []Entry[T] {
	return s.filter(func(item T) bool {
		return item.Schedule().MatchesWeekday(w)
	})
}

// Len reports how many ids have been assigned.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

func (s *Store[T]) filter(keep func(T) bool) []Entry[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Entry[T], 0)
	for _, rec := range s.records {
		if rec.Removed || !keep(rec.Item) {
			continue
		}
		out = append(out, Entry[T]{ID: rec.ID, Item: rec.Item})
	}
	return out
}

func (s *Store[T]) inRange(id ID) bool {
	return uint64(id) < uint64(len(s.records))
}
