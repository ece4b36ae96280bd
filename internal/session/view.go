package session

import (
	"fmt"
	"time"

	"github.com/sandeepkv93/mtc/internal/model"
	"github.com/sandeepkv93/mtc/internal/storage"
)

// itemView erases the item type so the three stores can be addressed by kind.
type itemView interface {
	render(id storage.ID) (string, bool)
	schedule(id storage.ID) (model.ScheduleSpec, bool)
	removed(id storage.ID) (bool, bool)
	remove(id storage.ID) error
	ids() []storage.ID
	idsForDate(d model.Date) []storage.ID
	idsForWeekday(w time.Weekday) []storage.ID
}

type storeView[T model.Schedulable] struct {
	store *storage.Store[T]
}

func (v storeView[T]) render(id storage.ID) (string, bool) {
	item, ok := v.store.Get(id)
	if !ok {
		return "", false
	}
	return item.String(), true
}

func (v storeView[T]) schedule(id storage.ID) (model.ScheduleSpec, bool) {
	item, ok := v.store.Get(id)
	if !ok {
		return model.ScheduleSpec{}, false
	}
	return item.Schedule(), true
}

func (v storeView[T]) removed(id storage.ID) (bool, bool) {
	rec, ok := v.store.Record(id)
	return rec.Removed, ok
}

func (v storeView[T]) remove(id storage.ID) error {
	return v.store.MarkRemoved(id)
}

func (v storeView[T]) ids() []storage.ID {
	return storage.IDs(v.store.Items())
}

func (v storeView[T]) idsForDate(d model.Date) []storage.ID {
	return storage.IDs(v.store.ItemsForDate(d))
}

func (v storeView[T]) idsForWeekday(w time.Weekday) []storage.ID {
	return storage.IDs(v.store.ItemsForWeekday(w))
}

func (s *Session) view(kind model.Kind) (itemView, error) {
	switch kind {
	case model.KindTodo:
		return storeView[model.Todo]{store: s.Todos}, nil
	case model.KindTask:
		return storeView[model.Task]{store: s.Tasks}, nil
	case model.KindEvent:
		return storeView[model.Event]{store: s.Events}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}
