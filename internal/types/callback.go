package types

import (
	"container/list"
	"iter"
)

// CallbackManager keeps an ordered set of callbacks.
// It is not safe for concurrent use, the owner serializes access.
type CallbackManager[T any] struct {
	cbs    map[int]*list.Element
	order  *list.List
	nextID int
}

type callback[T any] struct {
	id int
	cb T
}

func (m *CallbackManager[T]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.cbs)
}

// Add appends cb and returns a function that removes it.
// The remove function can be called multiple times.
func (m *CallbackManager[T]) Add(cb T) (remove func()) {
	id := m.nextID
	m.nextID++

	if m.cbs == nil {
		m.cbs = make(map[int]*list.Element)
	}
	if m.order == nil {
		m.order = list.New()
	}
	m.cbs[id] = m.order.PushBack(&callback[T]{id, cb})

	return func() {
		if el, ok := m.cbs[id]; ok {
			m.order.Remove(el)
			delete(m.cbs, id)
		}
	}
}

// All iterates over a snapshot of the callbacks in the order they were added,
// so callbacks may add or remove callbacks while being iterated.
func (m *CallbackManager[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if m == nil || m.order == nil {
			return
		}

		callbacks := make([]T, 0, m.order.Len())
		for el := m.order.Front(); el != nil; el = el.Next() {
			callbacks = append(callbacks, el.Value.(*callback[T]).cb) //nolint:forcetypeassert
		}

		for _, cb := range callbacks {
			if !yield(cb) {
				return
			}
		}
	}
}

// Clear removes all callbacks.
func (m *CallbackManager[T]) Clear() {
	if m == nil {
		return
	}
	m.cbs = nil
	m.order = nil
}
