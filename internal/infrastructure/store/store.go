// Package store provides the claims state container: a single snapshot
// transitioned only by the reducer, with a channel-based action stream for
// effects and UI observers.
package store

import (
	"sync"

	"github.com/Joud-BaniIssa/claims-go/internal/domain/state"
)

// wildcard subscribes to every action type.
const wildcard state.ActionType = "*"

// Handler is a function invoked for dispatched actions.
type Handler func(action state.Action)

// Store owns the snapshot. Dispatch applies the reducer synchronously under
// the write lock, so actions hit the snapshot in dispatch order; fan-out to
// subscribers happens after the transition. Reads never block dispatches of
// unrelated flows because effects suspend only outside the lock.
type Store struct {
	mu          sync.RWMutex
	state       state.State
	subscribers map[state.ActionType][]*subscription
	handlers    map[state.ActionType][]Handler
	bufferSize  int
	nextSubID   int
	closed      bool
}

type subscription struct {
	id int
	ch chan state.Action
}

// Option configures the Store.
type Option func(*Store)

// WithBufferSize sets the subscriber channel buffer size.
func WithBufferSize(size int) Option {
	return func(s *Store) {
		s.bufferSize = size
	}
}

// WithInitialState seeds the snapshot, e.g. for tests or rehydration.
func WithInitialState(st state.State) Option {
	return func(s *Store) {
		s.state = st
	}
}

// New creates a store holding the initial snapshot.
func New(opts ...Option) *Store {
	s := &Store{
		state:       state.Initial(),
		subscribers: make(map[state.ActionType][]*subscription),
		handlers:    make(map[state.ActionType][]Handler),
		bufferSize:  100,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// State returns the current snapshot.
func (s *Store) State() state.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Dispatch applies the action to the snapshot and notifies subscribers.
// It never returns an error: I/O failures arrive as failure actions.
func (s *Store) Dispatch(action state.Action) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.state = state.Reduce(s.state, action)

	subs := append([]*subscription(nil), s.subscribers[action.Type()]...)
	subs = append(subs, s.subscribers[wildcard]...)
	handlers := append([]Handler(nil), s.handlers[action.Type()]...)
	handlers = append(handlers, s.handlers[wildcard]...)
	s.mu.Unlock()

	for _, sub := range subs {
		select {
		case sub.ch <- action:
		default:
			// Subscriber is not keeping up; drop rather than block dispatch.
		}
	}

	for _, h := range handlers {
		go h(action)
	}
}

// Subscribe returns a channel receiving actions of the given type.
func (s *Store) Subscribe(actionType state.ActionType) <-chan state.Action {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub := &subscription{id: s.nextSubID, ch: make(chan state.Action, s.bufferSize)}
	s.nextSubID++
	s.subscribers[actionType] = append(s.subscribers[actionType], sub)
	return sub.ch
}

// SubscribeAll returns a channel receiving every dispatched action.
func (s *Store) SubscribeAll() <-chan state.Action {
	return s.Subscribe(wildcard)
}

// Unsubscribe removes a subscription channel and closes it.
func (s *Store) Unsubscribe(actionType state.ActionType, ch <-chan state.Action) {
	s.mu.Lock()
	defer s.mu.Unlock()

	subs := s.subscribers[actionType]
	for i, sub := range subs {
		if sub.ch == ch {
			s.subscribers[actionType] = append(subs[:i], subs[i+1:]...)
			close(sub.ch)
			return
		}
	}
}

// UnsubscribeAll removes a channel obtained from SubscribeAll.
func (s *Store) UnsubscribeAll(ch <-chan state.Action) {
	s.Unsubscribe(wildcard, ch)
}

// On registers a handler invoked for actions of the given type.
func (s *Store) On(actionType state.ActionType, handler Handler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handlers[actionType] = append(s.handlers[actionType], handler)
}

// Close closes all subscriber channels; further dispatches are ignored.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true

	for _, subs := range s.subscribers {
		for _, sub := range subs {
			close(sub.ch)
		}
	}
	s.subscribers = make(map[state.ActionType][]*subscription)
	s.handlers = make(map[state.ActionType][]Handler)
}
