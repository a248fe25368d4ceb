package datepicker

import (
	"io"
	"log/slog"
	"slices"
	"sync"
)

// Store owns a State and notifies subscribers after every dispatch.
//
// Dispatch is meant to be called from a single goroutine (the UI loop).
// Nested dispatches from inside a subscriber run to completion before the
// outer Dispatch returns. State and Snapshot may be called from any goroutine.
type Store struct {
	mu     sync.RWMutex
	state  State
	subs   []*Subscription
	reduce func(State, Action) State

	logger    *slog.Logger
	observers []func(Action)
	depth     int
}

// Option configures a Store.
type Option func(*Store)

// WithLogger logs every dispatched action at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithObserver calls fn with every action before it is reduced.
func WithObserver(fn func(Action)) Option {
	return func(s *Store) {
		if fn != nil {
			s.observers = append(s.observers, fn)
		}
	}
}

// NewStore creates a store holding initial and reducing with reduce.
func NewStore(initial State, reduce func(State, Action) State, opts ...Option) *Store {
	s := &Store{
		state:  initial,
		reduce: reduce,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Dispatch reduces a into the next state and then notifies subscribers in
// registration order. Subscribers never observe a partially reduced state.
func (s *Store) Dispatch(a Action) {
	for _, fn := range s.observers {
		fn(a)
	}

	s.mu.Lock()
	s.state = s.reduce(s.state, a)
	subs := slices.Clone(s.subs)
	s.mu.Unlock()

	s.logger.Debug("dispatch", "action", a.Kind(), "depth", s.depth)

	s.depth++
	defer func() { s.depth-- }()
	for _, sub := range subs {
		if sub.active() {
			sub.notify(s.State())
		}
	}
}

// State returns the current state. Calendar slices are shared with the
// store and must not be modified; use Snapshot for a private copy.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() State {
	return s.State().Clone()
}

func (s *Store) add(sub *Subscription) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, sub)
}

func (s *Store) remove(sub *Subscription) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = slices.DeleteFunc(s.subs, func(x *Subscription) bool { return x == sub })
}

// Subscription is a registered observer. It stays active until Unsubscribe.
type Subscription struct {
	store  *Store
	notify func(State)
	mu     sync.Mutex
	closed bool
}

func (sub *Subscription) active() bool {
	sub.mu.Lock()
	defer sub.mu.Unlock()
	return !sub.closed
}

// Unsubscribe stops notifications. It is safe to call more than once and
// from inside the subscriber itself.
func (sub *Subscription) Unsubscribe() {
	if sub == nil {
		return
	}
	sub.mu.Lock()
	if sub.closed {
		sub.mu.Unlock()
		return
	}
	sub.closed = true
	sub.mu.Unlock()
	sub.store.remove(sub)
}

// Observe calls fn with project(state) right away and again after every
// dispatch whose projection differs from the last one delivered according to
// equal. Projections are always taken from the current state, so a
// notification that arrives after a nested dispatch already delivered a
// newer value is dropped rather than replayed.
func Observe[T any](s *Store, project func(State) T, equal func(a, b T) bool, fn func(T)) *Subscription {
	var last T
	sub := &Subscription{store: s}
	sub.notify = func(st State) {
		v := project(st)
		if equal(last, v) {
			return
		}
		last = v
		fn(v)
	}

	s.add(sub)
	last = project(s.State())
	fn(last)
	return sub
}

// Equals is the equality function for comparable projections.
func Equals[T comparable](a, b T) bool {
	return a == b
}
