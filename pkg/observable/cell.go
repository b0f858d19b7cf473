// Package observable provides a single mutable value with
// change-triggered subscriber notification.
package observable

// noCopy flags accidental copies to go vet, the same trick the
// sync package types use. Cells must only be used via pointer.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Cell holds a single value of type T and notifies registered
// subscribers, in registration order, whenever the value
// effectively changes.
//
// Change suppression is governed by the cell's equality policy:
// a Set whose value compares equal to the current one is a
// no-op and triggers no notification. Cells built with
// NewWithEqual and a nil policy treat every Set as a change.
//
// A Cell is not safe for concurrent use; callers that share a
// cell across goroutines must synchronize externally.
type Cell[T any] struct {
	noCopy noCopy //nolint:unused

	value       T
	subscribers []func(T)
	equal       func(a, b T) bool

	notifying bool
	pending   []T
}

// New creates a Cell whose change suppression uses the built-in
// == comparison of T.
func New[T comparable](initial T) *Cell[T] {
	return &Cell[T]{
		value: initial,
		equal: func(a, b T) bool { return a == b },
	}
}

// NewWithEqual creates a Cell with an explicit equality policy
// for types without a usable == comparison. A nil policy means
// no comparison capability: every Set is treated as a change
// and notifies.
func NewWithEqual[T any](
	initial T,
	equal func(a, b T) bool,
) *Cell[T] {
	return &Cell[T]{value: initial, equal: equal}
}

// Get returns the current value. It has no side effects and
// never triggers a subscriber call.
func (c *Cell[T]) Get() T { return c.value }

// Subscribe appends a callback to the subscriber sequence.
// There is no upper bound and no deduplication; the same
// callback registered twice is invoked twice per change.
func (c *Cell[T]) Subscribe(fn func(T)) {
	c.subscribers = append(c.subscribers, fn)
}

// Len returns the number of registered subscribers.
func (c *Cell[T]) Len() int { return len(c.subscribers) }

// Set replaces the stored value and notifies every subscriber
// with the new value, unless the equality policy reports the
// value as unchanged.
//
// A Set issued from inside a subscriber during an active
// notification pass is queued and applied, in order, once the
// pass finishes; the same suppression rules apply to each
// queued value.
func (c *Cell[T]) Set(v T) {
	if c.notifying {
		c.pending = append(c.pending, v)
		return
	}

	c.apply(v)
	for len(c.pending) > 0 {
		next := c.pending[0]
		c.pending = c.pending[1:]
		c.apply(next)
	}
}

// apply performs one suppression check and, on change, one full
// notification pass.
func (c *Cell[T]) apply(v T) {
	if c.equal != nil && c.equal(c.value, v) {
		return
	}

	c.value = v

	c.notifying = true
	defer func() { c.notifying = false }()

	for _, fn := range c.subscribers {
		invoke(fn, v)
	}
}

// invoke runs one subscriber, containing any panic so that
// later subscribers in the sequence still run and the stored
// value is unaffected.
func invoke[T any](fn func(T), v T) {
	defer func() { _ = recover() }()
	fn(v)
}
