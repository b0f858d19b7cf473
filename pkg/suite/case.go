// Package suite provides the core test harness primitives: a
// Case wraps a single boolean check with panic containment, a
// Suite executes an ordered collection of cases, and a Report
// aggregates the outcomes into a stable serializable shape.
package suite

import "errors"

// unknownErrMessage is recorded when a check panics with a
// value that carries no usable message.
const unknownErrMessage = "unknown error"

// Case is a single named check. It is immutable once
// constructed and owned by exactly one Suite.
type Case struct {
	name        string
	description string
	check       func() bool
}

// NewCase creates a Case wrapping the given check.
func NewCase(
	name, description string,
	check func() bool,
) *Case {
	return &Case{
		name:        name,
		description: description,
		check:       check,
	}
}

// Name returns the case name.
func (c *Case) Name() string { return c.name }

// Description returns the case description.
func (c *Case) Description() string { return c.description }

// Run executes the check exactly once. A panic raised by the
// check is contained here and returned as the error; it never
// propagates to the caller. The boolean result is only
// meaningful when the error is nil.
func (c *Case) Run() (passed bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			passed = false
			err = panicError(r)
		}
	}()
	return c.check(), nil
}

// panicError converts a recovered panic value into an error,
// preserving the message when the value carries one.
func panicError(r any) error {
	switch v := r.(type) {
	case error:
		return v
	case string:
		return errors.New(v)
	default:
		return errors.New(unknownErrMessage)
	}
}
