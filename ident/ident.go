package ident

import (
	"strconv"
	"sync/atomic"
)

// nextClockID is the process-wide monotonic counter backing NewClock.
// Starts at 0 so the first call to NewClock returns identity 1; identity 0
// is permanently reserved for the zero clock.
var nextClockID uint64

// nextParameterID is the process-wide monotonic counter backing NewParameter.
var nextParameterID uint64

// Clock is an opaque, totally-ordered identity for a real-valued clock
// variable. The zero value is not a valid Clock; use Zero() or NewClock.
type Clock struct {
	id uint64
}

// Zero returns the distinguished zero clock x0, fixed at value 0 and always
// resident at index 0 of any PDBM.
func Zero() Clock {
	return Clock{id: 0}
}

// NewClock allocates a fresh Clock with an identity strictly greater than
// every Clock allocated before it in this process, and strictly greater
// than Zero().
//
// Concurrency: safe for concurrent callers; identity allocation is a single
// atomic increment.
func NewClock() Clock {
	return Clock{id: atomic.AddUint64(&nextClockID, 1)}
}

// ID returns the raw numeric identity, useful for deterministic ordering in
// matrix-index assignment. It carries no other meaning.
func (c Clock) ID() uint64 { return c.id }

// IsZero reports whether c is the distinguished zero clock x0.
func (c Clock) IsZero() bool { return c.id == 0 }

// Less defines the total order on Clock: lower identity sorts first, so
// Zero() sorts before every allocated clock.
func (c Clock) Less(other Clock) bool { return c.id < other.id }

// String renders a stable textual form, "x0" for the zero clock and
// "c<id>" otherwise.
func (c Clock) String() string {
	if c.IsZero() {
		return "x0"
	}
	return "c" + strconv.FormatUint(c.id, 10)
}

// Parameter is an opaque, totally-ordered identity for a symbolic
// non-negative real parameter. The zero value is not a valid Parameter; use
// NewParameter.
type Parameter struct {
	id uint64
}

// NewParameter allocates a fresh Parameter with an identity strictly
// greater than every Parameter allocated before it in this process.
func NewParameter() Parameter {
	return Parameter{id: atomic.AddUint64(&nextParameterID, 1)}
}

// ID returns the raw numeric identity.
func (p Parameter) ID() uint64 { return p.id }

// Less defines the total order on Parameter: lower identity sorts first.
func (p Parameter) Less(other Parameter) bool { return p.id < other.id }

// String renders a stable textual form "p<id>".
func (p Parameter) String() string {
	return "p" + strconv.FormatUint(p.id, 10)
}
