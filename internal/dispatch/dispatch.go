// Package dispatch provides panic-safe invocation of registered
// callbacks. A misbehaving callback must never break input handling, so
// every gesture callback runs through Invoke and panics are captured
// into a Result instead of propagating.
package dispatch

import (
	"runtime/debug"
	"time"
)

// Result describes the outcome of one callback invocation.
type Result struct {
	// Panicked is true if the callback panicked.
	Panicked bool

	// PanicValue is the value passed to panic(), if Panicked is true.
	PanicValue any

	// PanicStack is the stack trace at the point of panic.
	PanicStack []byte

	// Duration is how long the callback took to execute.
	Duration time.Duration
}

// IsSuccess returns true if the callback completed without panicking.
func (r Result) IsSuccess() bool {
	return !r.Panicked
}

// PanicHandler is called when an invoked callback panics.
type PanicHandler func(panicValue any, stack []byte)

// Invoke runs fn, recovering any panic into the returned Result. A nil
// fn is a no-op success.
func Invoke(fn func()) (result Result) {
	if fn == nil {
		return Result{}
	}

	start := time.Now()
	defer func() {
		result.Duration = time.Since(start)
		if v := recover(); v != nil {
			result.Panicked = true
			result.PanicValue = v
			result.PanicStack = debug.Stack()
		}
	}()

	fn()
	return
}
