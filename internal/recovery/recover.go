// Package recovery turns panics raised by user-supplied criteria and hooks
// into logged errors, so one faulty filter fails its request only.
package recovery

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
)

// ErrPanic is wrapped by errors returned for recovered panics.
var ErrPanic = errors.New("panic recovered")

// RecoverToValue runs fn and converts a panic into an error wrapping
// ErrPanic. The zero T is returned in that case.
//
// Example:
//
//	q, err := recovery.RecoverToValue(logger, "criterion title", func() (*expr.Query, error) {
//	    return criterion.Apply(q, c, cond, values, search, opts)
//	})
func RecoverToValue[T any](logger *slog.Logger, operation string, fn func() (T, error)) (result T, err error) {
	defer func() {
		if r := recover(); r != nil {
			report(logger, "Criterion panicked", operation, r)
			var zero T
			result, err = zero, fmt.Errorf("%w: %s panicked: %v", ErrPanic, operation, r)
		}
	}()
	return fn()
}

// Recover runs fn and logs a panic instead of propagating it.
func Recover(logger *slog.Logger, operation string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			report(logger, "Hook panicked", operation, r)
		}
	}()
	fn()
}

func report(logger *slog.Logger, msg, operation string, r any) {
	logger.Error(msg,
		"operation", operation,
		"panic", r,
		"stack", string(debug.Stack()),
	)
}
