package rhash

import "github.com/cockroachdb/errors"

// Sentinel markers for the three error kinds spec §7 distinguishes.
// Callers use errors.Is against these to classify a failure without
// string-matching.
var (
	// ErrConfig marks an invalid construction parameter.
	ErrConfig = errors.New("rhash: invalid configuration")
	// ErrState marks a precondition violation, such as calling an l*
	// accessor without a preceding successful lookup on the same slot.
	ErrState = errors.New("rhash: invalid state")
	// ErrAlloc marks a failed grow; the table is guaranteed to remain in
	// its pre-call state (spec §4.7, §7).
	ErrAlloc = errors.New("rhash: allocation failed")
)

func newConfigError(format string, args ...interface{}) error {
	return errors.Wrapf(ErrConfig, format, args...)
}

func newStateError(format string, args ...interface{}) error {
	return errors.Wrapf(ErrState, format, args...)
}

func newAllocError(format string, args ...interface{}) error {
	return errors.Wrapf(ErrAlloc, format, args...)
}
