// This file is part of the reltrie library. See doc.go for license.

package reltrie

import (
	"errors"
	"fmt"
)

// Sentinel errors, in the teacher's style (cmd/jumps/instructions.go's
// package-level Err* values, eth/stagedsync's %w-wrapping at the call
// site). Every one of these signals programmer misuse, not a condition
// that can legitimately arise at runtime from valid input (spec §7): there
// is nothing to retry, so none of them is meant to be recovered from in
// normal operation — they exist so misuse fails loudly and is easy to
// pattern-match in tests with errors.Is.
var (
	// ErrInvalidArgument covers a nil adapter passed to New, or a matcher
	// slice whose length doesn't match the adapter's rank.
	ErrInvalidArgument = errors.New("reltrie: invalid argument")

	// ErrIndexOutOfRange covers indexed access past Count()-1.
	ErrIndexOutOfRange = errors.New("reltrie: index out of range")
)

func invalidArgument(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

func indexOutOfRange(i, count int) error {
	return fmt.Errorf("%w: index %d, count %d", ErrIndexOutOfRange, i, count)
}
