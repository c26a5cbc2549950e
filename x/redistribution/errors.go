package redistribution

import "github.com/iov-one/custody/errors"

var (
	// ErrHalted is returned when a release is attempted while the
	// category wide halt is in effect.
	ErrHalted = errors.Register(1200, "release halted")

	// ErrEscrowPaused is returned when a release targets an escrow
	// that was paused.
	ErrEscrowPaused = errors.Register(1201, "escrow paused")

	// ErrNotPaused is returned when unpausing an escrow that is not
	// paused, or clearing a halt that is not set.
	ErrNotPaused = errors.Register(1202, "not paused")
)
