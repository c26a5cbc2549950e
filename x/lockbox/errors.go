package lockbox

import "github.com/iov-one/custody/errors"

var (
	// ErrLockboxPaused is returned when a release targets a paused
	// lockbox.
	ErrLockboxPaused = errors.Register(1210, "lockbox paused")

	// ErrImmature is returned when a release is attempted before the
	// maturity height.
	ErrImmature = errors.Register(1211, "not matured")

	// ErrLockboxNotPaused is returned when unpausing a lockbox that is
	// not paused.
	ErrLockboxNotPaused = errors.Register(1212, "lockbox not paused")
)
