package lockbox

import (
	"github.com/iov-one/custody"
	"github.com/iov-one/custody/coin"
	"github.com/iov-one/custody/errors"
)

const (
	pathCreate  = "lockbox/create"
	pathRelease = "lockbox/release"
	pathPause   = "lockbox/pause"
	pathUnpause = "lockbox/unpause"
)

var (
	_ custody.Msg = (*CreateLockboxMsg)(nil)
	_ custody.Msg = (*ReleaseLockboxMsg)(nil)
	_ custody.Msg = (*PauseLockboxMsg)(nil)
	_ custody.Msg = (*UnpauseLockboxMsg)(nil)
)

// Path implements custody.Msg interface.
func (CreateLockboxMsg) Path() string {
	return pathCreate
}

// Validate implements custody.Msg interface.
func (m *CreateLockboxMsg) Validate() error {
	var errs error
	errs = errors.Append(errs, errors.Wrap(m.Recipient.Validate(), "recipient"))
	if m.Maturity <= 0 {
		errs = errors.Append(errs, errors.Wrap(errors.ErrInput, "maturity must be a positive block height"))
	}
	if len(m.Amount) == 0 {
		errs = errors.Append(errs, errors.Wrap(errors.ErrEmpty, "amount"))
	}
	for i, c := range m.Amount {
		if c == nil {
			errs = errors.Append(errs, errors.Wrapf(errors.ErrEmpty, "amount #%d", i))
			continue
		}
		if err := c.Validate(); err != nil {
			errs = errors.Append(errs, errors.Wrapf(err, "amount #%d", i))
			continue
		}
		if !c.IsPositive() {
			errs = errors.Append(errs, errors.Wrapf(errors.ErrAmount, "amount #%d must be positive", i))
		}
	}
	return errs
}

// Path implements custody.Msg interface.
func (ReleaseLockboxMsg) Path() string {
	return pathRelease
}

// Validate implements custody.Msg interface.
func (m *ReleaseLockboxMsg) Validate() error {
	var errs error
	errs = errors.Append(errs, errors.Wrap(m.Recipient.Validate(), "recipient"))
	if !coin.IsCC(m.Ticker) {
		errs = errors.Append(errs, errors.Wrap(errors.ErrCurrency, "ticker"))
	}
	return errs
}

// Path implements custody.Msg interface.
func (PauseLockboxMsg) Path() string {
	return pathPause
}

// Validate implements custody.Msg interface.
func (m *PauseLockboxMsg) Validate() error {
	return errors.Wrap(m.Recipient.Validate(), "recipient")
}

// Path implements custody.Msg interface.
func (UnpauseLockboxMsg) Path() string {
	return pathUnpause
}

// Validate implements custody.Msg interface.
func (m *UnpauseLockboxMsg) Validate() error {
	return errors.Wrap(m.Recipient.Validate(), "recipient")
}
