package redistribution

import (
	"github.com/iov-one/custody"
	"github.com/iov-one/custody/errors"
)

const (
	pathInitiate      = "redistro/initiate"
	pathRelease       = "redistro/release"
	pathPauseEscrow   = "redistro/pause"
	pathUnpauseEscrow = "redistro/unpause"
	pathSetHalt       = "redistro/set_halt"
	pathUpdateConf    = "redistro/update_configuration"
)

var (
	_ custody.Msg = (*InitiateMsg)(nil)
	_ custody.Msg = (*ReleaseMsg)(nil)
	_ custody.Msg = (*PauseEscrowMsg)(nil)
	_ custody.Msg = (*UnpauseEscrowMsg)(nil)
	_ custody.Msg = (*SetReleaseHaltMsg)(nil)
	_ custody.Msg = (*UpdateConfigurationMsg)(nil)
)

// Path implements custody.Msg interface.
func (InitiateMsg) Path() string {
	return pathInitiate
}

// Validate implements custody.Msg interface.
func (m *InitiateMsg) Validate() error {
	var errs error
	errs = errors.Append(errs, errors.Wrap(m.OwnerSet.Validate(), "owner set"))
	if len(m.Amounts) == 0 {
		errs = errors.Append(errs, errors.Wrap(errors.ErrEmpty, "amounts"))
	}
	seen := make(map[string]struct{}, len(m.Amounts))
	for i, c := range m.Amounts {
		if c == nil {
			errs = errors.Append(errs, errors.Wrapf(errors.ErrEmpty, "amount #%d", i))
			continue
		}
		if err := c.Validate(); err != nil {
			errs = errors.Append(errs, errors.Wrapf(err, "amount #%d", i))
			continue
		}
		if !c.IsNonNegative() {
			errs = errors.Append(errs, errors.Wrapf(errors.ErrAmount, "amount #%d must not be negative", i))
		}
		if _, ok := seen[c.Ticker]; ok {
			errs = errors.Append(errs, errors.Wrapf(errors.ErrDuplicate, "amount #%d ticker %q", i, c.Ticker))
		}
		seen[c.Ticker] = struct{}{}
	}
	return errs
}

// Path implements custody.Msg interface.
func (ReleaseMsg) Path() string {
	return pathRelease
}

// Validate implements custody.Msg interface.
func (m *ReleaseMsg) Validate() error {
	return errors.Wrap(m.OwnerSet.Validate(), "owner set")
}

// Path implements custody.Msg interface.
func (PauseEscrowMsg) Path() string {
	return pathPauseEscrow
}

// Validate implements custody.Msg interface.
func (m *PauseEscrowMsg) Validate() error {
	return errors.Wrap(m.OwnerSet.Validate(), "owner set")
}

// Path implements custody.Msg interface.
func (UnpauseEscrowMsg) Path() string {
	return pathUnpauseEscrow
}

// Validate implements custody.Msg interface.
func (m *UnpauseEscrowMsg) Validate() error {
	return errors.Wrap(m.OwnerSet.Validate(), "owner set")
}

// Path implements custody.Msg interface.
func (SetReleaseHaltMsg) Path() string {
	return pathSetHalt
}

// Validate implements custody.Msg interface.
func (m *SetReleaseHaltMsg) Validate() error {
	return nil
}

// Path implements custody.Msg interface.
func (UpdateConfigurationMsg) Path() string {
	return pathUpdateConf
}

// Validate implements custody.Msg interface.
func (m *UpdateConfigurationMsg) Validate() error {
	if m.Patch == nil {
		return errors.Wrap(errors.ErrEmpty, "patch")
	}
	return nil
}
