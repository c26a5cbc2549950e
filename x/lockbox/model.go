package lockbox

import (
	"crypto/sha256"
	"encoding/binary"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/errors"
	"github.com/iov-one/custody/orm"
)

var _ orm.Model = (*Lockbox)(nil)

// Validate implements orm.Model interface.
func (l *Lockbox) Validate() error {
	if l.CreatedAt < 0 {
		return errors.Wrap(errors.ErrState, "created at")
	}
	return nil
}

// LockboxCondition derives the condition of the escrow unit defined by
// the given parameters. The derivation is the whole identity of a
// lockbox: same parameters, same condition, same funds.
func LockboxCondition(recipient custody.Address, maturity int64) custody.Condition {
	h := sha256.New()
	h.Write(recipient)
	var raw [8]byte
	binary.BigEndian.PutUint64(raw[:], uint64(maturity))
	h.Write(raw[:])
	return custody.NewCondition("lockbox", "box", h.Sum(nil))
}

// LockboxAddress returns the address the lockbox state and funds live
// at.
func LockboxAddress(recipient custody.Address, maturity int64) custody.Address {
	return LockboxCondition(recipient, maturity).Address()
}

// NewLockboxBucket returns a bucket keyed by lockbox address.
func NewLockboxBucket() orm.ModelBucket {
	return orm.NewModelBucket("box", &Lockbox{})
}
