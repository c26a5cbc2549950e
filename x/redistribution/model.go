package redistribution

import (
	"encoding/binary"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/errors"
	"github.com/iov-one/custody/orm"
)

// BurnAddress is a sink with no key behind it. Funds released to it are
// destroyed for all practical purposes.
var BurnAddress = custody.NewCondition("redistro", "burn", []byte("ashes")).Address()

// Validate ensures the owner set is complete.
func (o *OwnerSet) Validate() error {
	if o == nil {
		return errors.Wrap(errors.ErrEmpty, "owner set")
	}
	return errors.Wrap(o.Owner.Validate(), "owner")
}

// Key returns the canonical byte representation of the owner set: the
// owner address followed by the big endian index.
func (o *OwnerSet) Key() []byte {
	key := make([]byte, 0, custody.AddressLength+4)
	key = append(key, o.Owner...)
	return appendUint32(key, o.Index)
}

// Equals returns true if both owner sets name the same owner and index.
func (o *OwnerSet) Equals(other *OwnerSet) bool {
	if o == nil || other == nil {
		return o == other
	}
	return o.Owner.Equals(other.Owner) && o.Index == other.Index
}

// escrowKey builds the primary key of a pending ledger row: the owner
// set key followed by the big endian penalty event ID.
func escrowKey(owner *OwnerSet, eventID uint64) []byte {
	key := make([]byte, 0, custody.AddressLength+4+8)
	key = append(key, owner.Key()...)
	return appendUint64(key, eventID)
}

func appendUint32(b []byte, v uint32) []byte {
	var raw [4]byte
	binary.BigEndian.PutUint32(raw[:], v)
	return append(b, raw[:]...)
}

func appendUint64(b []byte, v uint64) []byte {
	var raw [8]byte
	binary.BigEndian.PutUint64(raw[:], v)
	return append(b, raw[:]...)
}

var _ orm.Model = (*Escrow)(nil)

// Validate ensures the escrow is well formed. A persisted escrow always
// holds at least one entry, and at most one entry per ticker.
func (e *Escrow) Validate() error {
	var errs error
	errs = errors.Append(errs, errors.Wrap(e.OwnerSet.Validate(), "owner set"))
	if len(e.Entries) == 0 {
		errs = errors.Append(errs, errors.Wrap(errors.ErrEmpty, "entries"))
	}
	seen := make(map[string]struct{}, len(e.Entries))
	for i, entry := range e.Entries {
		if err := entry.Validate(); err != nil {
			errs = errors.Append(errs, errors.Wrapf(err, "entry #%d", i))
			continue
		}
		ticker := entry.Amount.Ticker
		if _, ok := seen[ticker]; ok {
			errs = errors.Append(errs, errors.Wrapf(errors.ErrDuplicate, "entry #%d ticker %q", i, ticker))
		}
		seen[ticker] = struct{}{}
	}
	return errs
}

// Validate ensures the entry carries a positive amount and a sane
// funding height.
func (e *Entry) Validate() error {
	if e == nil {
		return errors.Wrap(errors.ErrEmpty, "entry")
	}
	if e.Amount == nil {
		return errors.Wrap(errors.ErrEmpty, "amount")
	}
	if err := e.Amount.Validate(); err != nil {
		return errors.Wrap(err, "amount")
	}
	if !e.Amount.IsNonNegative() {
		return errors.Wrap(errors.ErrAmount, "must not be negative")
	}
	if e.CreatedAt < 0 {
		return errors.Wrap(errors.ErrState, "created at")
	}
	return nil
}

// NewEscrowBucket returns a bucket for the pending ledger. The "owner"
// index groups rows by owner set, so a row shows up under its owner set
// exactly as long as it has pending entries.
func NewEscrowBucket() orm.ModelBucket {
	return orm.NewModelBucket("esc", &Escrow{},
		orm.WithIndex("owner", ownerSetIndexer, false),
	)
}

func ownerSetIndexer(key []byte, value orm.Model) ([]byte, error) {
	esc, ok := value.(*Escrow)
	if !ok {
		return nil, errors.Wrapf(errors.ErrType, "%T", value)
	}
	return esc.OwnerSet.Key(), nil
}

// EscrowCondition returns the condition guarding the funds of a single
// escrow. Coins in custody live at its address.
func EscrowCondition(key []byte) custody.Condition {
	return custody.NewCondition("redistro", "escrow", key)
}

// EscrowAddress returns the custody address of the escrow stored under
// the given primary key.
func EscrowAddress(key []byte) custody.Address {
	return EscrowCondition(key).Address()
}

// ReleaserCondition returns the condition that authorizes releases for
// every escrow of the given owner set, regardless of recipient.
func ReleaserCondition(owner *OwnerSet) custody.Condition {
	return custody.NewCondition("redistro", "releaser", owner.Key())
}
