package redistribution

import (
	"github.com/iov-one/custody"
	"github.com/iov-one/custody/coin"
	"github.com/iov-one/custody/errors"
	"github.com/iov-one/custody/orm"
)

// Controller provides the read surface over the pending ledger and the
// bookkeeping primitives the handlers build on. Coin movement is not its
// business; handlers combine it with a cash controller.
type Controller struct {
	bucket orm.ModelBucket
}

// NewController returns a controller operating on the escrow bucket.
func NewController() Controller {
	return Controller{bucket: NewEscrowBucket()}
}

// PendingEventIDs returns the penalty events of an owner set that still
// have funds pending, in ascending order. The list is empty if nothing
// is pending.
func (c Controller) PendingEventIDs(db custody.ReadOnlyKVStore, o *OwnerSet) ([]uint64, error) {
	var escrows []*Escrow
	if _, err := c.bucket.ByIndex(db, "owner", o.Key(), &escrows); err != nil {
		return nil, errors.Wrap(err, "by owner index")
	}
	ids := make([]uint64, 0, len(escrows))
	for _, esc := range escrows {
		ids = append(ids, esc.EventID)
	}
	return ids, nil
}

// HasPending returns true if the owner set has at least one escrow with
// pending entries.
func (c Controller) HasPending(db custody.ReadOnlyKVStore, o *OwnerSet) (bool, error) {
	return c.bucket.IndexHas(db, "owner", o.Key())
}

// PendingEntries returns the entries pending for one penalty event.
// Entry order carries no meaning. Returns ErrNotFound if nothing is
// pending for the pair.
func (c Controller) PendingEntries(db custody.ReadOnlyKVStore, o *OwnerSet, eventID uint64) ([]*Entry, error) {
	var esc Escrow
	if err := c.bucket.One(db, escrowKey(o, eventID), &esc); err != nil {
		return nil, err
	}
	return esc.Entries, nil
}

// PendingEntryCount returns the number of pending entries for one
// penalty event, zero if the escrow does not exist.
func (c Controller) PendingEntryCount(db custody.ReadOnlyKVStore, o *OwnerSet, eventID uint64) (int, error) {
	entries, err := c.PendingEntries(db, o, eventID)
	switch {
	case err == nil:
		return len(entries), nil
	case errors.ErrNotFound.Is(err):
		return 0, nil
	default:
		return 0, err
	}
}

// PendingAmount returns the pending amount of one asset for one penalty
// event. A missing escrow or a ticker without an entry count as a zero
// amount.
func (c Controller) PendingAmount(db custody.ReadOnlyKVStore, o *OwnerSet, eventID uint64, ticker string) (coin.Coin, error) {
	entries, err := c.PendingEntries(db, o, eventID)
	switch {
	case err == nil:
		for _, e := range entries {
			if e.Amount.Ticker == ticker {
				return *e.Amount, nil
			}
		}
		return coin.NewCoin(0, 0, ticker), nil
	case errors.ErrNotFound.Is(err):
		return coin.NewCoin(0, 0, ticker), nil
	default:
		return coin.Coin{}, err
	}
}

// IsPaused returns the pause flag of an escrow. Returns ErrNotFound if
// the escrow does not exist.
func (c Controller) IsPaused(db custody.ReadOnlyKVStore, o *OwnerSet, eventID uint64) (bool, error) {
	var esc Escrow
	if err := c.bucket.One(db, escrowKey(o, eventID), &esc); err != nil {
		return false, err
	}
	return esc.Paused, nil
}

// AllEscrows returns every pending escrow, across all owner sets and
// penalty events.
func (c Controller) AllEscrows(db custody.ReadOnlyKVStore) ([]*Escrow, error) {
	var keys [][]byte
	var scratch Escrow
	err := c.bucket.Iterate(db, &scratch, func(key []byte) error {
		keys = append(keys, append([]byte(nil), key...))
		return nil
	})
	if err != nil {
		return nil, err
	}
	escrows := make([]*Escrow, 0, len(keys))
	for _, key := range keys {
		var esc Escrow
		if err := c.bucket.One(db, key, &esc); err != nil {
			return nil, err
		}
		escrows = append(escrows, &esc)
	}
	return escrows, nil
}

// deposit merges the given amounts into the escrow of (owner set, event),
// creating the row when absent. Every touched ticker gets its CreatedAt
// refreshed to the given height. Returns the primary key of the row.
func (c Controller) deposit(db custody.KVStore, o *OwnerSet, eventID uint64, amounts []*coin.Coin, height int64) ([]byte, error) {
	key := escrowKey(o, eventID)

	var esc Escrow
	switch err := c.bucket.One(db, key, &esc); {
	case err == nil:
		// Merging into an existing escrow.
	case errors.ErrNotFound.Is(err):
		esc = Escrow{OwnerSet: o, EventID: eventID}
	default:
		return nil, errors.Wrap(err, "load escrow")
	}

	for _, amount := range amounts {
		entry := findEntry(esc.Entries, amount.Ticker)
		if entry == nil {
			esc.Entries = append(esc.Entries, &Entry{
				Amount:    amount.Clone(),
				CreatedAt: height,
			})
			continue
		}
		sum, err := entry.Amount.Add(*amount)
		if err != nil {
			return nil, errors.Wrapf(err, "merge %s", amount.Ticker)
		}
		entry.Amount = &sum
		entry.CreatedAt = height
	}

	if err := c.bucket.Put(db, key, &esc); err != nil {
		return nil, errors.Wrap(err, "save escrow")
	}
	return key, nil
}

// drain removes all matured entries from the escrow stored under key and
// returns them. Immature entries stay pending. When the last entry is
// removed the row is deleted, which also drops it from the owner index.
func (c Controller) drain(db custody.KVStore, key []byte, esc *Escrow, height int64, delay DelayPolicy) ([]*Entry, error) {
	var matured, kept []*Entry
	for _, entry := range esc.Entries {
		blocks, err := delay(db, entry.Amount.Ticker)
		if err != nil {
			return nil, errors.Wrapf(err, "delay for %s", entry.Amount.Ticker)
		}
		if height > entry.CreatedAt+blocks {
			matured = append(matured, entry)
		} else {
			kept = append(kept, entry)
		}
	}
	if len(matured) == 0 {
		return nil, nil
	}

	if len(kept) == 0 {
		if err := c.bucket.Delete(db, key); err != nil {
			return nil, errors.Wrap(err, "delete drained escrow")
		}
		return matured, nil
	}
	esc.Entries = kept
	if err := c.bucket.Put(db, key, esc); err != nil {
		return nil, errors.Wrap(err, "save escrow")
	}
	return matured, nil
}

func findEntry(entries []*Entry, ticker string) *Entry {
	for _, e := range entries {
		if e.Amount.Ticker == ticker {
			return e
		}
	}
	return nil
}
