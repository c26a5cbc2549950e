package redistribution

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/coin"
	"github.com/iov-one/custody/custodytest"
	"github.com/iov-one/custody/errors"
	"github.com/iov-one/custody/store"
)

// flatDelay ignores the configuration and applies the same delay to
// every ticker.
func flatDelay(blocks int64) DelayPolicy {
	return func(custody.ReadOnlyKVStore, string) (int64, error) {
		return blocks, nil
	}
}

func TestControllerDepositAndReadSurface(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController()

	alice := &OwnerSet{Owner: custodytest.NewCondition().Address(), Index: 1}
	bob := &OwnerSet{Owner: custodytest.NewCondition().Address(), Index: 1}

	// Nothing is pending before the first deposit.
	ids, err := ctrl.PendingEventIDs(db, alice)
	require.NoError(t, err)
	assert.Empty(t, ids)
	pending, err := ctrl.HasPending(db, alice)
	require.NoError(t, err)
	assert.False(t, pending)
	cnt, err := ctrl.PendingEntryCount(db, alice, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, cnt)
	amount, err := ctrl.PendingAmount(db, alice, 1, "IOV")
	require.NoError(t, err)
	assert.True(t, amount.IsZero())
	if _, err := ctrl.PendingEntries(db, alice, 1); !errors.ErrNotFound.Is(err) {
		t.Fatalf("want not found, got %+v", err)
	}
	if _, err := ctrl.IsPaused(db, alice, 1); !errors.ErrNotFound.Is(err) {
		t.Fatalf("want not found, got %+v", err)
	}

	_, err = ctrl.deposit(db, alice, 2, []*coin.Coin{coin.NewCoinp(10, 0, "IOV")}, 100)
	require.NoError(t, err)
	_, err = ctrl.deposit(db, alice, 5, []*coin.Coin{coin.NewCoinp(1, 0, "BTC")}, 110)
	require.NoError(t, err)
	_, err = ctrl.deposit(db, bob, 2, []*coin.Coin{coin.NewCoinp(3, 0, "IOV")}, 120)
	require.NoError(t, err)

	ids, err = ctrl.PendingEventIDs(db, alice)
	require.NoError(t, err)
	assert.Equal(t, []uint64{2, 5}, ids)

	pending, err = ctrl.HasPending(db, alice)
	require.NoError(t, err)
	assert.True(t, pending)

	entries, err := ctrl.PendingEntries(db, alice, 2)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].Amount.Equals(coin.NewCoin(10, 0, "IOV")))
	assert.Equal(t, int64(100), entries[0].CreatedAt)

	amount, err = ctrl.PendingAmount(db, alice, 2, "IOV")
	require.NoError(t, err)
	assert.True(t, amount.Equals(coin.NewCoin(10, 0, "IOV")))
	// No entry for this ticker means a zero amount.
	amount, err = ctrl.PendingAmount(db, alice, 2, "BTC")
	require.NoError(t, err)
	assert.True(t, amount.IsZero())

	paused, err := ctrl.IsPaused(db, alice, 2)
	require.NoError(t, err)
	assert.False(t, paused)

	all, err := ctrl.AllEscrows(db)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestControllerDepositMerges(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController()
	o := &OwnerSet{Owner: custodytest.NewCondition().Address(), Index: 1}

	_, err := ctrl.deposit(db, o, 1, []*coin.Coin{
		coin.NewCoinp(10, 0, "IOV"),
		coin.NewCoinp(1, 0, "BTC"),
	}, 100)
	require.NoError(t, err)

	// A second deposit of an already held ticker merges the amount and
	// refreshes the funding height. Other tickers are untouched.
	_, err = ctrl.deposit(db, o, 1, []*coin.Coin{coin.NewCoinp(5, 0, "IOV")}, 200)
	require.NoError(t, err)

	entries, err := ctrl.PendingEntries(db, o, 1)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	iov := findEntry(entries, "IOV")
	require.NotNil(t, iov)
	assert.True(t, iov.Amount.Equals(coin.NewCoin(15, 0, "IOV")))
	assert.Equal(t, int64(200), iov.CreatedAt)

	btc := findEntry(entries, "BTC")
	require.NotNil(t, btc)
	assert.True(t, btc.Amount.Equals(coin.NewCoin(1, 0, "BTC")))
	assert.Equal(t, int64(100), btc.CreatedAt)
}

func TestControllerDrain(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController()
	o := &OwnerSet{Owner: custodytest.NewCondition().Address(), Index: 1}

	key, err := ctrl.deposit(db, o, 1, []*coin.Coin{
		coin.NewCoinp(10, 0, "IOV"),
	}, 100)
	require.NoError(t, err)
	_, err = ctrl.deposit(db, o, 1, []*coin.Coin{coin.NewCoinp(1, 0, "BTC")}, 150)
	require.NoError(t, err)

	load := func() *Escrow {
		var esc Escrow
		require.NoError(t, ctrl.bucket.One(db, key, &esc))
		return &esc
	}

	// Maturity is strict: delay blocks must have fully passed.
	matured, err := ctrl.drain(db, key, load(), 110, flatDelay(10))
	require.NoError(t, err)
	assert.Empty(t, matured)
	cnt, err := ctrl.PendingEntryCount(db, o, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, cnt)

	// One block later the older entry matures, the younger one stays.
	matured, err = ctrl.drain(db, key, load(), 111, flatDelay(10))
	require.NoError(t, err)
	require.Len(t, matured, 1)
	assert.Equal(t, "IOV", matured[0].Amount.Ticker)
	cnt, err = ctrl.PendingEntryCount(db, o, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, cnt)

	// Draining the last entry deletes the row and with it the index
	// membership of the owner set.
	matured, err = ctrl.drain(db, key, load(), 161, flatDelay(10))
	require.NoError(t, err)
	require.Len(t, matured, 1)
	assert.Equal(t, "BTC", matured[0].Amount.Ticker)

	if err := ctrl.bucket.Has(db, key); !errors.ErrNotFound.Is(err) {
		t.Fatalf("want not found, got %+v", err)
	}
	pending, err := ctrl.HasPending(db, o)
	require.NoError(t, err)
	assert.False(t, pending)
}
