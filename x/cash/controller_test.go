package cash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iov-one/custody/coin"
	"github.com/iov-one/custody/custodytest"
	"github.com/iov-one/custody/errors"
	"github.com/iov-one/custody/store"
)

func TestIssueCoins(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController(NewWalletBucket())

	addr := custodytest.NewCondition().Address()

	require.NoError(t, ctrl.IssueCoins(db, addr, coin.NewCoin(100, 0, "FRNK")))
	require.NoError(t, ctrl.IssueCoins(db, addr, coin.NewCoin(0, 500, "ALX")))

	balance, err := ctrl.Balance(db, addr)
	require.NoError(t, err)
	require.Equal(t, 2, balance.Count())
	assert.True(t, balance.Contains(coin.NewCoin(100, 0, "FRNK")))
	assert.True(t, balance.Contains(coin.NewCoin(0, 500, "ALX")))

	// the lord giveth and the lord taketh away
	require.NoError(t, ctrl.IssueCoins(db, addr, coin.NewCoin(0, -500, "ALX")))
	balance, err = ctrl.Balance(db, addr)
	require.NoError(t, err)
	assert.Equal(t, 1, balance.Count())
}

func TestMoveCoins(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController(NewWalletBucket())

	src := custodytest.NewCondition().Address()
	dest := custodytest.NewCondition().Address()

	require.NoError(t, ctrl.IssueCoins(db, src, coin.NewCoin(10, 0, "FRNK")))

	// moving from an empty wallet must fail
	err := ctrl.MoveCoins(db, dest, src, coin.NewCoin(1, 0, "FRNK"))
	assert.True(t, errors.ErrNotFound.Is(err))

	// moving more than held must fail
	err = ctrl.MoveCoins(db, src, dest, coin.NewCoin(20, 0, "FRNK"))
	assert.True(t, errors.ErrAmount.Is(err))

	// a non-positive amount must fail
	err = ctrl.MoveCoins(db, src, dest, coin.NewCoin(0, 0, "FRNK"))
	assert.True(t, errors.ErrAmount.Is(err))

	require.NoError(t, ctrl.MoveCoins(db, src, dest, coin.NewCoin(4, 0, "FRNK")))

	srcBalance, err := ctrl.Balance(db, src)
	require.NoError(t, err)
	assert.True(t, srcBalance.Contains(coin.NewCoin(6, 0, "FRNK")))

	destBalance, err := ctrl.Balance(db, dest)
	require.NoError(t, err)
	assert.True(t, destBalance.Contains(coin.NewCoin(4, 0, "FRNK")))

	// balance of an unknown address is empty, not an error
	nobody, err := ctrl.Balance(db, custodytest.NewCondition().Address())
	require.NoError(t, err)
	assert.True(t, nobody.IsEmpty())
}

func TestMoveAllCoins(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController(NewWalletBucket())

	src := custodytest.NewCondition().Address()
	dest := custodytest.NewCondition().Address()

	require.NoError(t, ctrl.IssueCoins(db, src, coin.NewCoin(3, 0, "FRNK")))
	require.NoError(t, ctrl.MoveCoins(db, src, dest, coin.NewCoin(3, 0, "FRNK")))

	// a fully drained wallet remains, with an empty balance
	balance, err := ctrl.Balance(db, src)
	require.NoError(t, err)
	assert.True(t, balance.IsEmpty())
}
