package cash

import (
	"github.com/iov-one/custody"
	"github.com/iov-one/custody/coin"
	"github.com/iov-one/custody/errors"
	"github.com/iov-one/custody/orm"
)

var _ orm.Model = (*Set)(nil)

// Validate requires that all coins are in alphabetical order and that
// each coin is valid in its own right. An empty wallet is valid.
func (s *Set) Validate() error {
	return coin.Coins(s.Coins).Validate()
}

// SetCoins copies the given coin set into the wallet.
func (s *Set) SetCoins(coins coin.Coins) {
	s.Coins = coins
}

// NewWalletBucket initializes a bucket that stores a wallet per address.
func NewWalletBucket() orm.ModelBucket {
	return orm.NewModelBucket("cash", &Set{})
}

// WalletCoins returns the funds held by given address. A missing wallet
// is not an error, the balance is empty then.
func WalletCoins(bucket orm.ModelBucket, db custody.ReadOnlyKVStore, addr custody.Address) (coin.Coins, error) {
	var wallet Set
	switch err := bucket.One(db, addr, &wallet); {
	case err == nil:
		return wallet.Coins, nil
	case errors.ErrNotFound.Is(err):
		return nil, nil
	default:
		return nil, errors.Wrap(err, "cannot load wallet")
	}
}
