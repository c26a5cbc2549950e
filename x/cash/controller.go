package cash

import (
	"github.com/iov-one/custody"
	"github.com/iov-one/custody/coin"
	"github.com/iov-one/custody/errors"
	"github.com/iov-one/custody/orm"
)

// Controller is the functionality needed by handlers that move funds
// around. This is a subset of the wallet functionality.
type Controller interface {
	// MoveCoins removes the given amount from src and adds it to dest.
	// If src doesn't exist, or doesn't have sufficient coins, it fails.
	MoveCoins(db custody.KVStore, src, dest custody.Address, amount coin.Coin) error

	// IssueCoins attempts to add the given amount of coins to the
	// destination address, minting them out of nowhere. The amount may
	// also be negative, draining the wallet.
	IssueCoins(db custody.KVStore, dest custody.Address, amount coin.Coin) error

	// Balance returns the funds held by given address. A missing wallet
	// is not an error, the balance is empty then.
	Balance(db custody.ReadOnlyKVStore, addr custody.Address) (coin.Coins, error)
}

// BaseController implements Controller interface, using a wallet bucket
// as the storage engine.
type BaseController struct {
	bucket orm.ModelBucket
}

var _ Controller = BaseController{}

// NewController returns a base controller implementation.
func NewController(bucket orm.ModelBucket) BaseController {
	return BaseController{bucket: bucket}
}

// MoveCoins moves the given amount from src to dest.
func (c BaseController) MoveCoins(db custody.KVStore, src, dest custody.Address, amount coin.Coin) error {
	if !amount.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "non-positive amount %v", amount)
	}

	var sender Set
	if err := c.bucket.One(db, src, &sender); err != nil {
		return errors.Wrapf(err, "source %s", src)
	}
	if !coin.Coins(sender.Coins).Contains(amount) {
		return errors.Wrapf(errors.ErrAmount, "insufficient funds in %s", src)
	}

	senderCoins, err := coin.Coins(sender.Coins).Subtract(amount)
	if err != nil {
		return err
	}
	sender.SetCoins(senderCoins)
	if err := c.bucket.Put(db, src, &sender); err != nil {
		return err
	}

	return c.add(db, dest, amount)
}

// IssueCoins adds the given amount to the wallet of the destination
// address, creating the wallet when needed.
func (c BaseController) IssueCoins(db custody.KVStore, dest custody.Address, amount coin.Coin) error {
	return c.add(db, dest, amount)
}

// Balance returns the coins held by given address.
func (c BaseController) Balance(db custody.ReadOnlyKVStore, addr custody.Address) (coin.Coins, error) {
	return WalletCoins(c.bucket, db, addr)
}

func (c BaseController) add(db custody.KVStore, addr custody.Address, amount coin.Coin) error {
	var wallet Set
	switch err := c.bucket.One(db, addr, &wallet); {
	case err == nil, errors.ErrNotFound.Is(err):
		// A new wallet is created on first use.
	default:
		return errors.Wrapf(err, "wallet %s", addr)
	}

	coins, err := coin.Coins(wallet.Coins).Add(amount)
	if err != nil {
		return err
	}
	wallet.SetCoins(coins)
	return c.bucket.Put(db, addr, &wallet)
}
