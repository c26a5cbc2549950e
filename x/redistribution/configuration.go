package redistribution

import (
	"github.com/iov-one/custody"
	"github.com/iov-one/custody/coin"
	"github.com/iov-one/custody/errors"
	"github.com/iov-one/custody/gconf"
)

const packageName = "redistro"

// Validate implements gconf.ValidMarshaler interface.
func (c *Configuration) Validate() error {
	var errs error
	errs = errors.Append(errs, errors.Wrap(c.Owner.Validate(), "owner"))
	errs = errors.Append(errs, errors.Wrap(c.TransferAuthority.Validate(), "transfer authority"))
	errs = errors.Append(errs, errors.Wrap(c.Pauser.Validate(), "pauser"))
	errs = errors.Append(errs, errors.Wrap(c.Unpauser.Validate(), "unpauser"))
	if c.DelayBlocks <= 0 {
		errs = errors.Append(errs, errors.Wrap(errors.ErrInput, "delay blocks must be greater than zero"))
	}
	seen := make(map[string]struct{}, len(c.AssetDelays))
	for i, d := range c.AssetDelays {
		if d == nil {
			errs = errors.Append(errs, errors.Wrapf(errors.ErrEmpty, "asset delay #%d", i))
			continue
		}
		if !coin.IsCC(d.Ticker) {
			errs = errors.Append(errs, errors.Wrapf(errors.ErrCurrency, "asset delay #%d ticker", i))
		}
		if d.Blocks <= 0 {
			errs = errors.Append(errs, errors.Wrapf(errors.ErrInput, "asset delay #%d blocks must be greater than zero", i))
		}
		if _, ok := seen[d.Ticker]; ok {
			errs = errors.Append(errs, errors.Wrapf(errors.ErrDuplicate, "asset delay #%d ticker", i))
		}
		seen[d.Ticker] = struct{}{}
	}
	return errs
}

func loadConf(db gconf.ReadStore) (*Configuration, error) {
	var conf Configuration
	if err := gconf.Load(db, packageName, &conf); err != nil {
		return nil, errors.Wrap(err, "load configuration")
	}
	return &conf, nil
}

// DelayPolicy decides how many blocks must pass between funding an entry
// and its maturity, per ticker.
type DelayPolicy func(db custody.ReadOnlyKVStore, ticker string) (int64, error)

// ConfiguredDelays is the default delay policy. It uses the per asset
// override from the configuration when one exists for the ticker and the
// configured default otherwise.
func ConfiguredDelays(db custody.ReadOnlyKVStore, ticker string) (int64, error) {
	conf, err := loadConf(db)
	if err != nil {
		return 0, err
	}
	for _, d := range conf.AssetDelays {
		if d.Ticker == ticker {
			return d.Blocks, nil
		}
	}
	return conf.DelayBlocks, nil
}
