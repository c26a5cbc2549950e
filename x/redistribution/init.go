package redistribution

import (
	"github.com/iov-one/custody"
	"github.com/iov-one/custody/gconf"
)

// Initializer fulfils the Initializer interface to load data from the
// genesis file.
type Initializer struct{}

var _ custody.Initializer = (*Initializer)(nil)

// FromGenesis initializes the package configuration from the genesis
// "conf" section. The configuration is required; this package cannot
// operate without a transfer authority.
func (*Initializer) FromGenesis(opts custody.Options, db custody.KVStore) error {
	return gconf.InitConfig(db, opts, packageName, &Configuration{})
}
