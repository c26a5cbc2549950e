package redistribution

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iov-one/custody/custodytest"
	"github.com/iov-one/custody/errors"
	"github.com/iov-one/custody/gconf"
	"github.com/iov-one/custody/store"
)

func validConfiguration() Configuration {
	return Configuration{
		Owner:             custodytest.NewCondition().Address(),
		TransferAuthority: custodytest.NewCondition().Address(),
		Pauser:            custodytest.NewCondition().Address(),
		Unpauser:          custodytest.NewCondition().Address(),
		DelayBlocks:       10,
		AssetDelays: []*AssetDelay{
			{Ticker: "BTC", Blocks: 100},
		},
	}
}

func TestConfigurationValidate(t *testing.T) {
	cases := map[string]struct {
		mod     func(*Configuration)
		wantErr *errors.Error
	}{
		"valid": {
			mod: func(*Configuration) {},
		},
		"missing owner": {
			mod:     func(c *Configuration) { c.Owner = nil },
			wantErr: errors.ErrInput,
		},
		"missing transfer authority": {
			mod:     func(c *Configuration) { c.TransferAuthority = nil },
			wantErr: errors.ErrInput,
		},
		"zero delay": {
			mod:     func(c *Configuration) { c.DelayBlocks = 0 },
			wantErr: errors.ErrInput,
		},
		"bad override ticker": {
			mod: func(c *Configuration) {
				c.AssetDelays = []*AssetDelay{{Ticker: "x", Blocks: 5}}
			},
			wantErr: errors.ErrCurrency,
		},
		"zero override delay": {
			mod: func(c *Configuration) {
				c.AssetDelays = []*AssetDelay{{Ticker: "BTC", Blocks: 0}}
			},
			wantErr: errors.ErrInput,
		},
		"duplicate override ticker": {
			mod: func(c *Configuration) {
				c.AssetDelays = []*AssetDelay{
					{Ticker: "BTC", Blocks: 5},
					{Ticker: "BTC", Blocks: 6},
				}
			},
			wantErr: errors.ErrDuplicate,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			conf := validConfiguration()
			tc.mod(&conf)
			err := conf.Validate()
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.True(t, tc.wantErr.Is(err), "unexpected error: %+v", err)
			}
		})
	}
}

func TestConfiguredDelays(t *testing.T) {
	db := store.MemStore()
	conf := validConfiguration()
	require.NoError(t, gconf.Save(db, packageName, &conf))

	// A ticker with an override uses it.
	blocks, err := ConfiguredDelays(db, "BTC")
	require.NoError(t, err)
	assert.Equal(t, int64(100), blocks)

	// Everything else falls back to the default.
	blocks, err = ConfiguredDelays(db, "IOV")
	require.NoError(t, err)
	assert.Equal(t, int64(10), blocks)
}

func TestConfiguredDelaysWithoutConfiguration(t *testing.T) {
	db := store.MemStore()
	if _, err := ConfiguredDelays(db, "IOV"); !errors.ErrNotFound.Is(err) {
		t.Fatalf("want not found, got %+v", err)
	}
}
