package redistribution

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/coin"
	"github.com/iov-one/custody/custodytest"
	"github.com/iov-one/custody/errors"
)

func TestOwnerSetKey(t *testing.T) {
	owner := custodytest.NewCondition().Address()
	o := &OwnerSet{Owner: owner, Index: 0x01020304}

	key := o.Key()
	require.Len(t, key, custody.AddressLength+4)
	assert.Equal(t, []byte(owner), key[:custody.AddressLength])
	assert.Equal(t, uint32(0x01020304), binary.BigEndian.Uint32(key[custody.AddressLength:]))
}

func TestEscrowKey(t *testing.T) {
	owner := custodytest.NewCondition().Address()
	o := &OwnerSet{Owner: owner, Index: 7}

	key := escrowKey(o, 0x0102030405060708)
	require.Len(t, key, custody.AddressLength+4+8)
	assert.Equal(t, o.Key(), key[:custody.AddressLength+4])
	assert.Equal(t, uint64(0x0102030405060708), binary.BigEndian.Uint64(key[custody.AddressLength+4:]))

	// Same parameters, same key.
	assert.Equal(t, key, escrowKey(&OwnerSet{Owner: owner, Index: 7}, 0x0102030405060708))
	// Any parameter change gives another key.
	assert.NotEqual(t, key, escrowKey(&OwnerSet{Owner: owner, Index: 8}, 0x0102030405060708))
	assert.NotEqual(t, key, escrowKey(o, 0x0102030405060709))
}

func TestEscrowValidate(t *testing.T) {
	owner := custodytest.NewCondition().Address()

	cases := map[string]struct {
		escrow  Escrow
		wantErr *errors.Error
	}{
		"valid single entry": {
			escrow: Escrow{
				OwnerSet: &OwnerSet{Owner: owner, Index: 1},
				EventID:  4,
				Entries: []*Entry{
					{Amount: coin.NewCoinp(1, 0, "IOV"), CreatedAt: 100},
				},
			},
		},
		"valid zero amount entry": {
			escrow: Escrow{
				OwnerSet: &OwnerSet{Owner: owner},
				Entries: []*Entry{
					{Amount: coin.NewCoinp(0, 0, "IOV"), CreatedAt: 100},
				},
			},
		},
		"missing owner set": {
			escrow: Escrow{
				Entries: []*Entry{
					{Amount: coin.NewCoinp(1, 0, "IOV"), CreatedAt: 100},
				},
			},
			wantErr: errors.ErrEmpty,
		},
		"no entries": {
			escrow: Escrow{
				OwnerSet: &OwnerSet{Owner: owner},
			},
			wantErr: errors.ErrEmpty,
		},
		"negative amount": {
			escrow: Escrow{
				OwnerSet: &OwnerSet{Owner: owner},
				Entries: []*Entry{
					{Amount: coin.NewCoinp(-1, 0, "IOV"), CreatedAt: 100},
				},
			},
			wantErr: errors.ErrAmount,
		},
		"duplicate ticker": {
			escrow: Escrow{
				OwnerSet: &OwnerSet{Owner: owner},
				Entries: []*Entry{
					{Amount: coin.NewCoinp(1, 0, "IOV"), CreatedAt: 100},
					{Amount: coin.NewCoinp(2, 0, "IOV"), CreatedAt: 200},
				},
			},
			wantErr: errors.ErrDuplicate,
		},
		"negative funding height": {
			escrow: Escrow{
				OwnerSet: &OwnerSet{Owner: owner},
				Entries: []*Entry{
					{Amount: coin.NewCoinp(1, 0, "IOV"), CreatedAt: -1},
				},
			},
			wantErr: errors.ErrState,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.escrow.Validate()
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.True(t, tc.wantErr.Is(err), "unexpected error: %+v", err)
			}
		})
	}
}

func TestEscrowConditionIsDeterministic(t *testing.T) {
	owner := custodytest.NewCondition().Address()
	key := escrowKey(&OwnerSet{Owner: owner, Index: 2}, 9)

	assert.Equal(t, EscrowAddress(key), EscrowAddress(key))
	assert.NoError(t, EscrowAddress(key).Validate())

	other := escrowKey(&OwnerSet{Owner: owner, Index: 2}, 10)
	assert.NotEqual(t, EscrowAddress(key), EscrowAddress(other))
}

func TestBurnAddressIsValid(t *testing.T) {
	assert.NoError(t, BurnAddress.Validate())
}
