package custodytest

import (
	"github.com/tendermint/tendermint/crypto/ed25519"

	"github.com/iov-one/custody"
)

// NewCondition returns a signature condition backed by a freshly
// generated ed25519 key.
func NewCondition() custody.Condition {
	priv := ed25519.GenPrivKey()
	pub := priv.PubKey().(ed25519.PubKeyEd25519)
	return custody.NewCondition("sigs", "ed25519", pub[:])
}
