package redistribution

import "github.com/iov-one/custody"

// RecipientSource is the allocation authority consulted at release time.
// It is deliberately narrow: this package only needs to know who gets
// paid. Enumerating the penalty history of an owner set goes through the
// owner index on the escrow bucket instead. The package never caches
// answers; the recipient is resolved anew for every release.
type RecipientSource interface {
	// RedistributionRecipient returns the address the next release for
	// this owner set must pay out to. Returning BurnAddress makes the
	// release permissionless.
	RedistributionRecipient(db custody.ReadOnlyKVStore, o *OwnerSet) (custody.Address, error)
}
