/*
Package redistribution implements escrow accounting for slashed funds.

When an owner set is penalized, the transfer authority moves the seized
assets into a per (owner set, penalty event) escrow. The funds stay in
custody until a per-asset block delay has passed, then anyone authorized
may release the matured portion to the current redistribution recipient.

The package keeps a pending ledger row per escrow, exposes a read
surface over it, and supports pausing single escrows as well as halting
releases for the whole category.

A ledger row exists only while it holds entries. A release that drains
the last entry deletes the row, so releasing the same escrow again
returns a not found error. Releases that find no matured entry on an
existing row are plain no-ops.
*/
package redistribution
