/*
Package lockbox implements self-contained escrow units.

A lockbox is addressed by its parameters alone: hashing the recipient
and the maturity height yields the condition the funds live under. The
unit stores nothing but its creation height and a pause flag, so every
call must present the parameters again and is authenticated by deriving
the same address.

Release is permissionless. Once the maturity height is reached anyone
can sweep the balance of an asset to the recipient; the live balance is
the single source of truth, so repeating a release simply moves nothing.
*/
package lockbox
