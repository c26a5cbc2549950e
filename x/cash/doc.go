/*
Package cash defines a simple wallet implementation and a controller
that other extensions can use to move funds between addresses.

Every address owns at most one wallet, holding a normalized set of
coins. Wallets are created on first deposit.
*/
package cash
