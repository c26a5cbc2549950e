package x

import (
	"context"
	"testing"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/custodytest"
	"github.com/iov-one/custody/custodytest/assert"
)

func TestAuthHelpers(t *testing.T) {
	a := custodytest.NewCondition()
	b := custodytest.NewCondition()
	c := custodytest.NewCondition()

	auth := &custodytest.Auth{Signers: []custody.Condition{a, b}}
	ctx := context.Background()

	assert.Equal(t, a, MainSigner(ctx, auth))
	assert.Equal(t, 2, len(GetAddresses(ctx, auth)))

	if !HasAllAddresses(ctx, auth, []custody.Address{a.Address(), b.Address()}) {
		t.Fatal("both signers must authenticate")
	}
	if HasAllAddresses(ctx, auth, []custody.Address{a.Address(), c.Address()}) {
		t.Fatal("c did not sign")
	}

	if !HasAllConditions(ctx, auth, []custody.Condition{a, b}) {
		t.Fatal("both signers must authenticate")
	}
	if HasAllConditions(ctx, auth, []custody.Condition{a, c}) {
		t.Fatal("c did not sign")
	}

	// Threshold: 2 of 3 is met, 3 of 3 is not.
	requested := []custody.Condition{a, b, c}
	if !HasNConditions(ctx, auth, requested, 2) {
		t.Fatal("2 of 3 must be met")
	}
	if HasNConditions(ctx, auth, requested, 3) {
		t.Fatal("3 of 3 must not be met")
	}
	if !HasNConditions(ctx, auth, nil, 0) {
		t.Fatal("zero requirement is always met")
	}
}

func TestMainSignerEmpty(t *testing.T) {
	auth := &custodytest.Auth{}
	assert.Nil(t, MainSigner(context.Background(), auth))
}

func TestChainAuth(t *testing.T) {
	a := custodytest.NewCondition()
	b := custodytest.NewCondition()

	first := &custodytest.Auth{Signer: a}
	second := &custodytest.Auth{Signer: b}
	auth := ChainAuth(first, second)
	ctx := context.Background()

	if !auth.HasAddress(ctx, a.Address()) {
		t.Fatal("first authenticator must match")
	}
	if !auth.HasAddress(ctx, b.Address()) {
		t.Fatal("second authenticator must match")
	}
	if auth.HasAddress(ctx, custodytest.NewCondition().Address()) {
		t.Fatal("stranger must not match")
	}
	assert.Equal(t, 2, len(auth.GetConditions(ctx)))
}
