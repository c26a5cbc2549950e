package utils

import (
	"context"
	"testing"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/custodytest"
	"github.com/iov-one/custody/custodytest/assert"
	"github.com/iov-one/custody/errors"
)

type panicHandler struct{}

var _ custody.Handler = panicHandler{}

func (panicHandler) Check(custody.Context, custody.KVStore, custody.Tx) (*custody.CheckResult, error) {
	panic("check")
}

func (panicHandler) Deliver(custody.Context, custody.KVStore, custody.Tx) (*custody.DeliverResult, error) {
	panic("deliver")
}

func TestRecovery(t *testing.T) {
	r := NewRecovery()

	_, err := r.Check(context.Background(), nil, &custodytest.Tx{}, panicHandler{})
	assert.IsErr(t, errors.ErrPanic, err)

	_, err = r.Deliver(context.Background(), nil, &custodytest.Tx{}, panicHandler{})
	assert.IsErr(t, errors.ErrPanic, err)
}

func TestRecoveryPassesThrough(t *testing.T) {
	r := NewRecovery()
	h := &custodytest.Handler{}

	if _, err := r.Check(context.Background(), nil, &custodytest.Tx{}, h); err != nil {
		t.Fatalf("check failed: %+v", err)
	}
	if _, err := r.Deliver(context.Background(), nil, &custodytest.Tx{}, h); err != nil {
		t.Fatalf("deliver failed: %+v", err)
	}
	assert.Equal(t, 2, h.CallCount())
}
