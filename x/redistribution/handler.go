package redistribution

import (
	"github.com/iov-one/custody"
	"github.com/iov-one/custody/errors"
	"github.com/iov-one/custody/gconf"
	"github.com/iov-one/custody/x"
	"github.com/iov-one/custody/x/cash"
)

const (
	initiateCost int64 = 300
	releaseCost  int64 = 0
	pauseCost    int64 = 50
	setHaltCost  int64 = 50
)

// RegisterRoutes will instantiate and register all handlers in this
// package. The recipient source is the external allocation authority
// consulted at release time. Releases use the configured delay policy.
func RegisterRoutes(r custody.Registry, auth x.Authenticator, cashctrl cash.Controller, recipients RecipientSource) {
	ctrl := NewController()
	r.Handle(&InitiateMsg{}, InitiateHandler{
		auth: auth,
		ctrl: ctrl,
		bank: cashctrl,
	})
	r.Handle(&ReleaseMsg{}, ReleaseHandler{
		auth:       auth,
		ctrl:       ctrl,
		bank:       cashctrl,
		recipients: recipients,
		delays:     ConfiguredDelays,
	})
	r.Handle(&PauseEscrowMsg{}, PauseHandler{auth: auth, ctrl: ctrl})
	r.Handle(&UnpauseEscrowMsg{}, UnpauseHandler{auth: auth, ctrl: ctrl})
	r.Handle(&SetReleaseHaltMsg{}, SetReleaseHaltHandler{auth: auth})
	r.Handle(&UpdateConfigurationMsg{},
		gconf.NewUpdateConfigurationHandler(packageName, &Configuration{}, auth))
}

// InitiateHandler places seized funds into escrow for a penalty event.
type InitiateHandler struct {
	auth x.Authenticator
	ctrl Controller
	bank cash.Controller
}

var _ custody.Handler = InitiateHandler{}

// Check implements custody.Handler interface.
func (h InitiateHandler) Check(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &custody.CheckResult{GasAllocated: initiateCost}, nil
}

// Deliver implements custody.Handler interface.
func (h InitiateHandler) Deliver(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.DeliverResult, error) {
	msg, conf, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	height, ok := custody.GetHeight(ctx)
	if !ok {
		return nil, errors.Wrap(errors.ErrHuman, "block height not in context")
	}

	key, err := h.ctrl.deposit(db, msg.OwnerSet, msg.EventID, msg.Amounts, height)
	if err != nil {
		return nil, errors.Wrap(err, "deposit")
	}

	dst := EscrowAddress(key)
	res := custody.DeliverResult{Data: key}
	for _, amount := range msg.Amounts {
		if amount.IsZero() {
			continue
		}
		if err := h.bank.MoveCoins(db, conf.TransferAuthority, dst, *amount); err != nil {
			return nil, errors.Wrapf(err, "move %s", amount.Ticker)
		}
		res.Tags = append(res.Tags, custody.Pair("initiated", amount.Ticker))
	}
	return &res, nil
}

func (h InitiateHandler) validate(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*InitiateMsg, *Configuration, error) {
	var msg InitiateMsg
	if err := custody.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, nil, err
	}
	if !h.auth.HasAddress(ctx, conf.TransferAuthority) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "transfer authority signature required")
	}
	return &msg, conf, nil
}

// ReleaseHandler pays out matured escrow entries to the recipient the
// allocation authority names at release time.
type ReleaseHandler struct {
	auth       x.Authenticator
	ctrl       Controller
	bank       cash.Controller
	recipients RecipientSource
	delays     DelayPolicy
}

var _ custody.Handler = ReleaseHandler{}

// Check implements custody.Handler interface.
func (h ReleaseHandler) Check(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &custody.CheckResult{GasAllocated: releaseCost}, nil
}

// Deliver implements custody.Handler interface.
func (h ReleaseHandler) Deliver(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.DeliverResult, error) {
	msg, esc, recipient, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	height, ok := custody.GetHeight(ctx)
	if !ok {
		return nil, errors.Wrap(errors.ErrHuman, "block height not in context")
	}

	key := escrowKey(msg.OwnerSet, msg.EventID)
	// Bookkeeping first. Funds leave the custody account only after the
	// pending ledger no longer knows about them.
	matured, err := h.ctrl.drain(db, key, esc, height, h.delays)
	if err != nil {
		return nil, errors.Wrap(err, "drain")
	}

	src := EscrowAddress(key)
	res := custody.DeliverResult{Data: key}
	for _, entry := range matured {
		if entry.Amount.IsZero() {
			continue
		}
		if err := h.bank.MoveCoins(db, src, recipient, *entry.Amount); err != nil {
			return nil, errors.Wrapf(err, "move %s", entry.Amount.Ticker)
		}
		res.Tags = append(res.Tags, custody.Pair("released", entry.Amount.Ticker+":"+recipient.String()))
	}
	return &res, nil
}

func (h ReleaseHandler) validate(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*ReleaseMsg, *Escrow, custody.Address, error) {
	var msg ReleaseMsg
	if err := custody.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, errors.Wrap(err, "load msg")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, nil, nil, err
	}
	if conf.ReleaseHalted {
		return nil, nil, nil, errors.Wrap(ErrHalted, "category halted")
	}

	var esc Escrow
	if err := h.ctrl.bucket.One(db, escrowKey(msg.OwnerSet, msg.EventID), &esc); err != nil {
		return nil, nil, nil, errors.Wrap(err, "load escrow")
	}
	if esc.Paused {
		return nil, nil, nil, errors.Wrapf(ErrEscrowPaused, "event %d", msg.EventID)
	}

	recipient, err := h.recipients.RedistributionRecipient(db, msg.OwnerSet)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "resolve recipient")
	}
	switch {
	case recipient.Equals(BurnAddress):
		// Burning is permissionless.
	case h.auth.HasAddress(ctx, recipient):
	case h.auth.HasAddress(ctx, ReleaserCondition(msg.OwnerSet).Address()):
	default:
		return nil, nil, nil, errors.Wrap(errors.ErrUnauthorized, "neither recipient nor releaser")
	}
	return &msg, &esc, recipient, nil
}

// PauseHandler excludes a single escrow from release.
type PauseHandler struct {
	auth x.Authenticator
	ctrl Controller
}

var _ custody.Handler = PauseHandler{}

// Check implements custody.Handler interface.
func (h PauseHandler) Check(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &custody.CheckResult{GasAllocated: pauseCost}, nil
}

// Deliver implements custody.Handler interface.
func (h PauseHandler) Deliver(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.DeliverResult, error) {
	msg, esc, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	key := escrowKey(msg.OwnerSet, msg.EventID)
	esc.Paused = true
	if err := h.ctrl.bucket.Put(db, key, esc); err != nil {
		return nil, errors.Wrap(err, "save escrow")
	}
	return &custody.DeliverResult{Data: key}, nil
}

func (h PauseHandler) validate(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*PauseEscrowMsg, *Escrow, error) {
	var msg PauseEscrowMsg
	if err := custody.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, nil, err
	}
	if !h.auth.HasAddress(ctx, conf.Pauser) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "pauser signature required")
	}
	var esc Escrow
	if err := h.ctrl.bucket.One(db, escrowKey(msg.OwnerSet, msg.EventID), &esc); err != nil {
		return nil, nil, errors.Wrap(err, "load escrow")
	}
	if esc.Paused {
		return nil, nil, errors.Wrapf(ErrEscrowPaused, "event %d", msg.EventID)
	}
	return &msg, &esc, nil
}

// UnpauseHandler makes a paused escrow releasable again.
type UnpauseHandler struct {
	auth x.Authenticator
	ctrl Controller
}

var _ custody.Handler = UnpauseHandler{}

// Check implements custody.Handler interface.
func (h UnpauseHandler) Check(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &custody.CheckResult{GasAllocated: pauseCost}, nil
}

// Deliver implements custody.Handler interface.
func (h UnpauseHandler) Deliver(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.DeliverResult, error) {
	msg, esc, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	key := escrowKey(msg.OwnerSet, msg.EventID)
	esc.Paused = false
	if err := h.ctrl.bucket.Put(db, key, esc); err != nil {
		return nil, errors.Wrap(err, "save escrow")
	}
	return &custody.DeliverResult{Data: key}, nil
}

func (h UnpauseHandler) validate(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*UnpauseEscrowMsg, *Escrow, error) {
	var msg UnpauseEscrowMsg
	if err := custody.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, nil, err
	}
	if !h.auth.HasAddress(ctx, conf.Unpauser) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "unpauser signature required")
	}
	var esc Escrow
	if err := h.ctrl.bucket.One(db, escrowKey(msg.OwnerSet, msg.EventID), &esc); err != nil {
		return nil, nil, errors.Wrap(err, "load escrow")
	}
	if !esc.Paused {
		return nil, nil, errors.Wrapf(ErrNotPaused, "event %d", msg.EventID)
	}
	return &msg, &esc, nil
}

// SetReleaseHaltHandler flips the category wide release halt. The pauser
// sets it, the unpauser clears it.
type SetReleaseHaltHandler struct {
	auth x.Authenticator
}

var _ custody.Handler = SetReleaseHaltHandler{}

// Check implements custody.Handler interface.
func (h SetReleaseHaltHandler) Check(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &custody.CheckResult{GasAllocated: setHaltCost}, nil
}

// Deliver implements custody.Handler interface.
func (h SetReleaseHaltHandler) Deliver(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.DeliverResult, error) {
	msg, conf, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	conf.ReleaseHalted = msg.Halt
	if err := gconf.Save(db, packageName, conf); err != nil {
		return nil, errors.Wrap(err, "save configuration")
	}
	return &custody.DeliverResult{}, nil
}

func (h SetReleaseHaltHandler) validate(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*SetReleaseHaltMsg, *Configuration, error) {
	var msg SetReleaseHaltMsg
	if err := custody.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, nil, err
	}
	if msg.Halt {
		if !h.auth.HasAddress(ctx, conf.Pauser) {
			return nil, nil, errors.Wrap(errors.ErrUnauthorized, "pauser signature required")
		}
		if conf.ReleaseHalted {
			return nil, nil, errors.Wrap(errors.ErrState, "already halted")
		}
	} else {
		if !h.auth.HasAddress(ctx, conf.Unpauser) {
			return nil, nil, errors.Wrap(errors.ErrUnauthorized, "unpauser signature required")
		}
		if !conf.ReleaseHalted {
			return nil, nil, errors.Wrap(ErrNotPaused, "halt not set")
		}
	}
	return &msg, conf, nil
}
