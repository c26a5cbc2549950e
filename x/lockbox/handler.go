package lockbox

import (
	"github.com/iov-one/custody"
	"github.com/iov-one/custody/errors"
	"github.com/iov-one/custody/orm"
	"github.com/iov-one/custody/x"
	"github.com/iov-one/custody/x/cash"
)

const (
	createCost  int64 = 300
	releaseCost int64 = 0
	pauseCost   int64 = 50
)

// RegisterRoutes will instantiate and register all handlers in this
// package. The authority is the only address allowed to deploy and
// pause lockboxes; it is fixed at registration time.
func RegisterRoutes(r custody.Registry, auth x.Authenticator, cashctrl cash.Controller, authority custody.Address) {
	bucket := NewLockboxBucket()
	r.Handle(&CreateLockboxMsg{}, CreateLockboxHandler{
		auth:      auth,
		authority: authority,
		bucket:    bucket,
		bank:      cashctrl,
	})
	r.Handle(&ReleaseLockboxMsg{}, ReleaseLockboxHandler{
		bucket: bucket,
		bank:   cashctrl,
	})
	r.Handle(&PauseLockboxMsg{}, PauseLockboxHandler{
		auth:      auth,
		authority: authority,
		bucket:    bucket,
	})
	r.Handle(&UnpauseLockboxMsg{}, UnpauseLockboxHandler{
		auth:      auth,
		authority: authority,
		bucket:    bucket,
	})
}

// CreateLockboxHandler deploys and funds a lockbox.
type CreateLockboxHandler struct {
	auth      x.Authenticator
	authority custody.Address
	bucket    orm.ModelBucket
	bank      cash.Controller
}

var _ custody.Handler = CreateLockboxHandler{}

// Check implements custody.Handler interface.
func (h CreateLockboxHandler) Check(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &custody.CheckResult{GasAllocated: createCost}, nil
}

// Deliver implements custody.Handler interface.
func (h CreateLockboxHandler) Deliver(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	height, ok := custody.GetHeight(ctx)
	if !ok {
		return nil, errors.Wrap(errors.ErrHuman, "block height not in context")
	}

	addr := LockboxAddress(msg.Recipient, msg.Maturity)
	if err := h.bucket.Put(db, addr, &Lockbox{CreatedAt: height}); err != nil {
		return nil, errors.Wrap(err, "save lockbox")
	}

	res := custody.DeliverResult{Data: addr}
	for _, amount := range msg.Amount {
		if err := h.bank.MoveCoins(db, h.authority, addr, *amount); err != nil {
			return nil, errors.Wrapf(err, "move %s", amount.Ticker)
		}
		res.Tags = append(res.Tags, custody.Pair("locked", amount.Ticker))
	}
	return &res, nil
}

func (h CreateLockboxHandler) validate(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*CreateLockboxMsg, error) {
	var msg CreateLockboxMsg
	if err := custody.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, h.authority) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "authority signature required")
	}
	addr := LockboxAddress(msg.Recipient, msg.Maturity)
	switch err := h.bucket.Has(db, addr); {
	case err == nil:
		return nil, errors.Wrapf(errors.ErrDuplicate, "lockbox %s", addr)
	case errors.ErrNotFound.Is(err):
		// Good, the unit is not deployed yet.
	default:
		return nil, err
	}
	return &msg, nil
}

// ReleaseLockboxHandler sweeps a matured lockbox. It is open to anyone;
// the funds can only ever reach the recipient baked into the address.
type ReleaseLockboxHandler struct {
	bucket orm.ModelBucket
	bank   cash.Controller
}

var _ custody.Handler = ReleaseLockboxHandler{}

// Check implements custody.Handler interface.
func (h ReleaseLockboxHandler) Check(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &custody.CheckResult{GasAllocated: releaseCost}, nil
}

// Deliver implements custody.Handler interface.
func (h ReleaseLockboxHandler) Deliver(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	addr := LockboxAddress(msg.Recipient, msg.Maturity)
	balance, err := h.bank.Balance(db, addr)
	if err != nil {
		return nil, errors.Wrap(err, "lockbox balance")
	}

	res := custody.DeliverResult{Data: addr}
	for _, c := range balance {
		if c.Ticker != msg.Ticker || c.IsZero() {
			continue
		}
		if err := h.bank.MoveCoins(db, addr, msg.Recipient, *c); err != nil {
			return nil, errors.Wrapf(err, "move %s", c.Ticker)
		}
		res.Tags = append(res.Tags, custody.Pair("released", c.Ticker))
	}
	// An empty balance is a successful no-op, the unit was swept before.
	return &res, nil
}

func (h ReleaseLockboxHandler) validate(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*ReleaseLockboxMsg, error) {
	var msg ReleaseLockboxMsg
	if err := custody.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	var box Lockbox
	addr := LockboxAddress(msg.Recipient, msg.Maturity)
	if err := h.bucket.One(db, addr, &box); err != nil {
		return nil, errors.Wrap(err, "load lockbox")
	}
	if box.Paused {
		return nil, errors.Wrapf(ErrLockboxPaused, "lockbox %s", addr)
	}
	height, ok := custody.GetHeight(ctx)
	if !ok {
		return nil, errors.Wrap(errors.ErrHuman, "block height not in context")
	}
	if height < msg.Maturity {
		return nil, errors.Wrapf(ErrImmature, "matures at %d", msg.Maturity)
	}
	return &msg, nil
}

// PauseLockboxHandler excludes a lockbox from release.
type PauseLockboxHandler struct {
	auth      x.Authenticator
	authority custody.Address
	bucket    orm.ModelBucket
}

var _ custody.Handler = PauseLockboxHandler{}

// Check implements custody.Handler interface.
func (h PauseLockboxHandler) Check(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &custody.CheckResult{GasAllocated: pauseCost}, nil
}

// Deliver implements custody.Handler interface.
func (h PauseLockboxHandler) Deliver(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.DeliverResult, error) {
	msg, box, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	addr := LockboxAddress(msg.Recipient, msg.Maturity)
	box.Paused = true
	if err := h.bucket.Put(db, addr, box); err != nil {
		return nil, errors.Wrap(err, "save lockbox")
	}
	return &custody.DeliverResult{Data: addr}, nil
}

func (h PauseLockboxHandler) validate(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*PauseLockboxMsg, *Lockbox, error) {
	var msg PauseLockboxMsg
	if err := custody.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, h.authority) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "authority signature required")
	}
	var box Lockbox
	addr := LockboxAddress(msg.Recipient, msg.Maturity)
	if err := h.bucket.One(db, addr, &box); err != nil {
		return nil, nil, errors.Wrap(err, "load lockbox")
	}
	if box.Paused {
		return nil, nil, errors.Wrapf(ErrLockboxPaused, "lockbox %s", addr)
	}
	return &msg, &box, nil
}

// UnpauseLockboxHandler makes a paused lockbox releasable again.
type UnpauseLockboxHandler struct {
	auth      x.Authenticator
	authority custody.Address
	bucket    orm.ModelBucket
}

var _ custody.Handler = UnpauseLockboxHandler{}

// Check implements custody.Handler interface.
func (h UnpauseLockboxHandler) Check(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &custody.CheckResult{GasAllocated: pauseCost}, nil
}

// Deliver implements custody.Handler interface.
func (h UnpauseLockboxHandler) Deliver(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.DeliverResult, error) {
	msg, box, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	addr := LockboxAddress(msg.Recipient, msg.Maturity)
	box.Paused = false
	if err := h.bucket.Put(db, addr, box); err != nil {
		return nil, errors.Wrap(err, "save lockbox")
	}
	return &custody.DeliverResult{Data: addr}, nil
}

func (h UnpauseLockboxHandler) validate(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*UnpauseLockboxMsg, *Lockbox, error) {
	var msg UnpauseLockboxMsg
	if err := custody.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, h.authority) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "authority signature required")
	}
	var box Lockbox
	addr := LockboxAddress(msg.Recipient, msg.Maturity)
	if err := h.bucket.One(db, addr, &box); err != nil {
		return nil, nil, errors.Wrap(err, "load lockbox")
	}
	if !box.Paused {
		return nil, nil, errors.Wrapf(ErrLockboxNotPaused, "lockbox %s", addr)
	}
	return &msg, &box, nil
}
