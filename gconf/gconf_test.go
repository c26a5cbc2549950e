package gconf

import (
	"context"
	"encoding/json"
	"testing"

	proto "github.com/gogo/protobuf/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/custodytest"
	"github.com/iov-one/custody/errors"
	"github.com/iov-one/custody/store"
)

// limitsConf is a minimal configuration used by the tests in this
// package only.
type limitsConf struct {
	Owner    custody.Address `protobuf:"bytes,1,opt,name=owner,proto3,casttype=github.com/iov-one/custody.Address" json:"owner,omitempty"`
	MaxItems int64           `protobuf:"varint,2,opt,name=max_items,json=maxItems,proto3" json:"max_items,omitempty"`
}

func (c *limitsConf) Reset()         { *c = limitsConf{} }
func (c *limitsConf) String() string { return proto.CompactTextString((*limitsConfData)(c)) }
func (*limitsConf) ProtoMessage()    {}

type limitsConfData limitsConf

func (c *limitsConfData) Reset()         { *c = limitsConfData{} }
func (c *limitsConfData) String() string { return proto.CompactTextString(c) }
func (*limitsConfData) ProtoMessage()    {}

func (c *limitsConf) Marshal() ([]byte, error) {
	return proto.Marshal((*limitsConfData)(c))
}

func (c *limitsConf) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*limitsConfData)(c))
}

func (c *limitsConf) Validate() error {
	if err := c.Owner.Validate(); err != nil {
		return errors.Wrap(err, "owner")
	}
	if c.MaxItems < 0 {
		return errors.Wrap(errors.ErrInput, "max items")
	}
	return nil
}

func (c *limitsConf) GetOwner() custody.Address {
	return c.Owner
}

func TestSaveAndLoad(t *testing.T) {
	db := store.MemStore()
	owner := custodytest.NewCondition().Address()

	src := limitsConf{Owner: owner, MaxItems: 42}
	require.NoError(t, Save(db, "limits", &src))

	var got limitsConf
	require.NoError(t, Load(db, "limits", &got))
	assert.Equal(t, src, got)
}

func TestSaveRejectsInvalid(t *testing.T) {
	db := store.MemStore()
	err := Save(db, "limits", &limitsConf{MaxItems: 1})
	assert.True(t, errors.ErrInput.Is(err), "unexpected error: %+v", err)
}

func TestLoadMissing(t *testing.T) {
	db := store.MemStore()
	var got limitsConf
	if err := Load(db, "limits", &got); !errors.ErrNotFound.Is(err) {
		t.Fatalf("want not found, got %+v", err)
	}
}

func TestInitConfig(t *testing.T) {
	db := store.MemStore()
	owner := custodytest.NewCondition().Address()

	genesis, err := json.Marshal(map[string]interface{}{
		"conf": map[string]interface{}{
			"limits": map[string]interface{}{
				"owner":     owner,
				"max_items": 7,
			},
		},
	})
	require.NoError(t, err)

	var opts custody.Options
	require.NoError(t, json.Unmarshal(genesis, &opts))

	var conf limitsConf
	require.NoError(t, InitConfig(db, opts, "limits", &conf))

	var got limitsConf
	require.NoError(t, Load(db, "limits", &got))
	assert.Equal(t, owner, got.Owner)
	assert.Equal(t, int64(7), got.MaxItems)
}

func TestInitConfigMissingSection(t *testing.T) {
	db := store.MemStore()
	var opts custody.Options
	require.NoError(t, json.Unmarshal([]byte(`{"conf": {}}`), &opts))

	var conf limitsConf
	if err := InitConfig(db, opts, "limits", &conf); !errors.ErrNotFound.Is(err) {
		t.Fatalf("want not found, got %+v", err)
	}
}

func TestUpdateConfigurationHandler(t *testing.T) {
	db := store.MemStore()
	owner := custodytest.NewCondition()
	auth := &custodytest.CtxAuth{Key: "auth"}

	require.NoError(t, Save(db, "limits", &limitsConf{
		Owner:    owner.Address(),
		MaxItems: 10,
	}))

	h := NewUpdateConfigurationHandler("limits", &limitsConf{}, auth)
	tx := &custodytest.Tx{Msg: &updateLimitsMsg{
		Patch: &limitsConf{MaxItems: 20},
	}}

	// Without the owner signature nothing may change.
	ctx := auth.SetConditions(context.Background(), custodytest.NewCondition())
	if _, err := h.Deliver(ctx, db, tx); !errors.ErrUnauthorized.Is(err) {
		t.Fatalf("want unauthorized, got %+v", err)
	}

	ctx = auth.SetConditions(context.Background(), owner)
	_, err := h.Deliver(ctx, db, tx)
	require.NoError(t, err)

	var got limitsConf
	require.NoError(t, Load(db, "limits", &got))
	// Zero value fields of the patch keep their configured value.
	assert.Equal(t, owner.Address(), got.Owner)
	assert.Equal(t, int64(20), got.MaxItems)
}

// updateLimitsMsg carries a limitsConf patch, as the update handler
// expects it.
type updateLimitsMsg struct {
	Patch *limitsConf `protobuf:"bytes,1,opt,name=patch,proto3" json:"patch,omitempty"`
}

func (m *updateLimitsMsg) Reset()         { *m = updateLimitsMsg{} }
func (m *updateLimitsMsg) String() string { return proto.CompactTextString((*updateLimitsMsgData)(m)) }
func (*updateLimitsMsg) ProtoMessage()    {}

type updateLimitsMsgData updateLimitsMsg

func (m *updateLimitsMsgData) Reset()         { *m = updateLimitsMsgData{} }
func (m *updateLimitsMsgData) String() string { return proto.CompactTextString(m) }
func (*updateLimitsMsgData) ProtoMessage()    {}

func (m *updateLimitsMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*updateLimitsMsgData)(m))
}

func (m *updateLimitsMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*updateLimitsMsgData)(m))
}

func (m *updateLimitsMsg) Validate() error {
	if m.Patch == nil {
		return errors.Wrap(errors.ErrEmpty, "patch")
	}
	return nil
}

func (m *updateLimitsMsg) Path() string {
	return "limits/update_configuration"
}
