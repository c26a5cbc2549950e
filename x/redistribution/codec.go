package redistribution

import (
	proto "github.com/gogo/protobuf/proto"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/coin"
)

// OwnerSet identifies the penalized party: an owner address together with
// an index, because one owner can operate many independent sets.
type OwnerSet struct {
	Owner custody.Address `protobuf:"bytes,1,opt,name=owner,proto3,casttype=github.com/iov-one/custody.Address" json:"owner,omitempty"`
	Index uint32          `protobuf:"varint,2,opt,name=index,proto3" json:"index,omitempty"`
}

func (m *OwnerSet) Reset()         { *m = OwnerSet{} }
func (m *OwnerSet) String() string { return proto.CompactTextString((*ownerSetData)(m)) }
func (*OwnerSet) ProtoMessage()    {}

type ownerSetData OwnerSet

func (m *ownerSetData) Reset()         { *m = ownerSetData{} }
func (m *ownerSetData) String() string { return proto.CompactTextString(m) }
func (*ownerSetData) ProtoMessage()    {}

func (m *OwnerSet) Marshal() ([]byte, error) {
	return proto.Marshal((*ownerSetData)(m))
}

func (m *OwnerSet) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*ownerSetData)(m))
}

// Entry is a single asset position held in escrow. CreatedAt is the block
// height at which the position was (last) funded and is the base for the
// maturity computation.
type Entry struct {
	Amount    *coin.Coin `protobuf:"bytes,1,opt,name=amount,proto3" json:"amount,omitempty"`
	CreatedAt int64      `protobuf:"varint,2,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
}

func (m *Entry) Reset()         { *m = Entry{} }
func (m *Entry) String() string { return proto.CompactTextString((*entryData)(m)) }
func (*Entry) ProtoMessage()    {}

type entryData Entry

func (m *entryData) Reset()         { *m = entryData{} }
func (m *entryData) String() string { return proto.CompactTextString(m) }
func (*entryData) ProtoMessage()    {}

func (m *Entry) Marshal() ([]byte, error) {
	return proto.Marshal((*entryData)(m))
}

func (m *Entry) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*entryData)(m))
}

// Escrow is the pending ledger row of one (owner set, penalty event)
// pair. It exists if and only if at least one entry is pending. Entries
// hold at most one position per ticker.
type Escrow struct {
	OwnerSet *OwnerSet `protobuf:"bytes,1,opt,name=owner_set,json=ownerSet,proto3" json:"owner_set,omitempty"`
	EventID  uint64    `protobuf:"varint,2,opt,name=event_id,json=eventId,proto3" json:"event_id,omitempty"`
	Entries  []*Entry  `protobuf:"bytes,3,rep,name=entries,proto3" json:"entries,omitempty"`
	Paused   bool      `protobuf:"varint,4,opt,name=paused,proto3" json:"paused,omitempty"`
}

func (m *Escrow) Reset()         { *m = Escrow{} }
func (m *Escrow) String() string { return proto.CompactTextString((*escrowData)(m)) }
func (*Escrow) ProtoMessage()    {}

type escrowData Escrow

func (m *escrowData) Reset()         { *m = escrowData{} }
func (m *escrowData) String() string { return proto.CompactTextString(m) }
func (*escrowData) ProtoMessage()    {}

func (m *Escrow) Marshal() ([]byte, error) {
	return proto.Marshal((*escrowData)(m))
}

func (m *Escrow) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*escrowData)(m))
}

// AssetDelay is a per-ticker maturity delay override.
type AssetDelay struct {
	Ticker string `protobuf:"bytes,1,opt,name=ticker,proto3" json:"ticker,omitempty"`
	Blocks int64  `protobuf:"varint,2,opt,name=blocks,proto3" json:"blocks,omitempty"`
}

func (m *AssetDelay) Reset()         { *m = AssetDelay{} }
func (m *AssetDelay) String() string { return proto.CompactTextString((*assetDelayData)(m)) }
func (*AssetDelay) ProtoMessage()    {}

type assetDelayData AssetDelay

func (m *assetDelayData) Reset()         { *m = assetDelayData{} }
func (m *assetDelayData) String() string { return proto.CompactTextString(m) }
func (*assetDelayData) ProtoMessage()    {}

func (m *AssetDelay) Marshal() ([]byte, error) {
	return proto.Marshal((*assetDelayData)(m))
}

func (m *AssetDelay) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*assetDelayData)(m))
}

// Configuration is the gconf singleton of this package.
type Configuration struct {
	// Owner is authorized to patch this configuration.
	Owner custody.Address `protobuf:"bytes,1,opt,name=owner,proto3,casttype=github.com/iov-one/custody.Address" json:"owner,omitempty"`
	// TransferAuthority is the only address allowed to initiate escrows.
	TransferAuthority custody.Address `protobuf:"bytes,2,opt,name=transfer_authority,json=transferAuthority,proto3,casttype=github.com/iov-one/custody.Address" json:"transfer_authority,omitempty"`
	// Pauser may pause single escrows and set the category halt.
	Pauser custody.Address `protobuf:"bytes,3,opt,name=pauser,proto3,casttype=github.com/iov-one/custody.Address" json:"pauser,omitempty"`
	// Unpauser may unpause single escrows and clear the category halt.
	Unpauser custody.Address `protobuf:"bytes,4,opt,name=unpauser,proto3,casttype=github.com/iov-one/custody.Address" json:"unpauser,omitempty"`
	// DelayBlocks is the default number of blocks that must pass after
	// funding before an entry matures.
	DelayBlocks int64 `protobuf:"varint,5,opt,name=delay_blocks,json=delayBlocks,proto3" json:"delay_blocks,omitempty"`
	// AssetDelays overrides DelayBlocks per ticker.
	AssetDelays []*AssetDelay `protobuf:"bytes,6,rep,name=asset_delays,json=assetDelays,proto3" json:"asset_delays,omitempty"`
	// ReleaseHalted, when set, fails every release in this category.
	ReleaseHalted bool `protobuf:"varint,7,opt,name=release_halted,json=releaseHalted,proto3" json:"release_halted,omitempty"`
}

func (m *Configuration) Reset()         { *m = Configuration{} }
func (m *Configuration) String() string { return proto.CompactTextString((*configurationData)(m)) }
func (*Configuration) ProtoMessage()    {}
func (m *Configuration) GetOwner() custody.Address {
	if m != nil {
		return m.Owner
	}
	return nil
}

type configurationData Configuration

func (m *configurationData) Reset()         { *m = configurationData{} }
func (m *configurationData) String() string { return proto.CompactTextString(m) }
func (*configurationData) ProtoMessage()    {}

func (m *Configuration) Marshal() ([]byte, error) {
	return proto.Marshal((*configurationData)(m))
}

func (m *Configuration) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*configurationData)(m))
}

// InitiateMsg places funds into escrow for a penalty event. Only the
// transfer authority may send it. Repeating it for the same (owner set,
// event) pair merges additional assets into the existing escrow.
type InitiateMsg struct {
	OwnerSet *OwnerSet    `protobuf:"bytes,1,opt,name=owner_set,json=ownerSet,proto3" json:"owner_set,omitempty"`
	EventID  uint64       `protobuf:"varint,2,opt,name=event_id,json=eventId,proto3" json:"event_id,omitempty"`
	Amounts  []*coin.Coin `protobuf:"bytes,3,rep,name=amounts,proto3" json:"amounts,omitempty"`
}

func (m *InitiateMsg) Reset()         { *m = InitiateMsg{} }
func (m *InitiateMsg) String() string { return proto.CompactTextString((*initiateMsgData)(m)) }
func (*InitiateMsg) ProtoMessage()    {}

type initiateMsgData InitiateMsg

func (m *initiateMsgData) Reset()         { *m = initiateMsgData{} }
func (m *initiateMsgData) String() string { return proto.CompactTextString(m) }
func (*initiateMsgData) ProtoMessage()    {}

func (m *InitiateMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*initiateMsgData)(m))
}

func (m *InitiateMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*initiateMsgData)(m))
}

// ReleaseMsg pays out all matured entries of one escrow to the current
// redistribution recipient. Releasing while no entry matured yet is a
// no-op. Once the last entry is paid out the escrow row is deleted, so
// a repeat release fails with a not found error rather than succeeding
// silently.
type ReleaseMsg struct {
	OwnerSet *OwnerSet `protobuf:"bytes,1,opt,name=owner_set,json=ownerSet,proto3" json:"owner_set,omitempty"`
	EventID  uint64    `protobuf:"varint,2,opt,name=event_id,json=eventId,proto3" json:"event_id,omitempty"`
}

func (m *ReleaseMsg) Reset()         { *m = ReleaseMsg{} }
func (m *ReleaseMsg) String() string { return proto.CompactTextString((*releaseMsgData)(m)) }
func (*ReleaseMsg) ProtoMessage()    {}

type releaseMsgData ReleaseMsg

func (m *releaseMsgData) Reset()         { *m = releaseMsgData{} }
func (m *releaseMsgData) String() string { return proto.CompactTextString(m) }
func (*releaseMsgData) ProtoMessage()    {}

func (m *ReleaseMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*releaseMsgData)(m))
}

func (m *ReleaseMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*releaseMsgData)(m))
}

// PauseEscrowMsg excludes a single escrow from release.
type PauseEscrowMsg struct {
	OwnerSet *OwnerSet `protobuf:"bytes,1,opt,name=owner_set,json=ownerSet,proto3" json:"owner_set,omitempty"`
	EventID  uint64    `protobuf:"varint,2,opt,name=event_id,json=eventId,proto3" json:"event_id,omitempty"`
}

func (m *PauseEscrowMsg) Reset()         { *m = PauseEscrowMsg{} }
func (m *PauseEscrowMsg) String() string { return proto.CompactTextString((*pauseEscrowMsgData)(m)) }
func (*PauseEscrowMsg) ProtoMessage()    {}

type pauseEscrowMsgData PauseEscrowMsg

func (m *pauseEscrowMsgData) Reset()         { *m = pauseEscrowMsgData{} }
func (m *pauseEscrowMsgData) String() string { return proto.CompactTextString(m) }
func (*pauseEscrowMsgData) ProtoMessage()    {}

func (m *PauseEscrowMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*pauseEscrowMsgData)(m))
}

func (m *PauseEscrowMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*pauseEscrowMsgData)(m))
}

// UnpauseEscrowMsg makes a paused escrow releasable again.
type UnpauseEscrowMsg struct {
	OwnerSet *OwnerSet `protobuf:"bytes,1,opt,name=owner_set,json=ownerSet,proto3" json:"owner_set,omitempty"`
	EventID  uint64    `protobuf:"varint,2,opt,name=event_id,json=eventId,proto3" json:"event_id,omitempty"`
}

func (m *UnpauseEscrowMsg) Reset()  { *m = UnpauseEscrowMsg{} }
func (m *UnpauseEscrowMsg) String() string {
	return proto.CompactTextString((*unpauseEscrowMsgData)(m))
}
func (*UnpauseEscrowMsg) ProtoMessage() {}

type unpauseEscrowMsgData UnpauseEscrowMsg

func (m *unpauseEscrowMsgData) Reset()         { *m = unpauseEscrowMsgData{} }
func (m *unpauseEscrowMsgData) String() string { return proto.CompactTextString(m) }
func (*unpauseEscrowMsgData) ProtoMessage()    {}

func (m *UnpauseEscrowMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*unpauseEscrowMsgData)(m))
}

func (m *UnpauseEscrowMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*unpauseEscrowMsgData)(m))
}

// SetReleaseHaltMsg flips the category-wide release halt. Setting it to
// the value it already has is an error.
type SetReleaseHaltMsg struct {
	Halt bool `protobuf:"varint,1,opt,name=halt,proto3" json:"halt,omitempty"`
}

func (m *SetReleaseHaltMsg) Reset() { *m = SetReleaseHaltMsg{} }
func (m *SetReleaseHaltMsg) String() string {
	return proto.CompactTextString((*setReleaseHaltMsgData)(m))
}
func (*SetReleaseHaltMsg) ProtoMessage() {}

type setReleaseHaltMsgData SetReleaseHaltMsg

func (m *setReleaseHaltMsgData) Reset()         { *m = setReleaseHaltMsgData{} }
func (m *setReleaseHaltMsgData) String() string { return proto.CompactTextString(m) }
func (*setReleaseHaltMsgData) ProtoMessage()    {}

func (m *SetReleaseHaltMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*setReleaseHaltMsgData)(m))
}

func (m *SetReleaseHaltMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*setReleaseHaltMsgData)(m))
}

// UpdateConfigurationMsg is used by the configuration owner to adjust the
// package configuration. Zero valued fields of the patch are ignored.
type UpdateConfigurationMsg struct {
	Patch *Configuration `protobuf:"bytes,1,opt,name=patch,proto3" json:"patch,omitempty"`
}

func (m *UpdateConfigurationMsg) Reset() { *m = UpdateConfigurationMsg{} }
func (m *UpdateConfigurationMsg) String() string {
	return proto.CompactTextString((*updateConfigurationMsgData)(m))
}
func (*UpdateConfigurationMsg) ProtoMessage() {}

type updateConfigurationMsgData UpdateConfigurationMsg

func (m *updateConfigurationMsgData) Reset()         { *m = updateConfigurationMsgData{} }
func (m *updateConfigurationMsgData) String() string { return proto.CompactTextString(m) }
func (*updateConfigurationMsgData) ProtoMessage()    {}

func (m *UpdateConfigurationMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*updateConfigurationMsgData)(m))
}

func (m *UpdateConfigurationMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*updateConfigurationMsgData)(m))
}
