package lockbox

import (
	proto "github.com/gogo/protobuf/proto"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/coin"
)

// Lockbox is the persisted state of one escrow unit. Recipient and
// maturity are not stored; they are part of the address.
type Lockbox struct {
	CreatedAt int64 `protobuf:"varint,1,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	Paused    bool  `protobuf:"varint,2,opt,name=paused,proto3" json:"paused,omitempty"`
}

func (m *Lockbox) Reset()         { *m = Lockbox{} }
func (m *Lockbox) String() string { return proto.CompactTextString((*lockboxData)(m)) }
func (*Lockbox) ProtoMessage()    {}

type lockboxData Lockbox

func (m *lockboxData) Reset()         { *m = lockboxData{} }
func (m *lockboxData) String() string { return proto.CompactTextString(m) }
func (*lockboxData) ProtoMessage()    {}

func (m *Lockbox) Marshal() ([]byte, error) {
	return proto.Marshal((*lockboxData)(m))
}

func (m *Lockbox) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*lockboxData)(m))
}

// CreateLockboxMsg deploys a new lockbox and funds it.
type CreateLockboxMsg struct {
	Recipient custody.Address `protobuf:"bytes,1,opt,name=recipient,proto3,casttype=github.com/iov-one/custody.Address" json:"recipient,omitempty"`
	Maturity  int64           `protobuf:"varint,2,opt,name=maturity,proto3" json:"maturity,omitempty"`
	Amount    []*coin.Coin    `protobuf:"bytes,3,rep,name=amount,proto3" json:"amount,omitempty"`
}

func (m *CreateLockboxMsg) Reset()  { *m = CreateLockboxMsg{} }
func (m *CreateLockboxMsg) String() string {
	return proto.CompactTextString((*createLockboxMsgData)(m))
}
func (*CreateLockboxMsg) ProtoMessage() {}

type createLockboxMsgData CreateLockboxMsg

func (m *createLockboxMsgData) Reset()         { *m = createLockboxMsgData{} }
func (m *createLockboxMsgData) String() string { return proto.CompactTextString(m) }
func (*createLockboxMsgData) ProtoMessage()    {}

func (m *CreateLockboxMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*createLockboxMsgData)(m))
}

func (m *CreateLockboxMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*createLockboxMsgData)(m))
}

// ReleaseLockboxMsg sweeps the lockbox balance of one asset to the
// recipient. Anyone may send it once the maturity height was reached.
type ReleaseLockboxMsg struct {
	Recipient custody.Address `protobuf:"bytes,1,opt,name=recipient,proto3,casttype=github.com/iov-one/custody.Address" json:"recipient,omitempty"`
	Maturity  int64           `protobuf:"varint,2,opt,name=maturity,proto3" json:"maturity,omitempty"`
	Ticker    string          `protobuf:"bytes,3,opt,name=ticker,proto3" json:"ticker,omitempty"`
}

func (m *ReleaseLockboxMsg) Reset()  { *m = ReleaseLockboxMsg{} }
func (m *ReleaseLockboxMsg) String() string {
	return proto.CompactTextString((*releaseLockboxMsgData)(m))
}
func (*ReleaseLockboxMsg) ProtoMessage() {}

type releaseLockboxMsgData ReleaseLockboxMsg

func (m *releaseLockboxMsgData) Reset()         { *m = releaseLockboxMsgData{} }
func (m *releaseLockboxMsgData) String() string { return proto.CompactTextString(m) }
func (*releaseLockboxMsgData) ProtoMessage()    {}

func (m *ReleaseLockboxMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*releaseLockboxMsgData)(m))
}

func (m *ReleaseLockboxMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*releaseLockboxMsgData)(m))
}

// PauseLockboxMsg excludes a lockbox from release.
type PauseLockboxMsg struct {
	Recipient custody.Address `protobuf:"bytes,1,opt,name=recipient,proto3,casttype=github.com/iov-one/custody.Address" json:"recipient,omitempty"`
	Maturity  int64           `protobuf:"varint,2,opt,name=maturity,proto3" json:"maturity,omitempty"`
}

func (m *PauseLockboxMsg) Reset()  { *m = PauseLockboxMsg{} }
func (m *PauseLockboxMsg) String() string {
	return proto.CompactTextString((*pauseLockboxMsgData)(m))
}
func (*PauseLockboxMsg) ProtoMessage() {}

type pauseLockboxMsgData PauseLockboxMsg

func (m *pauseLockboxMsgData) Reset()         { *m = pauseLockboxMsgData{} }
func (m *pauseLockboxMsgData) String() string { return proto.CompactTextString(m) }
func (*pauseLockboxMsgData) ProtoMessage()    {}

func (m *PauseLockboxMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*pauseLockboxMsgData)(m))
}

func (m *PauseLockboxMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*pauseLockboxMsgData)(m))
}

// UnpauseLockboxMsg makes a paused lockbox releasable again.
type UnpauseLockboxMsg struct {
	Recipient custody.Address `protobuf:"bytes,1,opt,name=recipient,proto3,casttype=github.com/iov-one/custody.Address" json:"recipient,omitempty"`
	Maturity  int64           `protobuf:"varint,2,opt,name=maturity,proto3" json:"maturity,omitempty"`
}

func (m *UnpauseLockboxMsg) Reset()  { *m = UnpauseLockboxMsg{} }
func (m *UnpauseLockboxMsg) String() string {
	return proto.CompactTextString((*unpauseLockboxMsgData)(m))
}
func (*UnpauseLockboxMsg) ProtoMessage() {}

type unpauseLockboxMsgData UnpauseLockboxMsg

func (m *unpauseLockboxMsgData) Reset()         { *m = unpauseLockboxMsgData{} }
func (m *unpauseLockboxMsgData) String() string { return proto.CompactTextString(m) }
func (*unpauseLockboxMsgData) ProtoMessage()    {}

func (m *UnpauseLockboxMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*unpauseLockboxMsgData)(m))
}

func (m *UnpauseLockboxMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*unpauseLockboxMsgData)(m))
}
