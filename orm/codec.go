package orm

import (
	proto "github.com/gogo/protobuf/proto"
)

// MultiRef is a list of primary keys, sorted and unique. It is the value
// stored under a non-unique index key.
type MultiRef struct {
	Refs [][]byte `protobuf:"bytes,1,rep,name=refs,proto3" json:"refs,omitempty"`
}

func (m *MultiRef) Reset()      { *m = MultiRef{} }
func (*MultiRef) ProtoMessage() {}
func (m *MultiRef) String() string {
	return proto.CompactTextString((*multiRefData)(m))
}
func (m *MultiRef) GetRefs() [][]byte {
	if m != nil {
		return m.Refs
	}
	return nil
}

type multiRefData MultiRef

func (m *multiRefData) Reset()         { *m = multiRefData{} }
func (m *multiRefData) String() string { return proto.CompactTextString(m) }
func (*multiRefData) ProtoMessage()    {}

// Marshal implements the Persistent interface.
func (m *MultiRef) Marshal() ([]byte, error) {
	return proto.Marshal((*multiRefData)(m))
}

// Unmarshal implements the Persistent interface.
func (m *MultiRef) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*multiRefData)(m))
}
