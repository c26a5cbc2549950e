package cash

import (
	proto "github.com/gogo/protobuf/proto"

	"github.com/iov-one/custody/coin"
)

// Set is the value stored under a wallet key. It contains all funds held
// by one address, as a normalized coin set.
type Set struct {
	Coins []*coin.Coin `protobuf:"bytes,1,rep,name=coins,proto3" json:"coins,omitempty"`
}

func (s *Set) Reset()         { *s = Set{} }
func (s *Set) String() string { return proto.CompactTextString((*setData)(s)) }
func (*Set) ProtoMessage()    {}
func (s *Set) GetCoins() []*coin.Coin {
	if s != nil {
		return s.Coins
	}
	return nil
}

type setData Set

func (s *setData) Reset()         { *s = setData{} }
func (s *setData) String() string { return proto.CompactTextString(s) }
func (*setData) ProtoMessage()    {}

// Marshal implements the Persistent interface.
func (s *Set) Marshal() ([]byte, error) {
	return proto.Marshal((*setData)(s))
}

// Unmarshal implements the Persistent interface.
func (s *Set) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*setData)(s))
}
