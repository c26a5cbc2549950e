package coin

import (
	proto "github.com/gogo/protobuf/proto"
)

// Coin can hold any amount between -1 billion and +1 billion at steps of
// 10^-9. It is a fixed-point decimal representation composed of a whole
// part, a fractional part expressed in billionths and a currency ticker.
type Coin struct {
	// Whole coins, -10^15 < whole < 10^15
	Whole int64 `protobuf:"varint,1,opt,name=whole,proto3" json:"whole,omitempty"`
	// Billionth of coins. 0 <= abs(fractional) < 10^9
	// If fractional is non-zero, it must have the same sign as whole.
	Fractional int64 `protobuf:"varint,2,opt,name=fractional,proto3" json:"fractional,omitempty"`
	// Ticker is 3-4 upper-case letters and all Coins of the same
	// currency can be combined.
	Ticker string `protobuf:"bytes,3,opt,name=ticker,proto3" json:"ticker,omitempty"`
}

func (c *Coin) Reset()         { *c = Coin{} }
func (*Coin) ProtoMessage()    {}
func (c *Coin) GetWhole() int64 {
	if c != nil {
		return c.Whole
	}
	return 0
}
func (c *Coin) GetFractional() int64 {
	if c != nil {
		return c.Fractional
	}
	return 0
}
func (c *Coin) GetTicker() string {
	if c != nil {
		return c.Ticker
	}
	return ""
}

// coinData mirrors Coin without its methods, so that the generic
// protobuf codec can be used on it without recursing back into the
// custom Marshal/Unmarshal below.
type coinData Coin

func (c *coinData) Reset()         { *c = coinData{} }
func (c *coinData) String() string { return proto.CompactTextString(c) }
func (*coinData) ProtoMessage()    {}

// Marshal implements the Persistent interface.
func (c *Coin) Marshal() ([]byte, error) {
	return proto.Marshal((*coinData)(c))
}

// Unmarshal implements the Persistent interface.
func (c *Coin) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*coinData)(c))
}
