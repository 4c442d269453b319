package ll

import "fmt"

// AddressKind tags a device address as public or random [Vol 6, Part B, 1.3].
type AddressKind uint8

// Device address kinds.
const (
	Public AddressKind = iota
	Random
)

func (k AddressKind) String() string {
	if k == Random {
		return "random"
	}
	return "public"
}

// Address is a 48-bit device address together with its kind. The comparison
// of two device addresses includes the kind: a public and a random address
// are never equal, even with identical bits.
//
// The bytes are stored little-endian, the order they go over the air,
// regardless of how the address was constructed.
type Address struct {
	b    [6]byte // little endian
	kind AddressKind
}

// NewPublic returns a public device address from a big-endian numeric value.
func NewPublic(addr uint64) Address {
	return newLittleEndian(u48ToLE(addr), Public)
}

// NewRandom returns a random device address from a big-endian numeric value.
func NewRandom(addr uint64) Address {
	return newLittleEndian(u48ToLE(addr), Random)
}

// NewBigEndian returns an address from a big-endian byte array.
func NewBigEndian(b [6]byte, kind AddressKind) Address {
	return newLittleEndian([6]byte{b[5], b[4], b[3], b[2], b[1], b[0]}, kind)
}

// newLittleEndian builds an address from bytes already in wire order.
func newLittleEndian(b [6]byte, kind AddressKind) Address {
	return Address{b: b, kind: kind}
}

func u48ToLE(addr uint64) [6]byte {
	return [6]byte{
		byte(addr),
		byte(addr >> 8),
		byte(addr >> 16),
		byte(addr >> 24),
		byte(addr >> 32),
		byte(addr >> 40),
	}
}

// WireBytes returns the address bytes in transmission (little-endian) order.
//
//	NewRandom(0xffe1e8d0dc27).WireBytes() == [6]byte{0x27, 0xdc, 0xd0, 0xe8, 0xe1, 0xff}
func (a Address) WireBytes() [6]byte {
	return a.b
}

// Kind reports whether the address is public or random.
func (a Address) Kind() AddressKind {
	return a.kind
}

func (a Address) String() string {
	return fmt.Sprintf("%02x:%02x:%02x:%02x:%02x:%02x (%s)",
		a.b[5], a.b[4], a.b[3], a.b[2], a.b[1], a.b[0], a.kind)
}
