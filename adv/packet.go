package adv

import (
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrInvalidName reports a local name AD structure that is not valid UTF-8.
var ErrInvalidName = errors.New("adv: local name is not valid UTF-8")

// Packet is a received advertising data payload: a sequence of
// length-prefixed AD structures. The getters tolerate truncated or garbage
// payloads and simply report the field as absent; over-the-air data is not
// trusted.
type Packet []byte

// Field returns the data of the first AD structure with the given type, or
// nil if the payload has none. The returned slice aliases the packet.
func (p Packet) Field(typ byte) []byte {
	b := p
	for len(b) >= 2 {
		l := int(b[0])
		if l < 1 || 1+l > len(b) {
			return nil
		}
		if b[1] == typ {
			return b[2 : 1+l]
		}
		b = b[1+l:]
	}
	return nil
}

// Flags returns the Flags AD structure value and whether it is present.
func (p Packet) Flags() (byte, bool) {
	f := p.Field(adFlags)
	if len(f) < 1 {
		return 0, false
	}
	return f[0], true
}

// TxPower returns the advertised Tx Power Level in dBm and whether it is
// present.
func (p Packet) TxPower() (int8, bool) {
	f := p.Field(adTxPower)
	if len(f) < 1 {
		return 0, false
	}
	return int8(f[0]), true
}

// ManufacturerData returns the Manufacturer Specific Data AD structure,
// company identifier included, or nil if absent.
func (p Packet) ManufacturerData() []byte {
	return p.Field(adManufacturerData)
}

// LocalName returns the complete local name, falling back to the shortened
// one, or "" if neither is present.
func (p Packet) LocalName() (string, error) {
	f := p.Field(adCompleteName)
	if f == nil {
		f = p.Field(adShortName)
	}
	if f == nil {
		return "", nil
	}
	if !utf8.Valid(f) {
		return "", ErrInvalidName
	}
	return string(f), nil
}

// uuidRun walks the payload for a UUID list run: consecutive blocks of
// [AD type, UUID] under a single length prefix, terminated by a block with
// the complete-list AD type. Each returned slice is one UUID, big-endian,
// aliasing the packet.
func (p Packet) uuidRun(some, all byte, size int) [][]byte {
	b := p
	for len(b) >= 2 {
		l := int(b[0])
		if l < 1 || 1+l > len(b) {
			return nil
		}
		if b[1] == some || b[1] == all {
			run := b[1 : 1+l]
			var uuids [][]byte
			for len(run) >= 1+size {
				typ := run[0]
				uuids = append(uuids, run[1:1+size])
				run = run[1+size:]
				if typ == all {
					break
				}
			}
			return uuids
		}
		b = b[1+l:]
	}
	return nil
}

// UUIDs16 returns the advertised 16-bit service UUIDs.
func (p Packet) UUIDs16() []uint16 {
	var uuids []uint16
	for _, u := range p.uuidRun(adSomeUUID16, adAllUUID16, 2) {
		uuids = append(uuids, uint16(u[0])<<8|uint16(u[1]))
	}
	return uuids
}

// UUIDs32 returns the advertised 32-bit service UUIDs.
func (p Packet) UUIDs32() []uint32 {
	var uuids []uint32
	for _, u := range p.uuidRun(adSomeUUID32, adAllUUID32, 4) {
		uuids = append(uuids, uint32(u[0])<<24|uint32(u[1])<<16|uint32(u[2])<<8|uint32(u[3]))
	}
	return uuids
}

// UUIDs128 returns the advertised 128-bit service UUIDs.
func (p Packet) UUIDs128() []uuid.UUID {
	var uuids []uuid.UUID
	for _, u := range p.uuidRun(adSomeUUID128, adAllUUID128, 16) {
		var id uuid.UUID
		copy(id[:], u)
		uuids = append(uuids, id)
	}
	return uuids
}
