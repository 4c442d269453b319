// Package adv assembles and parses advertising data payloads (AD structures)
// carried by advertising and scan response PDUs.
package adv

import "github.com/google/uuid"

type localName struct {
	name     string
	complete bool
}

// AdvData is an advertising data payload under construction. The zero value
// is empty; Set methods return a copy with the field set, so a partially
// built value can be reused as a template:
//
//	base := adv.Empty().SetFlags(adv.Discoverable())
//	a := base.SetCompleteLocalName("node-a")
//	b := base.SetCompleteLocalName("node-b")
//
// AdvData never checks the 31-byte payload limit while fields are set; the
// check happens when the payload is serialized.
type AdvData struct {
	flags    *byte
	uuids16  []uint16
	uuids32  []uint32
	uuids128 []uuid.UUID
	name     *localName
}

// Empty returns an AdvData with no fields set.
func Empty() AdvData {
	return AdvData{}
}

// SetFlags returns a copy with the Flags AD structure set.
func (a AdvData) SetFlags(flags byte) AdvData {
	a.flags = &flags
	return a
}

// SetUUIDs16 returns a copy carrying the given list of 16-bit service UUIDs.
// The slice is copied; later mutation of uuids does not affect the result.
func (a AdvData) SetUUIDs16(uuids []uint16) AdvData {
	a.uuids16 = append([]uint16(nil), uuids...)
	return a
}

// SetUUIDs32 returns a copy carrying the given list of 32-bit service UUIDs.
func (a AdvData) SetUUIDs32(uuids []uint32) AdvData {
	a.uuids32 = append([]uint32(nil), uuids...)
	return a
}

// SetUUIDs128 returns a copy carrying the given list of 128-bit service
// UUIDs.
func (a AdvData) SetUUIDs128(uuids []uuid.UUID) AdvData {
	a.uuids128 = append([]uuid.UUID(nil), uuids...)
	return a
}

// SetShortenedLocalName returns a copy with the Shortened Local Name AD
// structure set.
func (a AdvData) SetShortenedLocalName(name string) AdvData {
	a.name = &localName{name: name}
	return a
}

// SetCompleteLocalName returns a copy with the Complete Local Name AD
// structure set.
func (a AdvData) SetCompleteLocalName(name string) AdvData {
	a.name = &localName{name: name, complete: true}
	return a
}

// Len returns the serialized size of the payload in bytes.
func (a AdvData) Len() int {
	n := 0
	if a.flags != nil {
		n += 3
	}
	if len(a.uuids16) > 0 {
		n += 1 + len(a.uuids16)*3
	}
	if len(a.uuids32) > 0 {
		n += 1 + len(a.uuids32)*5
	}
	if len(a.uuids128) > 0 {
		n += 1 + len(a.uuids128)*17
	}
	if a.name != nil {
		n += 2 + len(a.name.name)
	}
	return n
}

// Bytes serializes the payload into dst and returns its length. Fields go out
// in a fixed order: flags, 16-bit UUIDs, 32-bit UUIDs, 128-bit UUIDs, local
// name. It panics if dst is shorter than Len(); size against the 31-byte
// limit before handing the payload to a PDU.
func (a AdvData) Bytes(dst []byte) int {
	if len(dst) < a.Len() {
		panic("adv: destination buffer too small for advertising data")
	}
	n := 0
	if a.flags != nil {
		dst[n] = 2
		dst[n+1] = adFlags
		dst[n+2] = *a.flags
		n += 3
	}
	if len(a.uuids16) > 0 {
		dst[n] = byte(len(a.uuids16) * 3)
		n++
		for i, u := range a.uuids16 {
			dst[n] = uuidRunType(adSomeUUID16, adAllUUID16, i, len(a.uuids16))
			dst[n+1] = byte(u >> 8)
			dst[n+2] = byte(u)
			n += 3
		}
	}
	if len(a.uuids32) > 0 {
		dst[n] = byte(len(a.uuids32) * 5)
		n++
		for i, u := range a.uuids32 {
			dst[n] = uuidRunType(adSomeUUID32, adAllUUID32, i, len(a.uuids32))
			dst[n+1] = byte(u >> 24)
			dst[n+2] = byte(u >> 16)
			dst[n+3] = byte(u >> 8)
			dst[n+4] = byte(u)
			n += 5
		}
	}
	if len(a.uuids128) > 0 {
		dst[n] = byte(len(a.uuids128) * 17)
		n++
		for i, u := range a.uuids128 {
			dst[n] = uuidRunType(adSomeUUID128, adAllUUID128, i, len(a.uuids128))
			copy(dst[n+1:n+17], u[:])
			n += 17
		}
	}
	if a.name != nil {
		dst[n] = byte(1 + len(a.name.name))
		dst[n+1] = adShortName
		if a.name.complete {
			dst[n+1] = adCompleteName
		}
		copy(dst[n+2:], a.name.name)
		n += 2 + len(a.name.name)
	}
	return n
}

// uuidRunType returns the AD type byte for element i of an n-element UUID
// list: the incomplete code for every element except the last, which carries
// the complete code and terminates the run.
//
// TODO: verify against a packet capture that scanners accept per-element AD
// types inside a single length-prefixed run; a conservative encoder would
// emit one AD structure per list instead.
func uuidRunType(some, all byte, i, n int) byte {
	if i == n-1 {
		return all
	}
	return some
}
