package adv

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyAdvData(t *testing.T) {
	var buf [MaxAdvertisingDataLength]byte
	n := Empty().Bytes(buf[:])

	assert.Equal(t, 0, n)
	assert.Equal(t, 0, Empty().Len())
}

func TestFullPayload(t *testing.T) {
	data := Empty().
		SetFlags(Discoverable()).
		SetUUIDs16([]uint16{0x0918}).
		SetCompleteLocalName("HelloGo")

	expected := []byte{
		0x02, 0x01, 0x06, // flags
		0x03, 0x03, 0x09, 0x18, // complete list of 16-bit UUIDs
		0x08, 0x09, // length, complete local name
		'H', 'e', 'l', 'l', 'o', 'G', 'o',
	}

	var buf [MaxAdvertisingDataLength]byte
	n := data.Bytes(buf[:])

	assert.Equal(t, expected, buf[:n])
	assert.Equal(t, len(expected), data.Len())
}

func TestUUID16RunTagging(t *testing.T) {
	// All blocks in a list carry the incomplete AD type except the last,
	// which carries the complete one and ends the run.
	data := Empty().SetUUIDs16([]uint16{0x1234, 0x5678, 0x9ABC})

	expected := []byte{
		9, // one length prefix for the whole run
		0x02, 0x12, 0x34,
		0x02, 0x56, 0x78,
		0x03, 0x9A, 0xBC,
	}

	var buf [MaxAdvertisingDataLength]byte
	n := data.Bytes(buf[:])
	assert.Equal(t, expected, buf[:n])
}

func TestUUID32Serialization(t *testing.T) {
	data := Empty().SetUUIDs32([]uint32{0x12345678})

	var buf [MaxAdvertisingDataLength]byte
	n := data.Bytes(buf[:])
	assert.Equal(t, []byte{5, 0x05, 0x12, 0x34, 0x56, 0x78}, buf[:n])
}

func TestUUID128Serialization(t *testing.T) {
	u := uuid.MustParse("12345678-9abc-def0-1234-56789abcdef0")
	data := Empty().SetUUIDs128([]uuid.UUID{u})

	var buf [MaxAdvertisingDataLength]byte
	n := data.Bytes(buf[:])

	require.Equal(t, 18, n)
	assert.Equal(t, byte(17), buf[0])
	assert.Equal(t, byte(0x07), buf[1])
	assert.Equal(t, u[:], buf[2:18])
}

func TestShortenedLocalName(t *testing.T) {
	data := Empty().SetShortenedLocalName("test")

	var buf [MaxAdvertisingDataLength]byte
	n := data.Bytes(buf[:])
	assert.Equal(t, []byte{5, 0x08, 't', 'e', 's', 't'}, buf[:n])
}

func TestSetCopiesInput(t *testing.T) {
	uuids := []uint16{0x1234}
	data := Empty().SetUUIDs16(uuids)
	uuids[0] = 0xFFFF

	var buf [MaxAdvertisingDataLength]byte
	n := data.Bytes(buf[:])
	assert.Equal(t, []byte{3, 0x03, 0x12, 0x34}, buf[:n])
}

func TestBuilderTemplateReuse(t *testing.T) {
	base := Empty().SetFlags(Broadcast())
	a := base.SetCompleteLocalName("node-a")
	b := base.SetCompleteLocalName("node-b")

	var bufA, bufB, bufBase [MaxAdvertisingDataLength]byte
	assert.NotEqual(t, bufA[:a.Bytes(bufA[:])], bufB[:b.Bytes(bufB[:])])
	assert.Equal(t, []byte{2, 0x01, 0x04}, bufBase[:base.Bytes(bufBase[:])])
}

func TestBytesPanicsOnShortBuffer(t *testing.T) {
	data := Empty().SetCompleteLocalName("HelloGo")
	var buf [4]byte
	assert.Panics(t, func() { data.Bytes(buf[:]) })
}

func TestFlagValues(t *testing.T) {
	assert.Equal(t, byte(0x06), Discoverable())
	assert.Equal(t, byte(0x05), LimitedDiscoverable())
	assert.Equal(t, byte(0x04), Broadcast())
}
