package ll

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testAddr = NewRandom(0xffe1e8d0dc27)

func TestAdvIndSerialize(t *testing.T) {
	pdu := AdvInd{AdvAddress: testAddr, AdvData: []byte{0x01, 0x02, 0x03}}

	var buf [39]byte
	n := pdu.Bytes(buf[:])

	expected := []byte{
		0x40, // ADV_IND, random address
		9,    // payload length
		0x27, 0xdc, 0xd0, 0xe8, 0xe1, 0xff, // address
		0x01, 0x02, 0x03, // data
	}
	assert.Equal(t, expected, buf[:n])
}

func TestAdvIndParse(t *testing.T) {
	b := []byte{0x40, 9, 0x27, 0xdc, 0xd0, 0xe8, 0xe1, 0xff, 0x01, 0x02, 0x03}

	pdu, err := ParseAdvInd(b)
	require.NoError(t, err)
	assert.Equal(t, testAddr, pdu.AdvAddress)
	assert.Equal(t, []byte{0x01, 0x02, 0x03}, pdu.AdvData)
}

func TestAdvDirectIndSerialize(t *testing.T) {
	pdu := AdvDirectInd{AdvAddress: testAddr, TargetAddress: testAddr}

	var buf [14]byte
	n := pdu.Bytes(buf[:])

	expected := []byte{
		0xC1, // ADV_DIRECT_IND, random advertiser, random target
		12,
		0x27, 0xdc, 0xd0, 0xe8, 0xe1, 0xff,
		0x27, 0xdc, 0xd0, 0xe8, 0xe1, 0xff,
	}
	assert.Equal(t, expected, buf[:n])
}

func TestAdvDirectIndRoundTrip(t *testing.T) {
	pdu := AdvDirectInd{
		AdvAddress:               NewRandom(0xffe1e8d0dc27),
		TargetAddress:            NewPublic(0x112233445566),
		SupportsChannelSelection: true,
	}

	var buf [14]byte
	n := pdu.Bytes(buf[:])

	parsed, err := ParseAdvDirectInd(buf[:n])
	require.NoError(t, err)
	assert.Equal(t, pdu, parsed)
}

func TestAdvNonconnIndSerialize(t *testing.T) {
	pdu := AdvNonconnInd{AdvAddress: testAddr, AdvData: []byte{0x01, 0x02, 0x03}}

	var buf [39]byte
	n := pdu.Bytes(buf[:])

	expected := []byte{
		0x42, // ADV_NONCONN_IND, random address
		9,
		0x27, 0xdc, 0xd0, 0xe8, 0xe1, 0xff,
		0x01, 0x02, 0x03,
	}
	assert.Equal(t, expected, buf[:n])
}

func TestAdvScanIndSerialize(t *testing.T) {
	pdu := AdvScanInd{AdvAddress: testAddr, AdvData: []byte{0x01, 0x02, 0x03}}

	var buf [39]byte
	n := pdu.Bytes(buf[:])

	expected := []byte{
		0x46, // ADV_SCAN_IND, random address
		9,
		0x27, 0xdc, 0xd0, 0xe8, 0xe1, 0xff,
		0x01, 0x02, 0x03,
	}
	assert.Equal(t, expected, buf[:n])
}

func TestScanReqSerialize(t *testing.T) {
	pdu := ScanReq{ScanAddress: testAddr, AdvAddress: testAddr}

	var buf [14]byte
	n := pdu.Bytes(buf[:])

	expected := []byte{
		0xC3, // SCAN_REQ, random scanner, random advertiser
		12,
		0x27, 0xdc, 0xd0, 0xe8, 0xe1, 0xff,
		0x27, 0xdc, 0xd0, 0xe8, 0xe1, 0xff,
	}
	assert.Equal(t, expected, buf[:n])
}

func TestScanReqMixedKindsRoundTrip(t *testing.T) {
	// The scanner and advertiser kinds ride separate header bits; a mixed
	// pair must survive a round trip.
	pdu := ScanReq{
		ScanAddress: NewPublic(0x112233445566),
		AdvAddress:  NewRandom(0xffe1e8d0dc27),
	}

	var buf [14]byte
	n := pdu.Bytes(buf[:])

	parsed, err := ParseScanReq(buf[:n])
	require.NoError(t, err)
	assert.Equal(t, pdu, parsed)
}

func TestScanRspSerialize(t *testing.T) {
	pdu := ScanRsp{AdvAddress: testAddr, AdvData: []byte{0x01, 0x02, 0x03}}

	var buf [39]byte
	n := pdu.Bytes(buf[:])

	expected := []byte{
		0x44, // SCAN_RSP, random address
		9,
		0x27, 0xdc, 0xd0, 0xe8, 0xe1, 0xff,
		0x01, 0x02, 0x03,
	}
	assert.Equal(t, expected, buf[:n])
}

func TestAddressAndDataRoundTrip(t *testing.T) {
	for _, size := range []int{0, 3, MaxAdvDataLength} {
		data := make([]byte, size)
		for i := range data {
			data[i] = byte(i)
		}
		pdu := AdvNonconnInd{AdvAddress: testAddr, AdvData: data}

		var buf [MaxPDULength]byte
		n := pdu.Bytes(buf[:])
		assert.Equal(t, 8+size, n)
		assert.Equal(t, byte(6+size), buf[1], "header length must equal payload size")

		parsed, err := ParseAdvNonconnInd(buf[:n])
		require.NoError(t, err)
		assert.Equal(t, testAddr, parsed.AdvAddress)
		if size == 0 {
			assert.Empty(t, parsed.AdvData)
		} else {
			assert.Equal(t, data, parsed.AdvData)
		}
	}
}

func TestOversizedAdvDataPanics(t *testing.T) {
	data := make([]byte, MaxAdvDataLength+1)
	pdu := AdvNonconnInd{AdvAddress: testAddr, AdvData: data}

	var buf [MaxPDULength]byte
	assert.Panics(t, func() { pdu.Bytes(buf[:]) })
}

func TestSmallDestinationPanics(t *testing.T) {
	pdu := AdvNonconnInd{AdvAddress: testAddr, AdvData: []byte{1, 2, 3}}

	var buf [10]byte
	assert.Panics(t, func() { pdu.Bytes(buf[:]) })
}

func TestParseErrors(t *testing.T) {
	// Truncated below the minimum PDU size.
	_, err := ParseAdvNonconnInd([]byte{0x42, 9, 0x27})
	assert.Equal(t, ErrInvalidLength, err)

	// Wrong type nibble.
	_, err = ParseAdvNonconnInd([]byte{0x40, 9, 0x27, 0xdc, 0xd0, 0xe8, 0xe1, 0xff, 1, 2, 3})
	assert.Equal(t, ErrInvalidType, err)

	// Header length larger than the buffer.
	_, err = ParseAdvNonconnInd([]byte{0x42, 20, 0x27, 0xdc, 0xd0, 0xe8, 0xe1, 0xff, 1, 2, 3})
	assert.Equal(t, ErrInvalidLength, err)

	// Header length above the advertising payload limit.
	big := make([]byte, 60)
	big[0], big[1] = 0x42, 38
	_, err = ParseAdvNonconnInd(big)
	assert.Equal(t, ErrInvalidLength, err)

	// Header length below the 6-byte address.
	_, err = ParseAdvNonconnInd([]byte{0x42, 5, 0x27, 0xdc, 0xd0, 0xe8, 0xe1, 0xff})
	assert.Equal(t, ErrInvalidLength, err)

	// Two-address shape with a wrong length byte.
	_, err = ParseScanReq([]byte{0xC3, 11, 0x27, 0xdc, 0xd0, 0xe8, 0xe1, 0xff, 0x27, 0xdc, 0xd0, 0xe8, 0xe1, 0xff})
	assert.Equal(t, ErrInvalidLength, err)
}

func TestParseIgnoresTrailingBytes(t *testing.T) {
	// Reception buffers are fixed-size; bytes past the declared length are
	// stale and must not leak into the parsed PDU.
	var buf [MaxPDULength]byte
	n := AdvNonconnInd{AdvAddress: testAddr, AdvData: []byte{1, 2, 3}}.Bytes(buf[:])
	for i := n; i < len(buf); i++ {
		buf[i] = 0xEE
	}

	pdu, err := ParseAdvNonconnInd(buf[:])
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, pdu.AdvData)
}

func TestParseDispatch(t *testing.T) {
	var buf [MaxPDULength]byte

	n := AdvInd{AdvAddress: testAddr, AdvData: []byte{1}}.Bytes(buf[:])
	pdu, err := Parse(buf[:n])
	require.NoError(t, err)
	assert.IsType(t, AdvInd{}, pdu)

	n = AdvDirectInd{AdvAddress: testAddr, TargetAddress: testAddr}.Bytes(buf[:])
	pdu, err = Parse(buf[:n])
	require.NoError(t, err)
	assert.IsType(t, AdvDirectInd{}, pdu)

	n = AdvNonconnInd{AdvAddress: testAddr}.Bytes(buf[:])
	pdu, err = Parse(buf[:n])
	require.NoError(t, err)
	assert.IsType(t, AdvNonconnInd{}, pdu)

	n = AdvScanInd{AdvAddress: testAddr}.Bytes(buf[:])
	pdu, err = Parse(buf[:n])
	require.NoError(t, err)
	assert.IsType(t, AdvScanInd{}, pdu)

	n = ScanReq{ScanAddress: testAddr, AdvAddress: testAddr}.Bytes(buf[:])
	pdu, err = Parse(buf[:n])
	require.NoError(t, err)
	assert.IsType(t, ScanReq{}, pdu)

	n = ScanRsp{AdvAddress: testAddr, AdvData: []byte{1}}.Bytes(buf[:])
	pdu, err = Parse(buf[:n])
	require.NoError(t, err)
	assert.IsType(t, ScanRsp{}, pdu)

	// Type nibble 0x5 is not a legacy advertising PDU.
	_, err = Parse([]byte{0x45, 6, 0x27, 0xdc, 0xd0, 0xe8, 0xe1, 0xff})
	assert.Equal(t, ErrInvalidType, err)

	_, err = Parse([]byte{0x42})
	assert.Error(t, err)
}
