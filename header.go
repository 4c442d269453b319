package ll

// Advertising physical channel PDU type codes [Vol 6, Part B, 2.3].
const (
	TypeAdvInd        uint8 = 0x0
	TypeAdvDirectInd  uint8 = 0x1
	TypeAdvNonconnInd uint8 = 0x2
	TypeScanReq       uint8 = 0x3
	TypeScanRsp       uint8 = 0x4
	TypeAdvScanInd    uint8 = 0x6
)

// header is the 2-byte advertising physical channel PDU header: a 4-bit PDU
// type, the RFU, ChSel, TxAdd and RxAdd bits, and a length byte that always
// equals the serialized payload size.
//
//	|LSB                                               MSB|LSB    MSB|
//	┌──────────┬──────────┬─────────┬──────────┬──────────┬──────────┐
//	│ PDU Type │ RFU      │ ChSel   │ TxAdd    │ RxAdd    │ Length   │
//	│ (4 bits) │ (1 bit)  │ (1 bit) │ (1 bit)  │ (1 bit)  │ (8 bits) │
//	└──────────┴──────────┴─────────┴──────────┴──────────┴──────────┘
type header struct {
	pduType uint8
	rfu     bool
	chSel   bool
	txAdd   bool
	rxAdd   bool
	length  uint8
}

// kindToBit maps an address kind to the TxAdd/RxAdd header bit: public is 0,
// random is 1.
func kindToBit(k AddressKind) bool {
	return k == Random
}

func bitToKind(bit bool) AddressKind {
	if bit {
		return Random
	}
	return Public
}

// headerWithTx builds a header for PDUs carrying a single advertiser
// address, with TxAdd reflecting its kind.
func headerWithTx(advKind AddressKind, pduType, length uint8) header {
	return header{
		pduType: pduType & 0x0f,
		txAdd:   kindToBit(advKind),
		length:  length,
	}
}

// headerWithRxTx builds a header for PDUs carrying two addresses, with
// TxAdd and RxAdd reflecting their kinds.
func headerWithRxTx(advKind, targetKind AddressKind, pduType, length uint8) header {
	h := headerWithTx(advKind, pduType, length)
	h.rxAdd = kindToBit(targetKind)
	return h
}

func bit(b bool, shift uint) byte {
	if b {
		return 1 << shift
	}
	return 0
}

func (h header) bytes() [2]byte {
	flags := bit(h.rxAdd, 7) | bit(h.txAdd, 6) | bit(h.chSel, 5) | bit(h.rfu, 4) | h.pduType&0x0f
	return [2]byte{flags, h.length}
}

func parseHeader(b []byte) (header, error) {
	if len(b) < 2 {
		return header{}, ErrInvalidHeader
	}
	return header{
		pduType: b[0] & 0x0f,
		rfu:     b[0]&0x10 != 0,
		chSel:   b[0]&0x20 != 0,
		txAdd:   b[0]&0x40 != 0,
		rxAdd:   b[0]&0x80 != 0,
		length:  b[1],
	}, nil
}
