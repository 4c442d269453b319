package ll

// The six legacy advertising PDU types come in two structural shapes
// [Vol 6, Part B, 2.3.1]:
//
//   - one advertiser address followed by 0-31 bytes of advertising data
//     (ADV_IND, ADV_NONCONN_IND, ADV_SCAN_IND, SCAN_RSP)
//   - two addresses and nothing else, 14 bytes on the wire
//     (ADV_DIRECT_IND, SCAN_REQ)
//
// The shared shape codecs below do the byte work; the exported types only
// bind a PDU type code and field names to one of the shapes.

// PDU is one advertising physical channel PDU.
type PDU interface {
	// Type returns the 4-bit PDU type code of the variant.
	Type() uint8

	// Bytes serializes the PDU into dst and returns the total encoded
	// length. It panics if dst is too small or the PDU violates its size
	// contract; both indicate a programming error, not an I/O condition.
	Bytes(dst []byte) int
}

// twoAddressLength is the fixed encoded size of the two-address shape.
const twoAddressLength = 14

// maxPayloadLength caps the header's length byte for legacy advertising.
const maxPayloadLength = 37

func encodeAddressAndData(dst []byte, pduType uint8, addr Address, data []byte) int {
	if len(data) > MaxAdvDataLength {
		panic("ll: advertising data exceeds 31 bytes")
	}
	total := 2 + 6 + len(data)
	if len(dst) < total {
		panic("ll: destination buffer too small for PDU")
	}
	h := headerWithTx(addr.Kind(), pduType, uint8(6+len(data))).bytes()
	copy(dst[:2], h[:])
	wire := addr.WireBytes()
	copy(dst[2:8], wire[:])
	copy(dst[8:total], data)
	return total
}

// parseAddressAndData decodes the address-and-data shape. The returned data
// slice aliases b; it is only valid while the caller keeps b alive and
// unmodified. Bytes beyond the header's declared length are ignored.
func parseAddressAndData(pduType uint8, b []byte) (Address, []byte, error) {
	if len(b) < 8 {
		return Address{}, nil, ErrInvalidLength
	}
	h, err := parseHeader(b)
	if err != nil {
		return Address{}, nil, err
	}
	if h.pduType != pduType {
		return Address{}, nil, ErrInvalidType
	}
	if h.length < 6 || h.length > maxPayloadLength || 2+int(h.length) > len(b) {
		return Address{}, nil, ErrInvalidLength
	}
	var raw [6]byte
	copy(raw[:], b[2:8])
	addr := newLittleEndian(raw, bitToKind(h.txAdd))
	return addr, b[8 : 2+int(h.length)], nil
}

func encodeTwoAddress(dst []byte, pduType uint8, first, second Address, chSel bool) int {
	if len(dst) < twoAddressLength {
		panic("ll: destination buffer too small for PDU")
	}
	h := headerWithRxTx(first.Kind(), second.Kind(), pduType, 12)
	h.chSel = chSel
	hb := h.bytes()
	copy(dst[:2], hb[:])
	fw, sw := first.WireBytes(), second.WireBytes()
	copy(dst[2:8], fw[:])
	copy(dst[8:14], sw[:])
	return twoAddressLength
}

func parseTwoAddress(pduType uint8, b []byte) (first, second Address, chSel bool, err error) {
	if len(b) < 8 {
		return Address{}, Address{}, false, ErrInvalidLength
	}
	h, err := parseHeader(b)
	if err != nil {
		return Address{}, Address{}, false, err
	}
	if h.pduType != pduType {
		return Address{}, Address{}, false, ErrInvalidType
	}
	if h.length != 12 || len(b) < twoAddressLength {
		return Address{}, Address{}, false, ErrInvalidLength
	}
	var fr, sr [6]byte
	copy(fr[:], b[2:8])
	copy(sr[:], b[8:14])
	first = newLittleEndian(fr, bitToKind(h.txAdd))
	second = newLittleEndian(sr, bitToKind(h.rxAdd))
	return first, second, h.chSel, nil
}

// AdvInd is the connectable scannable undirected advertising PDU (ADV_IND).
type AdvInd struct {
	// AdvAddress is the advertiser's device address.
	AdvAddress Address

	// AdvData carries advertising data from the advertiser's host. It may
	// be empty. Parsed values alias the reception buffer.
	AdvData []byte
}

// Type implements PDU.
func (p AdvInd) Type() uint8 { return TypeAdvInd }

// Bytes implements PDU.
func (p AdvInd) Bytes(dst []byte) int {
	return encodeAddressAndData(dst, TypeAdvInd, p.AdvAddress, p.AdvData)
}

// ParseAdvInd decodes an ADV_IND PDU.
func ParseAdvInd(b []byte) (AdvInd, error) {
	addr, data, err := parseAddressAndData(TypeAdvInd, b)
	if err != nil {
		return AdvInd{}, err
	}
	return AdvInd{AdvAddress: addr, AdvData: data}, nil
}

// AdvDirectInd is the connectable directed advertising PDU (ADV_DIRECT_IND).
type AdvDirectInd struct {
	// AdvAddress is the advertiser's device address.
	AdvAddress Address

	// TargetAddress is the address of the device this PDU is directed at.
	TargetAddress Address

	// SupportsChannelSelection reports the ChSel header bit: the advertiser
	// supports the LE Channel Selection Algorithm #2 feature.
	SupportsChannelSelection bool
}

// Type implements PDU.
func (p AdvDirectInd) Type() uint8 { return TypeAdvDirectInd }

// Bytes implements PDU.
func (p AdvDirectInd) Bytes(dst []byte) int {
	return encodeTwoAddress(dst, TypeAdvDirectInd, p.AdvAddress, p.TargetAddress, p.SupportsChannelSelection)
}

// ParseAdvDirectInd decodes an ADV_DIRECT_IND PDU.
func ParseAdvDirectInd(b []byte) (AdvDirectInd, error) {
	adv, target, chSel, err := parseTwoAddress(TypeAdvDirectInd, b)
	if err != nil {
		return AdvDirectInd{}, err
	}
	return AdvDirectInd{AdvAddress: adv, TargetAddress: target, SupportsChannelSelection: chSel}, nil
}

// AdvNonconnInd is the non-connectable non-scannable undirected advertising
// PDU (ADV_NONCONN_IND).
type AdvNonconnInd struct {
	AdvAddress Address
	AdvData    []byte
}

// Type implements PDU.
func (p AdvNonconnInd) Type() uint8 { return TypeAdvNonconnInd }

// Bytes implements PDU.
func (p AdvNonconnInd) Bytes(dst []byte) int {
	return encodeAddressAndData(dst, TypeAdvNonconnInd, p.AdvAddress, p.AdvData)
}

// ParseAdvNonconnInd decodes an ADV_NONCONN_IND PDU.
func ParseAdvNonconnInd(b []byte) (AdvNonconnInd, error) {
	addr, data, err := parseAddressAndData(TypeAdvNonconnInd, b)
	if err != nil {
		return AdvNonconnInd{}, err
	}
	return AdvNonconnInd{AdvAddress: addr, AdvData: data}, nil
}

// AdvScanInd is the scannable undirected advertising PDU (ADV_SCAN_IND).
type AdvScanInd struct {
	AdvAddress Address
	AdvData    []byte
}

// Type implements PDU.
func (p AdvScanInd) Type() uint8 { return TypeAdvScanInd }

// Bytes implements PDU.
func (p AdvScanInd) Bytes(dst []byte) int {
	return encodeAddressAndData(dst, TypeAdvScanInd, p.AdvAddress, p.AdvData)
}

// ParseAdvScanInd decodes an ADV_SCAN_IND PDU.
func ParseAdvScanInd(b []byte) (AdvScanInd, error) {
	addr, data, err := parseAddressAndData(TypeAdvScanInd, b)
	if err != nil {
		return AdvScanInd{}, err
	}
	return AdvScanInd{AdvAddress: addr, AdvData: data}, nil
}

// ScanReq is the scan request PDU (SCAN_REQ) sent by an active scanner to a
// scannable advertiser.
type ScanReq struct {
	// ScanAddress is the scanner's device address (TxAdd).
	ScanAddress Address

	// AdvAddress is the address of the advertiser being scanned (RxAdd).
	AdvAddress Address
}

// Type implements PDU.
func (p ScanReq) Type() uint8 { return TypeScanReq }

// Bytes implements PDU.
func (p ScanReq) Bytes(dst []byte) int {
	return encodeTwoAddress(dst, TypeScanReq, p.ScanAddress, p.AdvAddress, false)
}

// ParseScanReq decodes a SCAN_REQ PDU.
func ParseScanReq(b []byte) (ScanReq, error) {
	scan, adv, _, err := parseTwoAddress(TypeScanReq, b)
	if err != nil {
		return ScanReq{}, err
	}
	return ScanReq{ScanAddress: scan, AdvAddress: adv}, nil
}

// ScanRsp is the scan response PDU (SCAN_RSP) answering a SCAN_REQ.
type ScanRsp struct {
	AdvAddress Address
	AdvData    []byte
}

// Type implements PDU.
func (p ScanRsp) Type() uint8 { return TypeScanRsp }

// Bytes implements PDU.
func (p ScanRsp) Bytes(dst []byte) int {
	return encodeAddressAndData(dst, TypeScanRsp, p.AdvAddress, p.AdvData)
}

// ParseScanRsp decodes a SCAN_RSP PDU.
func ParseScanRsp(b []byte) (ScanRsp, error) {
	addr, data, err := parseAddressAndData(TypeScanRsp, b)
	if err != nil {
		return ScanRsp{}, err
	}
	return ScanRsp{AdvAddress: addr, AdvData: data}, nil
}

// Parse decodes b into one of the six legacy advertising PDU types. The
// variants are tried in a fixed precedence order, the fixed-size two-address
// shapes ahead of the variable ones that share similar headers; the header
// alone cannot disambiguate the shape without checking the type nibble of
// each candidate. It returns ErrInvalidType when nothing matches.
func Parse(b []byte) (PDU, error) {
	if p, err := ParseAdvDirectInd(b); err == nil {
		return p, nil
	}
	if p, err := ParseAdvInd(b); err == nil {
		return p, nil
	}
	if p, err := ParseAdvNonconnInd(b); err == nil {
		return p, nil
	}
	if p, err := ParseAdvScanInd(b); err == nil {
		return p, nil
	}
	if p, err := ParseScanReq(b); err == nil {
		return p, nil
	}
	if p, err := ParseScanRsp(b); err == nil {
		return p, nil
	}
	return nil, ErrInvalidType
}
