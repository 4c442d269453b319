package ll

import "time"

// Advertising physical channel constants [Vol 6, Part B, 2.1.2, 3.1.1].
const (
	// AdvAccessAddress is the fixed access address used by all advertising
	// physical channel packets.
	AdvAccessAddress uint32 = 0x8E89BED6

	// AdvCRCInit is the preset of the CRC shift register for advertising
	// physical channel PDUs.
	AdvCRCInit uint32 = 0x555555

	// CRCPoly is the BLE CRC-24 generator polynomial
	// x^24 + x^10 + x^9 + x^6 + x^4 + x^3 + x + 1.
	CRCPoly uint32 = 0x0100065B
)

// MaxPDULength is the maximum PDU size on the LE Uncoded PHYs, header
// included. Reception buffers should be this large.
const MaxPDULength = 258

// MaxAdvDataLength is the maximum advertising data payload carried by a
// legacy advertising PDU.
const MaxAdvDataLength = 31

// Link Layer timing parameters [Vol 6, Part B, 4.1].
const (
	// TIFS is the inter frame space: the time between two consecutive
	// packets on the same channel index.
	TIFS = 150 * time.Microsecond

	// TMAFS is the minimum AUX frame space: the minimum time between a
	// packet containing an AuxPtr and the auxiliary packet it points to.
	TMAFS = 300 * time.Microsecond

	// TMSS is the minimum subevent space between the last packet of one
	// subevent and the first packet of the next.
	TMSS = 150 * time.Microsecond

	// TACA is the active clock accuracy budget (at most ±50 ppm).
	TACA = 2 * time.Microsecond

	// TSCA is the sleep clock accuracy budget (at most ±500 ppm).
	TSCA = 20 * time.Microsecond

	// TRangeDelay budgets signal propagation time between two devices,
	// 2 * D * 4ns for an assumed separation D of 10 meters.
	TRangeDelay = 2 * 10 * 4 * time.Nanosecond
)
