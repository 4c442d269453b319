package ll

import "context"

// Mode selects the PHY the radio operates on.
type Mode uint8

// Ble1Mbit is the 1 Mbit/s LE Uncoded PHY with a 1-byte preamble. It is the
// only PHY legacy advertising uses.
const Ble1Mbit Mode = iota

// HeaderSize selects the on-air PDU header size. Data physical channel PDUs
// may carry a third header byte (CTEInfo); advertising PDUs never do.
type HeaderSize uint8

// Header sizes.
const (
	TwoByteHeader HeaderSize = iota
	ThreeByteHeader
)

// Radio is the capability surface a radio peripheral driver implements for
// this Link Layer. Register-level control of a specific chip lives behind
// this interface and is not part of this package.
//
// All setters must be called only while the radio is disabled (not
// mid-transmission); enforcing or documenting that precondition is the
// driver's responsibility.
type Radio interface {
	// SetMode selects the PHY and its preamble length.
	SetMode(m Mode)

	// SetTxPower sets the transmit power in dBm. Drivers round to the
	// nearest supported discrete level and clamp out-of-range values
	// rather than fail.
	SetTxPower(dbm int8)

	// SetHeaderSize selects a 2- or 3-byte PDU header.
	SetHeaderSize(s HeaderSize)

	// SetAccessAddress sets the 4 bytes following the preamble.
	SetAccessAddress(aa uint32)

	// SetChannel tunes frequency and whitening for the given channel.
	SetChannel(ch Channel)

	// SetCRCInit presets the CRC shift register.
	SetCRCInit(init uint32)

	// SetCRCPoly sets the CRC generator polynomial.
	SetCRCPoly(poly uint32)

	// Transmit sends the packet in b and blocks until the transmission
	// completes, the context is cancelled, or the hardware fails.
	Transmit(ctx context.Context, b []byte) error

	// Receive blocks until a packet is written into b, the context is
	// cancelled, or the hardware fails. b should be MaxPDULength bytes.
	Receive(ctx context.Context, b []byte) error

	// DeviceAddress reads the hardware-provisioned device address, public
	// or random per a hardware flag.
	DeviceAddress() Address
}
