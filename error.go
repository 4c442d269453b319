package ll

import "github.com/pkg/errors"

// Parse errors returned by the PDU decoders. They are recoverable: a
// malformed received packet fails to parse and is dropped by the caller.
var (
	// ErrInvalidType is returned when the 4-bit PDU type in the header does
	// not match the expected variant, or when no variant matches at all.
	ErrInvalidType = errors.New("invalid PDU type")

	// ErrInvalidLength is returned when the input is shorter than a minimal
	// PDU or the header's length byte is inconsistent with the payload.
	ErrInvalidLength = errors.New("invalid PDU length")

	// ErrInvalidHeader is returned when the 2-byte header itself cannot be
	// decoded.
	ErrInvalidHeader = errors.New("invalid PDU header")
)

// ErrUnknownChannel is returned for channel indices outside the 40 LE RF
// channels.
var ErrUnknownChannel = errors.New("unknown RF channel")

// ErrNotStandby is returned when advertising is requested on a LinkLayer
// that already left the Standby state.
var ErrNotStandby = errors.New("link layer is not in standby")

// ErrInvalidInterval is returned when an advertising interval falls outside
// the range allowed by the specification.
var ErrInvalidInterval = errors.New("advertising interval out of range")
