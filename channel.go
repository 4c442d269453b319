package ll

import (
	"fmt"

	"github.com/pkg/errors"
)

// Channel is one of the 40 LE RF channels [Vol 6, Part B, 1.4.1].
//
// Each channel carries two independent indices: the channel index, which
// seeds the whitener, and the physical index, which selects the frequency
// slot. The three primary advertising channels sit at physical slots 0, 12
// and 39; the 37 data channels fill the slots between them.
type Channel struct {
	index       uint8
	physical    uint8
	advertising bool
}

// Index returns the channel index used for whitening.
func (c Channel) Index() uint8 { return c.index }

// PhysicalIndex returns the frequency slot of the channel.
func (c Channel) PhysicalIndex() uint8 { return c.physical }

// IsAdvertising reports whether the channel is a primary advertising channel.
func (c Channel) IsAdvertising() bool { return c.advertising }

// CentralFrequency returns the RF center frequency in MHz.
func (c Channel) CentralFrequency() uint16 {
	return 2402 + 2*uint16(c.physical)
}

// WhiteningSeed returns the whitener LFSR preset for the channel: position 0
// set to one, positions 1 to 6 holding the channel index, most significant
// bit first [Vol 6, Part B, 3.2].
func (c Channel) WhiteningSeed() uint8 {
	return 0x40 | c.index
}

func (c Channel) String() string {
	return fmt.Sprintf("channel %d (%d MHz)", c.index, c.CentralFrequency())
}

// AdvertisingChannels returns the three primary advertising channels in the
// order they are used within an advertising event: 37, 38, 39.
func AdvertisingChannels() [3]Channel {
	return [3]Channel{
		{index: 37, physical: 0, advertising: true},
		{index: 38, physical: 12, advertising: true},
		{index: 39, physical: 39, advertising: true},
	}
}

// DataChannel returns the data channel with the given channel index (0..36).
func DataChannel(index uint8) (Channel, error) {
	if index > 36 {
		return Channel{}, errors.Wrapf(ErrUnknownChannel, "data channel index %d", index)
	}
	// Data channels skip the advertising slots at physical indices 0 and 12.
	physical := index + 1
	if index >= 11 {
		physical = index + 2
	}
	return Channel{index: index, physical: physical}, nil
}

// ChannelFromPhysical returns the channel occupying the given physical
// frequency slot (0..39).
func ChannelFromPhysical(physical uint8) (Channel, error) {
	switch physical {
	case 0:
		return Channel{index: 37, physical: 0, advertising: true}, nil
	case 12:
		return Channel{index: 38, physical: 12, advertising: true}, nil
	case 39:
		return Channel{index: 39, physical: 39, advertising: true}, nil
	}
	if physical > 39 {
		return Channel{}, errors.Wrapf(ErrUnknownChannel, "physical index %d", physical)
	}
	if physical < 12 {
		return DataChannel(physical - 1)
	}
	return DataChannel(physical - 2)
}
