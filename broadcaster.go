package ll

import (
	"context"
	"time"

	"github.com/go-ble/linklayer/adv"
)

// Broadcaster is the GAP broadcaster role: it sends non-connectable
// non-scannable undirected advertising events carrying a fixed payload.
// Finer control over timing or PDU choice lives on LinkLayer directly.
type Broadcaster struct {
	ll    *LinkLayer
	timer *AdvertisingTimer
	buf   [MaxPDULength]byte
	n     int
}

// NewBroadcaster serializes data into an ADV_NONCONN_IND from address and
// puts the link layer into the Advertising state. It panics if data exceeds
// 31 bytes once serialized.
func NewBroadcaster(radio Radio, interval time.Duration, address Address, data adv.AdvData) (*Broadcaster, error) {
	var payload [MaxAdvDataLength]byte
	m := data.Bytes(payload[:])

	b := &Broadcaster{ll: NewLinkLayer(radio)}
	b.n = AdvNonconnInd{AdvAddress: address, AdvData: payload[:m]}.Bytes(b.buf[:])

	timer, err := b.ll.enterAdvertising(interval)
	if err != nil {
		return nil, err
	}
	b.timer = timer
	return b, nil
}

// Transmit waits for the next scheduled advertising event and sends it.
func (b *Broadcaster) Transmit(ctx context.Context) error {
	if err := sleepUntil(ctx, b.timer.NextEvent()); err != nil {
		return err
	}
	return b.ll.transmitEvent(ctx, b.buf[:b.n])
}

// Advertise transmits advertising events until the context is cancelled or
// the radio fails.
func (b *Broadcaster) Advertise(ctx context.Context) error {
	for {
		if err := b.Transmit(ctx); err != nil {
			return err
		}
	}
}
