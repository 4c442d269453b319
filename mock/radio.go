// Package mock provides an in-memory Radio for tests and examples that run
// without radio hardware.
package mock

import (
	"context"
	"sync"

	ll "github.com/go-ble/linklayer"
)

// Transmission records one packet handed to Transmit and the channel the
// radio was tuned to at that moment.
type Transmission struct {
	Channel ll.Channel
	Data    []byte
}

// Radio implements ll.Radio in memory. Transmitted packets are recorded;
// received packets are fed in through Inject. The zero value is usable.
type Radio struct {
	mu sync.Mutex

	// Addr is returned by DeviceAddress.
	Addr ll.Address

	// TxErr and RxErr, when non-nil, are returned by Transmit and Receive
	// respectively.
	TxErr error
	RxErr error

	mode          ll.Mode
	txPower       int8
	headerSize    ll.HeaderSize
	accessAddress uint32
	crcInit       uint32
	crcPoly       uint32
	channel       ll.Channel

	transmissions []Transmission

	rxOnce sync.Once
	rx     chan []byte
}

func (r *Radio) rxChan() chan []byte {
	r.rxOnce.Do(func() { r.rx = make(chan []byte, 16) })
	return r.rx
}

// SetMode implements ll.Radio.
func (r *Radio) SetMode(m ll.Mode) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mode = m
}

// SetTxPower implements ll.Radio.
func (r *Radio) SetTxPower(dbm int8) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.txPower = dbm
}

// SetHeaderSize implements ll.Radio.
func (r *Radio) SetHeaderSize(s ll.HeaderSize) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.headerSize = s
}

// SetAccessAddress implements ll.Radio.
func (r *Radio) SetAccessAddress(aa uint32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.accessAddress = aa
}

// SetChannel implements ll.Radio.
func (r *Radio) SetChannel(ch ll.Channel) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.channel = ch
}

// SetCRCInit implements ll.Radio.
func (r *Radio) SetCRCInit(init uint32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.crcInit = init
}

// SetCRCPoly implements ll.Radio.
func (r *Radio) SetCRCPoly(poly uint32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.crcPoly = poly
}

// Transmit records the packet, or returns TxErr if set.
func (r *Radio) Transmit(ctx context.Context, b []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.TxErr != nil {
		return r.TxErr
	}
	r.transmissions = append(r.transmissions, Transmission{
		Channel: r.channel,
		Data:    append([]byte(nil), b...),
	})
	return nil
}

// Receive blocks for an injected packet, or returns RxErr if set.
func (r *Radio) Receive(ctx context.Context, b []byte) error {
	r.mu.Lock()
	rxErr := r.RxErr
	r.mu.Unlock()
	if rxErr != nil {
		return rxErr
	}
	select {
	case pkt := <-r.rxChan():
		copy(b, pkt)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// DeviceAddress implements ll.Radio.
func (r *Radio) DeviceAddress() ll.Address {
	return r.Addr
}

// Inject queues a packet for a future Receive call.
func (r *Radio) Inject(b []byte) {
	r.rxChan() <- append([]byte(nil), b...)
}

// Transmissions returns a copy of every packet transmitted so far.
func (r *Radio) Transmissions() []Transmission {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Transmission(nil), r.transmissions...)
}

// Mode returns the configured PHY mode.
func (r *Radio) Mode() ll.Mode {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.mode
}

// TxPower returns the configured transmit power in dBm.
func (r *Radio) TxPower() int8 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.txPower
}

// HeaderSize returns the configured header size.
func (r *Radio) HeaderSize() ll.HeaderSize {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.headerSize
}

// AccessAddress returns the configured access address.
func (r *Radio) AccessAddress() uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.accessAddress
}

// CRCInit returns the configured CRC preset.
func (r *Radio) CRCInit() uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.crcInit
}

// CRCPoly returns the configured CRC polynomial.
func (r *Radio) CRCPoly() uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.crcPoly
}

// Channel returns the channel the radio is currently tuned to.
func (r *Radio) Channel() ll.Channel {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.channel
}
