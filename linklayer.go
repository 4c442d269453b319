package ll

import (
	"context"
	"math/rand"
	"time"

	log "github.com/mgutz/logxi/v1"
	"github.com/pkg/errors"
)

var logger = log.New("ll")

// State is the Link Layer state machine state [Vol 6, Part B, 1.1].
type State string

// Link Layer states. Only the non-connected states are implemented; entering
// a connection is out of scope for this Link Layer.
const (
	Standby     State = "standby"
	Advertising State = "advertising"
)

// LinkLayer drives a Radio through the Link Layer state machine. It owns the
// radio exclusively; nothing else may touch the radio while a LinkLayer holds
// it.
//
// A LinkLayer is not safe for concurrent use. One goroutine runs one
// advertising loop at a time.
type LinkLayer struct {
	radio Radio
	state State
}

// NewLinkLayer returns a LinkLayer in the Standby state.
func NewLinkLayer(radio Radio) *LinkLayer {
	return &LinkLayer{radio: radio, state: Standby}
}

// State returns the current state machine state.
func (l *LinkLayer) State() State { return l.state }

// enterAdvertising transitions Standby to Advertising, configuring the radio
// for the advertising physical channel [Vol 6, Part B, 2.1.2] and arming the
// event timer.
func (l *LinkLayer) enterAdvertising(interval time.Duration) (*AdvertisingTimer, error) {
	if l.state != Standby {
		return nil, errors.Wrapf(ErrNotStandby, "can't advertise in state %q", l.state)
	}
	timer, err := NewAdvertisingTimer(rand.New(rand.NewSource(time.Now().UnixNano())), interval)
	if err != nil {
		return nil, err
	}
	l.radio.SetMode(Ble1Mbit)
	l.radio.SetTxPower(0)
	l.radio.SetHeaderSize(TwoByteHeader)
	l.radio.SetAccessAddress(AdvAccessAddress)
	l.radio.SetCRCInit(AdvCRCInit)
	l.radio.SetCRCPoly(CRCPoly)
	l.state = Advertising
	logger.Info("Advertising +", "interval", interval)
	return timer, nil
}

// exitAdvertising returns to Standby.
func (l *LinkLayer) exitAdvertising() {
	l.state = Standby
	logger.Info("Advertising -")
}

// transmitEvent sends one advertising event: the same PDU on each of the
// three primary advertising channels in order.
func (l *LinkLayer) transmitEvent(ctx context.Context, b []byte) error {
	for _, ch := range AdvertisingChannels() {
		l.radio.SetChannel(ch)
		if err := l.radio.Transmit(ctx, b); err != nil {
			return errors.Wrapf(err, "transmit on %s", ch)
		}
	}
	return nil
}

// sleepUntil blocks until t or until the context is cancelled.
func sleepUntil(ctx context.Context, t time.Time) error {
	d := time.Until(t)
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// AdvertiseNonconnNonscan advertises in the non-connectable non-scannable
// undirected mode: ADV_NONCONN_IND events, no receive windows. It blocks
// until the context is cancelled or the radio fails, returning to Standby
// either way.
func (l *LinkLayer) AdvertiseNonconnNonscan(ctx context.Context, interval time.Duration, advData []byte) error {
	timer, err := l.enterAdvertising(interval)
	if err != nil {
		return err
	}
	defer l.exitAdvertising()

	pdu := AdvNonconnInd{AdvAddress: l.radio.DeviceAddress(), AdvData: advData}
	var buf [MaxPDULength]byte
	n := pdu.Bytes(buf[:])

	for {
		if err := sleepUntil(ctx, timer.NextEvent()); err != nil {
			return err
		}
		if err := l.transmitEvent(ctx, buf[:n]); err != nil {
			return err
		}
	}
}

// AdvertiseNonconnScan advertises in the scannable undirected mode:
// ADV_SCAN_IND events, answering matching SCAN_REQ PDUs with a SCAN_RSP
// carrying scanData. It blocks until the context is cancelled or the radio
// fails, returning to Standby either way.
func (l *LinkLayer) AdvertiseNonconnScan(ctx context.Context, interval time.Duration, advData, scanData []byte) error {
	timer, err := l.enterAdvertising(interval)
	if err != nil {
		return err
	}
	defer l.exitAdvertising()

	addr := l.radio.DeviceAddress()

	var advBuf [MaxPDULength]byte
	advN := AdvScanInd{AdvAddress: addr, AdvData: advData}.Bytes(advBuf[:])

	var rspBuf [MaxPDULength]byte
	rspN := ScanRsp{AdvAddress: addr, AdvData: scanData}.Bytes(rspBuf[:])

	if err := sleepUntil(ctx, timer.NextEvent()); err != nil {
		return err
	}
	for {
		if err := l.transmitEvent(ctx, advBuf[:advN]); err != nil {
			return err
		}
		next := timer.NextEvent()
		if err := l.serveScanRequests(ctx, next, addr, rspBuf[:rspN]); err != nil {
			return err
		}
	}
}

// serveScanRequests listens on the last advertising channel until the next
// event is due, replying to SCAN_REQ PDUs addressed to us. Requests for other
// advertisers and frames that don't parse as SCAN_REQ are dropped.
func (l *LinkLayer) serveScanRequests(ctx context.Context, until time.Time, addr Address, scanRsp []byte) error {
	window, cancel := context.WithDeadline(ctx, until)
	defer cancel()

	var buf [MaxPDULength]byte
	for {
		if err := l.radio.Receive(window, buf[:]); err != nil {
			if window.Err() != nil {
				// Window closed. Distinguish the scheduled end of the
				// receive window from the caller stopping us.
				return ctx.Err()
			}
			return errors.Wrap(err, "receive scan request")
		}
		req, err := ParseScanReq(buf[:])
		if err != nil || req.AdvAddress != addr {
			continue
		}
		logger.Debug("scan request", "scanner", req.ScanAddress.String())
		if err := l.radio.Transmit(window, scanRsp); err != nil {
			if window.Err() != nil {
				return ctx.Err()
			}
			return errors.Wrap(err, "transmit scan response")
		}
	}
}
