package adv

// MaxAdvertisingDataLength is the longest advertising data payload a legacy
// advertising PDU can carry.
const MaxAdvertisingDataLength = 31

// AD structure types [Supplement to the Bluetooth Core Specification, Part A].
const (
	adFlags            = 0x01
	adSomeUUID16       = 0x02
	adAllUUID16        = 0x03
	adSomeUUID32       = 0x04
	adAllUUID32        = 0x05
	adSomeUUID128      = 0x06
	adAllUUID128       = 0x07
	adShortName        = 0x08
	adCompleteName     = 0x09
	adTxPower          = 0x0A
	adManufacturerData = 0xFF
)

// Flags bits.
const (
	FlagLimitedDiscoverable = 0x01
	FlagGeneralDiscoverable = 0x02
	FlagLEOnly              = 0x04 // BR/EDR not supported
	FlagBothController      = 0x08 // BR/EDR and LE on the same controller
)

// Discoverable returns the flags value of a general discoverable LE-only
// device.
func Discoverable() byte {
	return FlagGeneralDiscoverable | FlagLEOnly
}

// LimitedDiscoverable returns the flags value of a limited discoverable
// LE-only device.
func LimitedDiscoverable() byte {
	return FlagLimitedDiscoverable | FlagLEOnly
}

// Broadcast returns the flags value of a non-discoverable LE-only device,
// the usual setting for beacons.
func Broadcast() byte {
	return FlagLEOnly
}
