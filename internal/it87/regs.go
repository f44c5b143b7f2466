package it87

// Super-I/O configuration registers (indexed at superio.ConfigPort).
const (
	regChipIDHigh    = 0x20
	regChipIDLow     = 0x21
	regLogicalDevice = 0x07
	regActivate      = 0x30
	regBaseHigh      = 0x60
	regBaseLow       = 0x61

	// Logical device 4 is the Environmental Controller.
	ldnEnvController = 0x04
)

// Environmental Controller runtime registers (indexed at the resolved
// base port).
const (
	regConfig      = 0x00
	regFan16Enable = 0x0C
	regVendorID    = 0x58
	regCoreID      = 0x5B

	// Configuration register bits toggled around every refresh.
	cfgStartMonitoring = 1 << 0
	cfgUpdateVBAT      = 1 << 6

	// Low three bits of regFan16Enable switch fans 1-3 to 16-bit
	// counting.
	fan16EnableBits = 0x07

	// The address port reads back with this bit set while a sensor
	// conversion is in flight.
	statusBusy = 0x80
)

// Sensor register addresses, in channel order.
var (
	// VIN0-VIN7 then VBAT.
	voltageRegs = [9]uint8{0x20, 0x21, 0x22, 0x23, 0x24, 0x25, 0x26, 0x27, 0x28}

	tempRegs = [3]uint8{0x29, 0x2A, 0x2B}

	// Legacy 8-bit tachometer counts, fans 1-3.
	fanRegs8 = [3]uint8{0x0D, 0x0E, 0x0F}

	// 16-bit tachometer counts, fans 1-5, low byte then high byte.
	fanRegs16Low  = [5]uint8{0x0D, 0x0E, 0x0F, 0x80, 0x82}
	fanRegs16High = [5]uint8{0x18, 0x19, 0x1A, 0x81, 0x83}
)
