package it87

import "math"

// Voltage ADC step in millivolts per count.
const voltageStepMV = 16

// Fan tachometer constants. The chip counts 22.5 kHz clock periods per
// fan revolution; two pulses per revolution gives the 1.35 MHz and
// 675 kHz numerators.
const (
	fanClock8  = 1350000
	fanClock16 = 675000

	// An 8-bit count of 255 means no pulses were detected. Counts
	// below 2 read back during spin-up; they are clamped to 152 so a
	// bogus count of 1 does not decode as 675000 RPM.
	fanStopped8  = 0xFF
	fanSpinupMin = 2
	fanSpinupSub = 152

	// 16-bit sentinels for a stalled or absent fan.
	fanStopped16Low = 0x00FF
	fanStopped16Max = 0xFFFF
)

// decodeVoltage converts a raw ADC count to millivolts using the
// channel's rational scale, truncating toward zero.
func decodeVoltage(raw uint8, s Scale) int16 {
	mv := int64(raw) * voltageStepMV * s.Num / s.Den
	return int16(mv)
}

// decodeTemperature interprets a raw count as two's-complement signed
// degrees Celsius, 1 degree per count.
func decodeTemperature(raw uint8) int16 {
	return int16(int8(raw))
}

// decodeFan8 converts a legacy 8-bit tachometer count to RPM.
func decodeFan8(count uint8) int {
	if count == fanStopped8 {
		return 0
	}
	if count < fanSpinupMin {
		count = fanSpinupSub
	}
	return fanClock8 / (int(count) * 2)
}

// decodeFan16 converts a 16-bit tachometer count (assembled
// little-endian from the low/high register pair) to RPM.
func decodeFan16(count uint16) int {
	if count == 0 || count == fanStopped16Low || count == fanStopped16Max {
		return 0
	}
	return fanClock16 / int(count)
}

// clampRPM narrows an RPM value to the int16 snapshot field. Real fan
// speeds fit easily; only near-zero spin-up counts can exceed it.
func clampRPM(rpm int) int16 {
	if rpm > math.MaxInt16 {
		return math.MaxInt16
	}
	return int16(rpm)
}
