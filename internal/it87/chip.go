// Package it87 detects ITE IT87-family Super-I/O hardware monitors and
// decodes their raw sensor registers into calibrated values.
package it87

import "fmt"

// Variant identifies a supported chip by its 16-bit silicon ID.
type Variant uint16

const (
	IT8705 Variant = 0x8705
	IT8712 Variant = 0x8712
	IT8718 Variant = 0x8718
	IT8720 Variant = 0x8720
	IT8721 Variant = 0x8721
	IT8625 Variant = 0x8625
	IT8628 Variant = 0x8628
	IT8655 Variant = 0x8655
	IT8726 Variant = 0x8726
	IT8728 Variant = 0x8728
	IT8771 Variant = 0x8771
	IT8772 Variant = 0x8772
)

func (v Variant) String() string {
	return fmt.Sprintf("IT%04X", uint16(v))
}

// Scale is a rational voltage multiplier. Millivolt math stays in
// integers so the 1.68 divider factor decodes exactly.
type Scale struct {
	Num, Den int64
}

var (
	scale1   = Scale{1, 1}
	scale4   = Scale{4, 1}     // +12 V channel, ~16320 mV full scale
	scale168 = Scale{168, 100} // +5 V derived channels, ~6854 mV full scale
)

// Profile is the capability set of a detected variant. Profiles are
// complete by construction; detection never yields a partial one.
type Profile struct {
	Variant         Variant
	VoltageChannels int
	TempChannels    int
	FanChannels     int
	WideFanCounters bool // 16-bit tachometers on fans that support them
	VoltageScales   [9]Scale
}

func newProfile(v Variant, fans int, wide bool) Profile {
	return Profile{
		Variant:         v,
		VoltageChannels: 9,
		TempChannels:    3,
		FanChannels:     fans,
		WideFanCounters: wide,
		// VIN0-VIN3 direct, VIN4 is +12 V behind a /4 divider,
		// VIN5/VIN6 are +5 V derived behind a /1.68 divider,
		// VIN7 and VBAT direct.
		VoltageScales: [9]Scale{
			scale1, scale1, scale1, scale1,
			scale4,
			scale168, scale168,
			scale1, scale1,
		},
	}
}

// profiles is the closed set of supported chip IDs. Any other ID means
// "device absent", not an error.
var profiles = map[uint16]Profile{
	uint16(IT8705): newProfile(IT8705, 3, false),
	uint16(IT8712): newProfile(IT8712, 3, false),
	uint16(IT8718): newProfile(IT8718, 5, true),
	uint16(IT8720): newProfile(IT8720, 5, true),
	uint16(IT8721): newProfile(IT8721, 5, true),
	uint16(IT8625): newProfile(IT8625, 5, true),
	uint16(IT8628): newProfile(IT8628, 5, true),
	uint16(IT8655): newProfile(IT8655, 5, true),
	uint16(IT8726): newProfile(IT8726, 5, true),
	uint16(IT8728): newProfile(IT8728, 5, true),
	uint16(IT8771): newProfile(IT8771, 5, true),
	uint16(IT8772): newProfile(IT8772, 5, true),
}

// ProfileFor maps a raw chip ID to its profile.
func ProfileFor(id uint16) (Profile, bool) {
	p, ok := profiles[id]
	return p, ok
}
