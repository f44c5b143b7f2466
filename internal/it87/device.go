package it87

import (
	"sync"
	"time"

	"github.com/OscarL/it87/internal/errors"
	"github.com/OscarL/it87/internal/logger"
	"github.com/OscarL/it87/internal/superio"
)

// Delay between polls of the busy flag. The wait is unbounded: the
// hardware clears the flag once the in-flight conversion finishes, and
// the original driver behavior is preserved rather than inventing a
// timeout (see DESIGN.md).
const busyPollDelay = 10 * time.Microsecond

// Device is the detection result: a complete chip profile plus the
// resolved Environmental Controller base port. It is produced once by
// Detect and passed to every Refresh; there is no package-level state.
type Device struct {
	io      superio.PortIO
	profile Profile
	base    uint16

	// The config port and the runtime register window each multiplex
	// many registers behind one address/data pair, so refresh
	// transactions must not interleave.
	mu sync.Mutex
}

// Detect probes the configuration ports for a supported chip and
// resolves its runtime register window. A chip outside the supported
// set reports ErrDeviceAbsent; a chip whose Environmental Controller
// reads back base port zero reports ErrAddressUnresolved.
func Detect(io superio.PortIO) (*Device, error) {
	errFactory := errors.New()

	profile, ok := identify(io)
	if !ok {
		return nil, errFactory.New(errors.ErrDeviceAbsent)
	}

	base := resolveBase(io)
	if base == 0 {
		return nil, errFactory.WithData(errors.ErrAddressUnresolved, profile.Variant.String())
	}

	d := &Device{io: io, profile: profile, base: base}

	logger.Info().
		Str("chip", profile.Variant.String()).
		Uint16("base", base).
		Msg("hardware monitor found")
	logger.Debug().
		Uint8("vendor_id", d.readSensor(regVendorID)).
		Uint8("core_id", d.readSensor(regCoreID)).
		Msg("chip identity registers")

	return d, nil
}

// identify reads the 16-bit chip ID and maps it against the supported
// set. It is idempotent and leaves no state behind beyond its session.
func identify(io superio.PortIO) (Profile, bool) {
	s := superio.Enter(io)
	defer s.Exit()

	id := uint16(s.Read(regChipIDHigh))<<8 | uint16(s.Read(regChipIDLow))
	profile, ok := ProfileFor(id)
	if !ok {
		logger.Debug().Uint16("chip_id", id).Msg("no supported chip at config ports")
	}

	return profile, ok
}

// resolveBase selects and activates the Environmental Controller
// logical device and reads back its base port, big-endian. Zero means
// the controller is not addressable.
func resolveBase(io superio.PortIO) uint16 {
	s := superio.Enter(io)
	defer s.Exit()

	s.Write(regLogicalDevice, ldnEnvController)
	s.Write(regActivate, 0x01)

	return uint16(s.Read(regBaseHigh))<<8 | uint16(s.Read(regBaseLow))
}

// Profile returns the detected chip's capability set.
func (d *Device) Profile() Profile {
	return d.profile
}

// Base returns the resolved runtime I/O base port.
func (d *Device) Base() uint16 {
	return d.base
}

// Refresh runs one telemetry transaction and returns a fully populated
// snapshot. Monitoring is enabled on entry and the configuration
// register restored before the config-mode session is released, on
// every path.
func (d *Device) Refresh() *Snapshot {
	d.mu.Lock()
	defer d.mu.Unlock()

	s := superio.Enter(d.io)
	defer s.Exit()

	d.setMonitoring(true)
	defer d.setMonitoring(false)

	if d.profile.WideFanCounters {
		d.enableWideFanCounters()
	}

	snap := &Snapshot{}

	for i := 0; i < d.profile.VoltageChannels; i++ {
		snap.Voltages[i] = decodeVoltage(d.readSensor(voltageRegs[i]), d.profile.VoltageScales[i])
	}
	for i := 0; i < d.profile.TempChannels; i++ {
		snap.Temperatures[i] = decodeTemperature(d.readSensor(tempRegs[i]))
	}
	d.readFans(snap)

	return snap
}

func (d *Device) readFans(snap *Snapshot) {
	if !d.profile.WideFanCounters {
		for i := 0; i < d.profile.FanChannels; i++ {
			snap.Fans[i] = clampRPM(decodeFan8(d.readSensor(fanRegs8[i])))
		}
		return
	}

	for i := 0; i < d.profile.FanChannels; i++ {
		count := uint16(d.readSensor(fanRegs16Low[i])) |
			uint16(d.readSensor(fanRegs16High[i]))<<8
		snap.Fans[i] = clampRPM(decodeFan16(count))
	}
}

// setMonitoring toggles the "start monitoring" and "update VBAT" bits
// of the runtime configuration register.
func (d *Device) setMonitoring(enable bool) {
	value := superio.ReadIndexed(d.io, d.base, regConfig)
	if enable {
		value |= cfgUpdateVBAT | cfgStartMonitoring
	} else {
		value &^= cfgUpdateVBAT | cfgStartMonitoring
	}
	superio.WriteIndexed(d.io, d.base, regConfig, value)
}

// enableWideFanCounters switches fans 1-3 to 16-bit counting. The
// write is idempotent; fans 4-5 are always 16-bit on capable chips.
func (d *Device) enableWideFanCounters() {
	value := superio.ReadIndexed(d.io, d.base, regFan16Enable)
	if value&fan16EnableBits != fan16EnableBits {
		superio.WriteIndexed(d.io, d.base, regFan16Enable, value|fan16EnableBits)
	}
}

// readSensor performs a busy-polled indexed read of a runtime sensor
// register, waiting out any in-flight conversion first.
func (d *Device) readSensor(reg uint8) uint8 {
	for d.io.ReadByte(d.base)&statusBusy != 0 {
		time.Sleep(busyPollDelay)
	}
	return superio.ReadIndexed(d.io, d.base, reg)
}
