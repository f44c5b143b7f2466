package superio

const (
	// MB PnP mode key, written byte-by-byte to the config address port.
	keyByte0 = 0x87
	keyByte1 = 0x01
	keyByte2 = 0x55
	keyByte3 = 0x55

	// Configuration register 0x02 bit 1 returns the chip to the
	// "wait for key" state.
	regSessionControl = 0x02
	exitBit           = 1 << 1
)

// Session brackets access to the Super-I/O configuration address space.
// While a session is open the chip is in MB PnP (programming) mode and
// normal monitoring is blocked, so every Enter must be paired with an
// Exit on all paths, usually via defer.
type Session struct {
	io     PortIO
	closed bool
}

// Enter writes the unlock key and opens a configuration-mode session.
// The write sequence is unconditional; a wrong or absent chip is only
// detected by what gets read inside the session.
func Enter(io PortIO) *Session {
	io.WriteByte(ConfigPort, keyByte0)
	io.WriteByte(ConfigPort, keyByte1)
	io.WriteByte(ConfigPort, keyByte2)
	io.WriteByte(ConfigPort, keyByte3)

	return &Session{io: io}
}

// Read reads an indexed configuration register.
func (s *Session) Read(reg uint8) byte {
	return ReadIndexed(s.io, ConfigPort, reg)
}

// Write writes an indexed configuration register.
func (s *Session) Write(reg uint8, value byte) {
	WriteIndexed(s.io, ConfigPort, reg, value)
}

// Exit returns the chip to the "wait for key" state. It runs the lock
// sequence exactly once per session; repeated calls are no-ops so it is
// safe to defer and also call early.
func (s *Session) Exit() {
	if s.closed {
		return
	}
	s.closed = true

	s.Write(regSessionControl, s.Read(regSessionControl)|exitBit)
}
