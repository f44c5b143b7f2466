package it87_test

// simChip emulates an IT87-family Super-I/O chip behind raw port I/O:
// the configuration address/data pair at 0x2E/0x2F with MB PnP key
// handling, and the Environmental Controller register window at a
// configurable base port with a busy flag on the address port.
type simChip struct {
	chipID uint16
	base   uint16

	// Number of address-port reads that report the busy flag before
	// each sensor read goes through.
	busyPerRead int

	cfgIndex uint8
	cfgRegs  [256]byte
	runIndex uint8
	runRegs  [256]byte

	unlocked    bool
	keyProgress int
	unlockCount int
	lockCount   int

	busyLeft int

	// History of values written to the runtime configuration
	// register (index 0x00).
	configWrites []byte
}

var pnpKey = [4]byte{0x87, 0x01, 0x55, 0x55}

func newSimChip(chipID, base uint16) *simChip {
	s := &simChip{chipID: chipID, base: base}
	s.cfgRegs[0x20] = byte(chipID >> 8)
	s.cfgRegs[0x21] = byte(chipID)
	s.cfgRegs[0x60] = byte(base >> 8)
	s.cfgRegs[0x61] = byte(base)
	return s
}

func (s *simChip) ReadByte(port uint16) byte {
	switch port {
	case 0x2E:
		return s.cfgIndex
	case 0x2F:
		if !s.unlocked {
			return 0xFF
		}
		return s.cfgRegs[s.cfgIndex]
	case s.base:
		if s.busyLeft > 0 {
			s.busyLeft--
			return s.runIndex | 0x80
		}
		return s.runIndex
	case s.base + 1:
		return s.runRegs[s.runIndex]
	}
	return 0xFF
}

func (s *simChip) WriteByte(port uint16, value byte) {
	switch port {
	case 0x2E:
		s.advanceKey(value)
		s.cfgIndex = value
	case 0x2F:
		if !s.unlocked {
			return
		}
		s.cfgRegs[s.cfgIndex] = value
		if s.cfgIndex == 0x02 && value&0x02 != 0 {
			s.unlocked = false
			s.lockCount++
		}
	case s.base:
		s.runIndex = value
		s.busyLeft = s.busyPerRead
	case s.base + 1:
		s.runRegs[s.runIndex] = value
		if s.runIndex == 0x00 {
			s.configWrites = append(s.configWrites, value)
		}
	}
}

func (s *simChip) advanceKey(value byte) {
	if s.unlocked {
		return
	}
	if value == pnpKey[s.keyProgress] {
		s.keyProgress++
		if s.keyProgress == len(pnpKey) {
			s.keyProgress = 0
			s.unlocked = true
			s.unlockCount++
		}
		return
	}
	s.keyProgress = 0
}
