package superio_test

import (
	"testing"

	"github.com/OscarL/it87/internal/superio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorderIO is a flat register bank behind an address/data port pair
// that records every raw port write.
type recorderIO struct {
	index  uint8
	regs   [256]byte
	writes []portWrite
}

type portWrite struct {
	port  uint16
	value byte
}

func (r *recorderIO) ReadByte(port uint16) byte {
	if port == superio.ConfigPort+1 {
		return r.regs[r.index]
	}
	return r.index
}

func (r *recorderIO) WriteByte(port uint16, value byte) {
	r.writes = append(r.writes, portWrite{port, value})
	switch port {
	case superio.ConfigPort:
		r.index = value
	case superio.ConfigPort + 1:
		r.regs[r.index] = value
	}
}

func TestIndexedProtocol(t *testing.T) {
	io := &recorderIO{}

	superio.WriteIndexed(io, superio.ConfigPort, 0x60, 0x02)
	assert.Equal(t, byte(0x02), io.regs[0x60])

	io.regs[0x21] = 0x28
	assert.Equal(t, byte(0x28), superio.ReadIndexed(io, superio.ConfigPort, 0x21))
}

func TestSessionEnterWritesUnlockKey(t *testing.T) {
	io := &recorderIO{}

	superio.Enter(io)

	require.Len(t, io.writes, 4)
	for i, want := range []byte{0x87, 0x01, 0x55, 0x55} {
		assert.Equal(t, uint16(superio.ConfigPort), io.writes[i].port)
		assert.Equal(t, want, io.writes[i].value)
	}
}

func TestSessionExitLocksExactlyOnce(t *testing.T) {
	io := &recorderIO{}

	s := superio.Enter(io)
	s.Write(0x07, 0x04)
	s.Exit()
	s.Exit() // deferred Exit after an early explicit one must be a no-op

	assert.Equal(t, byte(0x02), io.regs[0x02]&0x02, "chip must be locked")

	locks := 0
	for i, w := range io.writes {
		if w.port == superio.ConfigPort+1 && w.value&0x02 != 0 && i > 0 &&
			io.writes[i-1] == (portWrite{superio.ConfigPort, 0x02}) {
			locks++
		}
	}
	assert.Equal(t, 1, locks, "lock sequence must run exactly once per session")
}

func TestSessionExitRunsOnPanicPath(t *testing.T) {
	io := &recorderIO{}

	func() {
		defer func() { _ = recover() }()

		s := superio.Enter(io)
		defer s.Exit()
		panic("simulated failure inside session")
	}()

	assert.Equal(t, byte(0x02), io.regs[0x02]&0x02, "chip must be locked after a failed operation")
}
