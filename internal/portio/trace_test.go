package portio_test

import (
	"testing"

	"github.com/OscarL/it87/internal/portio"
	"github.com/stretchr/testify/assert"
)

type fakePorts struct {
	regs   map[uint16]byte
	writes int
}

func (f *fakePorts) ReadByte(port uint16) byte {
	return f.regs[port]
}

func (f *fakePorts) WriteByte(port uint16, value byte) {
	f.regs[port] = value
	f.writes++
}

func TestTracePassesThrough(t *testing.T) {
	backend := &fakePorts{regs: map[uint16]byte{0x2E: 0x87}}
	io := portio.Trace(backend)

	assert.Equal(t, byte(0x87), io.ReadByte(0x2E))

	io.WriteByte(0x290, 0x41)
	assert.Equal(t, byte(0x41), backend.regs[0x290])
	assert.Equal(t, 1, backend.writes)
}
