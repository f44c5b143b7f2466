//go:build amd64 || 386

// Package portio supplies the host platform's raw I/O-port access,
// backed by u-root's memio on x86. Running it needs root (or raw I/O
// privileges); everything above it talks through superio.PortIO so
// tests substitute a simulated register bank instead.
package portio

import (
	"github.com/OscarL/it87/internal/logger"
	"github.com/OscarL/it87/internal/superio"
	"github.com/u-root/u-root/pkg/memio"
)

type x86Ports struct{}

func (x86Ports) ReadByte(port uint16) byte {
	var data memio.Uint8
	if err := memio.In(port, &data); err != nil {
		logger.Debug().Err(err).Uint16("port", port).Msg("port read failed")
		return 0xFF
	}
	return byte(data)
}

func (x86Ports) WriteByte(port uint16, value byte) {
	data := memio.Uint8(value)
	if err := memio.Out(port, &data); err != nil {
		logger.Debug().Err(err).Uint16("port", port).Msg("port write failed")
	}
}

// New returns the native port I/O backend.
func New() (superio.PortIO, error) {
	return x86Ports{}, nil
}
