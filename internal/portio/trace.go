package portio

import (
	"github.com/OscarL/it87/internal/logger"
	"github.com/OscarL/it87/internal/superio"
)

type traceIO struct {
	io superio.PortIO
}

// Trace wraps a backend so every raw port access is logged at debug
// level. Register transactions are timing-tolerant on these chips, so
// the logging overhead only stretches them.
func Trace(io superio.PortIO) superio.PortIO {
	return traceIO{io: io}
}

func (t traceIO) ReadByte(port uint16) byte {
	value := t.io.ReadByte(port)
	logger.Debug().Uint16("port", port).Uint8("value", value).Msg("port in")
	return value
}

func (t traceIO) WriteByte(port uint16, value byte) {
	logger.Debug().Uint16("port", port).Uint8("value", value).Msg("port out")
	t.io.WriteByte(port, value)
}
