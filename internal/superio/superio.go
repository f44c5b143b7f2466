// Package superio implements the indexed address/data register protocol
// shared by ITE Super-I/O chips, both for the fixed configuration port
// pair and for the runtime register window of a logical device.
package superio

// PortIO is the host platform's I/O-port access facility. It is the only
// way this module touches hardware registers.
type PortIO interface {
	ReadByte(port uint16) byte
	WriteByte(port uint16, value byte)
}

// ConfigPort is the fixed Super-I/O configuration address port. Its data
// port is ConfigPort+1.
const ConfigPort = 0x2E

// ReadIndexed writes reg to the address port, then reads one byte from
// the data port (port+1).
func ReadIndexed(io PortIO, port uint16, reg uint8) byte {
	io.WriteByte(port, reg)
	return io.ReadByte(port + 1)
}

// WriteIndexed writes reg to the address port, then value to the data
// port (port+1).
func WriteIndexed(io PortIO, port uint16, reg uint8, value byte) {
	io.WriteByte(port, reg)
	io.WriteByte(port+1, value)
}
