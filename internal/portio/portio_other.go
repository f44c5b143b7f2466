//go:build !amd64 && !386

package portio

import (
	"github.com/OscarL/it87/internal/errors"
	"github.com/OscarL/it87/internal/superio"
)

// New returns the native port I/O backend. ISA port I/O only exists on
// x86 hosts.
func New() (superio.PortIO, error) {
	return nil, errors.New().New(errors.ErrUnsupportedHost)
}
