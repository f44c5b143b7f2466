package telemetry

import "github.com/OscarL/it87/internal/errors"

const (
	defaultDirPerm = 0o755
	defaultDBPath  = "/var/lib/it87ctl/telemetry.db"
)

type Config struct {
	Enabled bool
	DBPath  string
}

func DefaultConfig() Config {
	return Config{
		DBPath: defaultDBPath,
	}
}

func (c Config) Validate() error {
	errFactory := errors.New()
	if c.Enabled && c.DBPath == "" {
		return errFactory.New(ErrInvalidDBPath)
	}
	return nil
}
