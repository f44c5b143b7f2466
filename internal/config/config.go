package config

import (
	"os"

	"github.com/OscarL/it87/internal/errors"
	"github.com/OscarL/it87/internal/logger"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultInterval    = 2
	DefaultLogLevel    = "info"
	DefaultTelemetryDB = "/var/lib/it87ctl/telemetry.db"

	// Port I/O backends. Native talks to the hardware directly; trace
	// wraps it with per-access debug logging.
	BackendNative = "native"
	BackendTrace  = "trace"

	configName = "it87ctl"
	configDir  = "/etc"

	// Points at an explicit config file, overriding the /etc lookup.
	configEnv = "IT87CTL_CONFIG"
)

type Config struct {
	Interval    int    `mapstructure:"interval"`
	Monitor     bool   `mapstructure:"monitor"`
	Debug       bool   `mapstructure:"debug"`
	Verbose     bool   `mapstructure:"verbose"`
	LogLevel    string `mapstructure:"log_level"`
	Backend     string `mapstructure:"backend"`
	Telemetry   bool   `mapstructure:"telemetry"`
	TelemetryDB string `mapstructure:"database"`
}

// Load reads configuration from the TOML config file and the given
// command line arguments, flags winning over file values.
func Load(args []string) (*Config, error) {
	errFactory := errors.New()

	v := viper.New()
	v.SetDefault("interval", DefaultInterval)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("backend", BackendNative)
	v.SetDefault("database", DefaultTelemetryDB)

	fs := pflag.NewFlagSet(configName, pflag.ContinueOnError)
	fs.Int("interval", DefaultInterval, "Seconds between telemetry refreshes")
	fs.Bool("monitor", false, "Print a full sensor report on every refresh")
	fs.Bool("debug", false, "Enable debugging mode")
	fs.Bool("verbose", false, "Enable verbose logging")
	fs.String("log-level", DefaultLogLevel, "Log level (debug, info, warning, error)")
	fs.String("backend", BackendNative, "Port I/O backend (native, trace)")
	fs.Bool("telemetry", false, "Record snapshots to the telemetry database")
	fs.String("database", DefaultTelemetryDB, "Telemetry database path")
	if err := fs.Parse(args); err != nil {
		return nil, errFactory.Wrap(errors.ErrBindFlags, err)
	}

	for key, flagName := range map[string]string{
		"interval":  "interval",
		"monitor":   "monitor",
		"debug":     "debug",
		"verbose":   "verbose",
		"log_level": "log-level",
		"backend":   "backend",
		"telemetry": "telemetry",
		"database":  "database",
	} {
		if err := v.BindPFlag(key, fs.Lookup(flagName)); err != nil {
			return nil, errFactory.Wrap(errors.ErrBindFlags, err)
		}
	}

	if path := os.Getenv(configEnv); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, errFactory.Wrap(errors.ErrReadConfig, err)
		}
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("toml")
		v.AddConfigPath(configDir)
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, errFactory.Wrap(errors.ErrReadConfig, err)
			}
		}
	}

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, errFactory.Wrap(errors.ErrInvalidConfig, err)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) validate() error {
	errFactory := errors.New()

	if c.Interval <= 0 {
		return errFactory.WithData(errors.ErrInvalidInterval, c.Interval)
	}

	switch c.LogLevel {
	case "debug", "info", "warning", "error":
	default:
		return errFactory.WithData(errors.ErrInvalidLogLevel, c.LogLevel)
	}

	switch c.Backend {
	case BackendNative, BackendTrace:
	default:
		return errFactory.WithData(errors.ErrInvalidBackend, c.Backend)
	}

	return nil
}

// ApplyLogLevel sets the global log level; the debug and verbose
// switches override the configured level downwards only. Call it after
// logger.Init, which resets the level to its own default.
func (c *Config) ApplyLogLevel() {
	level := logger.WarnLevel
	switch c.LogLevel {
	case "debug":
		level = logger.DebugLevel
	case "info":
		level = logger.InfoLevel
	case "warning":
		level = logger.WarnLevel
	case "error":
		level = logger.ErrorLevel
	}

	if c.Debug && level > logger.DebugLevel {
		level = logger.DebugLevel
	} else if c.Verbose && level > logger.InfoLevel {
		level = logger.InfoLevel
	}

	logger.SetLogLevel(level)
}
