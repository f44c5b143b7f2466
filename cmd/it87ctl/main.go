package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/OscarL/it87/internal/config"
	"github.com/OscarL/it87/internal/errors"
	"github.com/OscarL/it87/internal/it87"
	"github.com/OscarL/it87/internal/logger"
	"github.com/OscarL/it87/internal/pid"
	"github.com/OscarL/it87/internal/portio"
	"github.com/OscarL/it87/internal/telemetry"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.Debug, cfg.Verbose, logger.IsService())
	cfg.ApplyLogLevel()
	logger.Debug().Msg("Config loaded")

	if err := run(cfg); err != nil {
		var coded errors.Error
		if errors.As(err, &coded) {
			logger.FatalWithCode(coded).Msg("it87ctl exited")
		}
		logger.Fatal().Err(err).Msg("it87ctl exited")
	}
}

func run(cfg *config.Config) error {
	if err := pid.Write(); err != nil {
		return err
	}
	defer pid.Remove()

	io, err := portio.New()
	if err != nil {
		return err
	}
	if cfg.Backend == config.BackendTrace {
		io = portio.Trace(io)
	}

	dev, err := it87.Detect(io)
	if err != nil {
		if errors.IsDeviceAbsent(err) {
			logger.Warn().Msg("No supported hardware monitor on this board")
		}
		return err
	}

	collector, err := telemetry.NewService(telemetry.Config{
		Enabled: cfg.Telemetry,
		DBPath:  cfg.TelemetryDB,
	})
	if err != nil {
		return err
	}
	defer collector.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go handleSignals(cancel)

	return loop(ctx, cfg, dev, collector)
}

func loop(ctx context.Context, cfg *config.Config, dev *it87.Device, collector telemetry.Collector) error {
	interval := time.Duration(cfg.Interval) * time.Second
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	if cfg.Monitor {
		logger.Info().Msg("Monitor mode activated. Logging sensor status...")
	}

	for {
		select {
		case <-ctx.Done():
			logger.Info().Msg("Exiting...")
			return nil
		case <-ticker.C:
			snap := dev.Refresh()
			logSnapshot(dev, snap)

			if cfg.Monitor {
				fmt.Print(snap.String())
			}

			sample := &telemetry.Sample{
				Timestamp: time.Now(),
				Chip:      dev.Profile().Variant,
				Snapshot:  *snap,
			}
			if err := collector.Record(ctx, sample); err != nil {
				logger.Error().Err(err).Msg("failed to record telemetry sample")
			}
		}
	}
}

func logSnapshot(dev *it87.Device, snap *it87.Snapshot) {
	event := logger.Info().Str("chip", dev.Profile().Variant.String())

	for i := 0; i < dev.Profile().VoltageChannels; i++ {
		event = event.Int16(fmt.Sprintf("vin%d_mv", i), snap.Voltages[i])
	}
	for i := 0; i < dev.Profile().TempChannels; i++ {
		event = event.Int16(fmt.Sprintf("temp%d_c", i), snap.Temperatures[i])
	}
	for i := 0; i < dev.Profile().FanChannels; i++ {
		event = event.Int16(fmt.Sprintf("fan%d_rpm", i+1), snap.Fans[i])
	}

	event.Msg("sensors")
}

func handleSignals(cancel context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	logger.Info().Msg("Received termination signal.")
	cancel()
}
