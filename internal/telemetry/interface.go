package telemetry

import (
	"context"
	"time"

	"github.com/OscarL/it87/internal/it87"
)

// Collector defines the core domain interface
type Collector interface {
	Record(ctx context.Context, sample *Sample) error
	Close() error
}

// Sample is one recorded telemetry reading
type Sample struct {
	Timestamp time.Time
	Chip      it87.Variant
	Snapshot  it87.Snapshot
}
