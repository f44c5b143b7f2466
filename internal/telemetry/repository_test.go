package telemetry_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/OscarL/it87/internal/it87"
	"github.com/OscarL/it87/internal/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSample(ts time.Time) *telemetry.Sample {
	return &telemetry.Sample{
		Timestamp: ts,
		Chip:      it87.IT8728,
		Snapshot: it87.Snapshot{
			Voltages:     [9]int16{1600, 4080, 0, 2048, 12800, 6854, 2688, 800, 2400},
			Temperatures: [3]int16{45, -128, -1},
			Fans:         [5]int16{500, 0, 1000, 0, 300},
		},
	}
}

func TestRepositoryStoreAndReadBack(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "telemetry.db")

	repo, err := telemetry.NewRepository(telemetry.Config{Enabled: true, DBPath: dbPath})
	require.NoError(t, err)
	defer repo.Close()

	ts := time.Unix(1700000000, 0)
	require.NoError(t, repo.Store(context.Background(), testSample(ts)))

	db, err := sql.Open("sqlite3", dbPath)
	require.NoError(t, err)
	defer db.Close()

	var chip string
	var vin0, vin5, vbat, temp1, fan1, fan5 int
	row := db.QueryRow(`SELECT chip, vin0, vin5, vbat, temp1, fan1, fan5 FROM sensors WHERE timestamp = ?`, ts.Unix())
	require.NoError(t, row.Scan(&chip, &vin0, &vin5, &vbat, &temp1, &fan1, &fan5))

	assert.Equal(t, "IT8728", chip)
	assert.Equal(t, 1600, vin0)
	assert.Equal(t, 6854, vin5)
	assert.Equal(t, 2400, vbat)
	assert.Equal(t, -128, temp1)
	assert.Equal(t, 500, fan1)
	assert.Equal(t, 300, fan5)
}

func TestRepositoryDuplicateTimestamp(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "telemetry.db")

	repo, err := telemetry.NewRepository(telemetry.Config{Enabled: true, DBPath: dbPath})
	require.NoError(t, err)
	defer repo.Close()

	ts := time.Unix(1700000000, 0)
	require.NoError(t, repo.Store(context.Background(), testSample(ts)))
	require.NoError(t, repo.Store(context.Background(), testSample(ts)), "same-second samples must not error")
}

func TestNewServiceDisabled(t *testing.T) {
	collector, err := telemetry.NewService(telemetry.Config{Enabled: false})
	require.NoError(t, err)

	assert.NoError(t, collector.Record(context.Background(), testSample(time.Now())))
	assert.NoError(t, collector.Close())
}

func TestNewServiceInvalidConfig(t *testing.T) {
	_, err := telemetry.NewService(telemetry.Config{Enabled: true, DBPath: ""})
	require.Error(t, err)
}
