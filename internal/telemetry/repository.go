package telemetry

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"sync"

	"github.com/OscarL/it87/internal/errors"
	"github.com/OscarL/it87/internal/logger"

	_ "github.com/mattn/go-sqlite3"
)

type Repository interface {
	Store(ctx context.Context, sample *Sample) error
	Close() error
}

type sqliteRepository struct {
	db *sql.DB
	mu sync.Mutex
}

func NewRepository(cfg Config) (Repository, error) {
	errFactory := errors.New()

	if cfg.DBPath == "" {
		return nil, errFactory.New(ErrInvalidDBPath)
	}

	logger.Debug().Msgf("Initializing telemetry repository at: %s", cfg.DBPath)

	// Ensure the directory exists
	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), defaultDirPerm); err != nil {
		return nil, errFactory.Wrap(ErrStorageInit, err)
	}

	db, err := sql.Open("sqlite3", cfg.DBPath)
	if err != nil {
		return nil, errFactory.Wrap(ErrStorageInit, err)
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, errFactory.Wrap(ErrStorageInit, err)
	}

	return &sqliteRepository{
		db: db,
	}, nil
}

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
        CREATE TABLE IF NOT EXISTS sensors (
            timestamp INTEGER PRIMARY KEY,
            chip TEXT,
            vin0 INTEGER, vin1 INTEGER, vin2 INTEGER, vin3 INTEGER,
            vin4 INTEGER, vin5 INTEGER, vin6 INTEGER, vin7 INTEGER,
            vbat INTEGER,
            temp0 INTEGER, temp1 INTEGER, temp2 INTEGER,
            fan1 INTEGER, fan2 INTEGER, fan3 INTEGER, fan4 INTEGER,
            fan5 INTEGER
        )
    `)
	return err
}

func (r *sqliteRepository) Store(ctx context.Context, sample *Sample) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	errFactory := errors.New()

	snap := &sample.Snapshot
	_, err := r.db.ExecContext(ctx, `
        INSERT INTO sensors (
            timestamp, chip,
            vin0, vin1, vin2, vin3, vin4, vin5, vin6, vin7, vbat,
            temp0, temp1, temp2,
            fan1, fan2, fan3, fan4, fan5
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
        ON CONFLICT(timestamp) DO NOTHING
    `,
		sample.Timestamp.Unix(),
		sample.Chip.String(),
		snap.Voltages[0], snap.Voltages[1], snap.Voltages[2], snap.Voltages[3],
		snap.Voltages[4], snap.Voltages[5], snap.Voltages[6], snap.Voltages[7],
		snap.Voltages[8],
		snap.Temperatures[0], snap.Temperatures[1], snap.Temperatures[2],
		snap.Fans[0], snap.Fans[1], snap.Fans[2], snap.Fans[3], snap.Fans[4],
	)
	if err != nil {
		return errFactory.Wrap(ErrStorageAccess, err)
	}

	return nil
}

func (r *sqliteRepository) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	errFactory := errors.New()

	if err := r.db.Close(); err != nil {
		return errFactory.Wrap(ErrStorageClose, err)
	}
	return nil
}
