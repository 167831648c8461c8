package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-dataset-loader/internal/config"
	"github.com/MKhiriev/go-dataset-loader/internal/logger"
)

// Storages groups the staging store repositories into a single value that
// can be passed around the service layer.
type Storages struct {
	StagedItemRepository StagedItemRepository

	db *DB
}

// NewStorages initialises the staging store using the supplied configuration
// and logger. It performs the following steps:
//  1. Opens the backend selected by cfg.DB.DSN, creating the SQLite file if
//     it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs a [Storages] value wired to a fresh [StagedItemRepository].
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Debug().Msg("creating new storages...")

	db, err := NewConnect(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("staging store connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		StagedItemRepository: NewStagedItemRepository(db, logger),
		db:                   db,
	}, nil
}

// Close releases the underlying connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
