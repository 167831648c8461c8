package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-dataset-loader/internal/config"
	"github.com/MKhiriev/go-dataset-loader/internal/logger"
	"github.com/MKhiriev/go-dataset-loader/migrations"
)

// DB is a connection to the staging store together with its dialect.
type DB struct {
	*sql.DB
	dialect            string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens the backend selected by cfg.DSN: a postgres:// or
// postgresql:// URL opens Postgres, anything else is a SQLite file path with
// an optional sqlite:// prefix.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	dsn := strings.TrimSpace(cfg.DSN)
	switch {
	case dsn == "":
		return nil, ErrUnsupportedDSN
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return NewConnectPostgres(ctx, config.DB{DSN: dsn}, log)
	default:
		return NewConnectSQLite(ctx, config.DB{DSN: strings.TrimPrefix(dsn, "sqlite://")}, log)
	}
}

// Migrate applies the schema for the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// Dialect returns the migrations dialect name of the backend.
func (db *DB) Dialect() string {
	return db.dialect
}

// Classify tells whether err is worth retrying on this backend.
func (db *DB) Classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return NonRetryable
	}
	return db.errorClassificator.Classify(err)
}

// builder returns a squirrel statement builder with the backend's placeholders.
func (db *DB) builder() sq.StatementBuilderType {
	if db.dialect == migrations.DialectPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

// wrapDBError wraps err with sentinel and marks retryable driver failures.
func (db *DB) wrapDBError(sentinel, err error) error {
	if db.Classify(err) == Retryable {
		return fmt.Errorf("%w: %w: %w", sentinel, ErrRetryable, err)
	}
	return fmt.Errorf("%w: %w", sentinel, err)
}
