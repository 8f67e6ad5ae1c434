package store

import (
	"database/sql"

	"github.com/MKhiriev/levelup/internal/logger"
	"github.com/MKhiriev/levelup/migrations"
	sq "github.com/Masterminds/squirrel"
)

// ErrorClassificator maps driver errors to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// ErrorClassification tells a caller what to do about a failed database
// operation.
type ErrorClassification int

const (
	// NonRetryable indicates that the failed operation should not be retried.
	// This is the default classification for unrecognised errors.
	NonRetryable ErrorClassification = iota

	// Retryable indicates that the failed operation may succeed if attempted
	// again (e.g. after a transient connection loss or a lock timeout).
	Retryable

	// QuotaExceeded indicates that the database ran out of space or hit a
	// size limit. Retrying will not help.
	QuotaExceeded
)

// DB is a database handle bundled with the dialect specific bits the slot
// storage needs.
type DB struct {
	*sql.DB
	dialect            string
	placeholder        sq.PlaceholderFormat
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the embedded migrations using the dialect of db.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

func (db *DB) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(db.placeholder)
}
