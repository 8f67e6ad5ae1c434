package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/levelup/internal/logger"
)

// sqlSlotMaxAttempts bounds writes classified as [Retryable].
const sqlSlotMaxAttempts = 2

// sqlSlotStorage keeps one row per slot in the "slots" table.
type sqlSlotStorage struct {
	db  *DB
	now func() time.Time
}

// NewSQLSlotStorage returns a [SlotStorage] over db. The "slots" table must
// exist; see [DB.Migrate].
func NewSQLSlotStorage(db *DB) SlotStorage {
	return &sqlSlotStorage{db: db, now: time.Now}
}

func (s *sqlSlotStorage) Get(ctx context.Context, slot string) ([]byte, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectSlotQuery(s.db.builder(), slot)
	if err != nil {
		return nil, err
	}

	var payload string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*sqlSlotStorage.Get").Str("slot", slot).Msg("error reading slot")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return []byte(payload), nil
}

func (s *sqlSlotStorage) Set(ctx context.Context, slot string, payload []byte) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertSlotQuery(s.db.builder(), slot, payload, s.now().UTC())
	if err != nil {
		return err
	}

	for attempt := 1; ; attempt++ {
		_, err = s.db.ExecContext(ctx, query, args...)
		if err == nil {
			return nil
		}

		class := s.db.errorClassificator.Classify(err)
		log.Err(err).
			Str("func", "*sqlSlotStorage.Set").
			Str("slot", slot).
			Int("attempt", attempt).
			Int("class", int(class)).
			Msg("error writing slot")

		switch {
		case class == QuotaExceeded:
			return errors.Join(ErrQuotaExceeded, fmt.Errorf("%w: %w", ErrExecutingQuery, err))
		case class == Retryable && attempt < sqlSlotMaxAttempts && ctx.Err() == nil:
			continue
		default:
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}
}
