package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	slotsTable = "slots"

	columnSlot      = "slot"
	columnPayload   = "payload"
	columnUpdatedAt = "updated_at"
)

func buildSelectSlotQuery(b sq.StatementBuilderType, slot string) (string, []any, error) {
	query, args, err := b.
		Select(columnPayload).
		From(slotsTable).
		Where(sq.Eq{columnSlot: slot}).
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpsertSlotQuery builds an INSERT ... ON CONFLICT DO UPDATE that both
// sqlite (3.24+) and postgres understand.
func buildUpsertSlotQuery(b sq.StatementBuilderType, slot string, payload []byte, now time.Time) (string, []any, error) {
	query, args, err := b.
		Insert(slotsTable).
		Columns(columnSlot, columnPayload, columnUpdatedAt).
		Values(slot, string(payload), now).
		Suffix(fmt.Sprintf(
			"ON CONFLICT (%[1]s) DO UPDATE SET %[2]s = excluded.%[2]s, %[3]s = excluded.%[3]s",
			columnSlot, columnPayload, columnUpdatedAt,
		)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
