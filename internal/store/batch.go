package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// replaceInTx substitutes the user's records of kind with records. The
// delete and every insert chunk share tx, so readers observe either the
// previous set or the new one. Any failure leaves tx to be rolled back by
// the caller with the previous set intact.
func replaceInTx(ctx context.Context, tx *sql.Tx, kind, userID string, records []record) error {
	if err := execInTx(ctx, tx, deleteRecordsQuery(kind, userID)); err != nil {
		return fmt.Errorf("replace %s: delete stage: %w", kind, err)
	}

	if err := upsertInTx(ctx, tx, kind, userID, records); err != nil {
		return fmt.Errorf("replace %s: insert stage: %w", kind, err)
	}

	return nil
}

// upsertInTx writes records in chunks of insertChunkSize rows.
func upsertInTx(ctx context.Context, tx *sql.Tx, kind, userID string, records []record) error {
	for start := 0; start < len(records); start += insertChunkSize {
		end := min(start+insertChunkSize, len(records))
		if err := execInTx(ctx, tx, upsertRecordsQuery(kind, userID, records[start:end])); err != nil {
			return err
		}
	}
	return nil
}

func execInTx(ctx context.Context, tx *sql.Tx, builder sq.Sqlizer) error {
	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func isUnusable(err error) bool {
	return errors.Is(err, ErrStoreUnusable) || errors.Is(err, ErrStoreClosed)
}
