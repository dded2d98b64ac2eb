// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	recordsTable = "records"

	// insertChunkSize keeps a multi-row INSERT below SQLite's bound
	// parameter limit (4 parameters per row).
	insertChunkSize = 200

	upsertConflictClause = "ON CONFLICT (kind, owner_user_id, id) DO UPDATE SET payload = excluded.payload"
)

// ownerScope is the predicate every statement carries. No query in this
// package is built without it.
func ownerScope(kind, userID string) sq.Eq {
	return sq.Eq{"kind": kind, "owner_user_id": userID}
}

func selectRecordsQuery(kind, userID string) sq.SelectBuilder {
	return sq.Select("id", "payload").
		From(recordsTable).
		Where(ownerScope(kind, userID)).
		OrderBy("rowid")
}

func selectRecordQuery(kind, userID, id string) sq.SelectBuilder {
	return sq.Select("id", "payload").
		From(recordsTable).
		Where(ownerScope(kind, userID)).
		Where(sq.Eq{"id": id}).
		Limit(1)
}

func deleteRecordsQuery(kind, userID string) sq.DeleteBuilder {
	return sq.Delete(recordsTable).
		Where(ownerScope(kind, userID))
}

func deleteRecordQuery(kind, userID, id string) sq.DeleteBuilder {
	return sq.Delete(recordsTable).
		Where(ownerScope(kind, userID)).
		Where(sq.Eq{"id": id})
}

func upsertRecordsQuery(kind, userID string, records []record) sq.InsertBuilder {
	builder := sq.Insert(recordsTable).
		Columns("kind", "owner_user_id", "id", "payload")
	for _, r := range records {
		builder = builder.Values(kind, userID, r.id, r.payload)
	}
	return builder.Suffix(upsertConflictClause)
}
