// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import sq "github.com/Masterminds/squirrel"

const (
	recordsTable       = "records"
	recordIndexTable   = "record_indexes"
	upsertRecordClause = "ON CONFLICT (collection, id) DO UPDATE SET data = excluded.data"
)

var sqliteBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildGetRecordQuery(collection, id string) (string, []any, error) {
	return sqliteBuilder.
		Select("data").
		From(recordsTable).
		Where(sq.Eq{"collection": collection, "id": id}).
		ToSql()
}

func buildGetAllRecordsQuery(collection string) (string, []any, error) {
	return sqliteBuilder.
		Select("data").
		From(recordsTable).
		Where(sq.Eq{"collection": collection}).
		OrderBy("seq").
		ToSql()
}

func buildGetRecordsByIndexQuery(collection, index, value string) (string, []any, error) {
	return sqliteBuilder.
		Select("r.data").
		From(recordsTable+" r").
		Join(recordIndexTable+" i ON i.collection = r.collection AND i.record_id = r.id").
		Where(sq.Eq{"r.collection": collection, "i.name": index, "i.value": value}).
		OrderBy("r.seq").
		ToSql()
}

// buildUpsertRecordQuery keeps the row, and so its seq, when the id exists.
func buildUpsertRecordQuery(collection string, rec encodedRecord) (string, []any, error) {
	return sqliteBuilder.
		Insert(recordsTable).
		Columns("collection", "id", "data").
		Values(collection, rec.id, string(rec.data)).
		Suffix(upsertRecordClause).
		ToSql()
}

func buildDeleteRecordIndexesQuery(collection string, ids ...string) (string, []any, error) {
	return sqliteBuilder.
		Delete(recordIndexTable).
		Where(sq.Eq{"collection": collection, "record_id": ids}).
		ToSql()
}

// buildInsertRecordIndexesQuery returns an empty query when the record has
// no indexed values.
func buildInsertRecordIndexesQuery(collection string, schema Schema, rec encodedRecord) (string, []any, error) {
	insert := sqliteBuilder.
		Insert(recordIndexTable).
		Columns("collection", "record_id", "name", "value")

	rows := 0
	for _, name := range schema.Indexes {
		value, ok := rec.indexes[name]
		if !ok {
			continue
		}
		insert = insert.Values(collection, rec.id, name, value)
		rows++
	}

	if rows == 0 {
		return "", nil, nil
	}

	return insert.ToSql()
}

func buildDeleteRecordsQuery(collection string, ids ...string) (string, []any, error) {
	return sqliteBuilder.
		Delete(recordsTable).
		Where(sq.Eq{"collection": collection, "id": ids}).
		ToSql()
}

func buildClearRecordsQuery(table, collection string) (string, []any, error) {
	return sqliteBuilder.
		Delete(table).
		Where(sq.Eq{"collection": collection}).
		ToSql()
}

func buildCountRecordsQuery(collection string) (string, []any, error) {
	return sqliteBuilder.
		Select("COUNT(*)").
		From(recordsTable).
		Where(sq.Eq{"collection": collection}).
		ToSql()
}

func buildCountByIndexQuery(collection, index, value string) (string, []any, error) {
	return sqliteBuilder.
		Select("COUNT(*)").
		From(recordIndexTable).
		Where(sq.Eq{"collection": collection, "name": index, "value": value}).
		ToSql()
}
