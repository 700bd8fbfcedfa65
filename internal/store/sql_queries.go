package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const deviceFilesTable = "device_files"

// sqlite uses "?" placeholders
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildSelectDeviceFileQuery(path string) (string, []any, error) {
	return psql.
		Select("content").
		From(deviceFilesTable).
		Where(sq.Eq{"path": path}).
		ToSql()
}

func buildUpsertDeviceFileQuery(path string, content []byte, updatedAt time.Time) (string, []any, error) {
	return psql.
		Insert(deviceFilesTable).
		Columns("path", "content", "updated_at").
		Values(path, content, updatedAt).
		Suffix("ON CONFLICT(path) DO UPDATE SET content = excluded.content, updated_at = excluded.updated_at").
		ToSql()
}
