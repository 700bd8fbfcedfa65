package store

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-sync/internal/config"
	"github.com/MKhiriev/go-pass-sync/internal/logger"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestDeviceFileRepo(t *testing.T) (*deviceFileRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	l := logger.Nop()
	repo := NewDeviceFileRepository(&DB{DB: db, logger: l}, l).(*deviceFileRepository)
	repo.now = func() time.Time { return fixedNow }
	return repo, mock
}

// ── Get ──

func TestDeviceFileRepository_Get_Found(t *testing.T) {
	repo, mock := newTestDeviceFileRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT content FROM device_files WHERE path = ?")).
		WithArgs("/vault.json").
		WillReturnRows(sqlmock.NewRows([]string{"content"}).AddRow([]byte(`{"ciphertext":"x"}`)))

	got, err := repo.Get(context.Background(), "/vault.json")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"ciphertext":"x"}`), got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeviceFileRepository_Get_NotFoundIsNil(t *testing.T) {
	repo, mock := newTestDeviceFileRepo(t)

	mock.ExpectQuery("SELECT content FROM device_files").
		WithArgs("/missing.json").
		WillReturnRows(sqlmock.NewRows([]string{"content"}))

	got, err := repo.Get(context.Background(), "/missing.json")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDeviceFileRepository_Get_QueryError(t *testing.T) {
	repo, mock := newTestDeviceFileRepo(t)

	mock.ExpectQuery("SELECT content FROM device_files").
		WithArgs("/vault.json").
		WillReturnError(errors.New("disk I/O error"))

	got, err := repo.Get(context.Background(), "/vault.json")
	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrScanningRow)
}

// ── Put ──

func TestDeviceFileRepository_Put_Upserts(t *testing.T) {
	repo, mock := newTestDeviceFileRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO device_files (path,content,updated_at) VALUES (?,?,?) ON CONFLICT(path) DO UPDATE")).
		WithArgs("/vault.json", []byte("data"), fixedNow).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.Put(context.Background(), "/vault.json", []byte("data")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeviceFileRepository_Put_NoRowsAffected(t *testing.T) {
	repo, mock := newTestDeviceFileRepo(t)

	mock.ExpectExec("INSERT INTO device_files").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Put(context.Background(), "/vault.json", []byte("data"))
	assert.ErrorIs(t, err, ErrDeviceFileNotSaved)
}

func TestDeviceFileRepository_Put_ExecError(t *testing.T) {
	repo, mock := newTestDeviceFileRepo(t)

	mock.ExpectExec("INSERT INTO device_files").
		WillReturnError(sql.ErrConnDone)

	err := repo.Put(context.Background(), "/vault.json", []byte("data"))
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.ErrorIs(t, err, sql.ErrConnDone)
}

// ── SQLite ──

func TestDeviceFileRepository_SQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	l := logger.Nop()

	db, err := NewConnectSQLite(ctx, config.ClientDB{DSN: filepath.Join(t.TempDir(), "nested", "device.db")}, l)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.Migrate())

	repo := NewDeviceFileRepository(db, l)

	got, err := repo.Get(ctx, "/vault.json")
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, repo.Put(ctx, "/vault.json", []byte("v1")))
	require.NoError(t, repo.Put(ctx, "/vault.json", []byte("v2")))
	require.NoError(t, repo.Put(ctx, "/empty.json", nil))

	got, err = repo.Get(ctx, "/vault.json")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), got)

	got, err = repo.Get(ctx, "/empty.json")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
