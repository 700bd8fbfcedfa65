// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-sync/internal/logger"
)

// deviceFileRepository is the SQLite-backed implementation of
// [DeviceFileRepository]. Files are rows of the "device_files" table keyed by
// their path.
type deviceFileRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewDeviceFileRepository constructs a [DeviceFileRepository] backed by db.
func NewDeviceFileRepository(db *DB, logger *logger.Logger) DeviceFileRepository {
	logger.Debug().Msg("creating device file repository")
	return &deviceFileRepository{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

// Get implements [DeviceFileRepository]. A stored empty file is returned as
// an empty non-nil slice so it stays distinct from "not found".
func (r *deviceFileRepository) Get(ctx context.Context, path string) ([]byte, error) {
	query, args, err := buildSelectDeviceFileQuery(path)
	if err != nil {
		r.logger.Err(err).Str("func", "*deviceFileRepository.Get").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var content []byte
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&content)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.logger.Err(err).
			Str("func", "*deviceFileRepository.Get").
			Str("path", path).
			Msg("failed to read device file")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if content == nil {
		content = []byte{}
	}
	return content, nil
}

// Put implements [DeviceFileRepository].
func (r *deviceFileRepository) Put(ctx context.Context, path string, content []byte) error {
	if content == nil {
		content = []byte{}
	}

	query, args, err := buildUpsertDeviceFileQuery(path, content, r.now().UTC())
	if err != nil {
		r.logger.Err(err).Str("func", "*deviceFileRepository.Put").Msg("error building upsert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).
			Str("func", "*deviceFileRepository.Put").
			Str("path", path).
			Msg("failed to execute upsert for device file")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrDeviceFileNotSaved
	}

	r.logger.Debug().Str("path", path).Int("size", len(content)).Msg("device file saved")
	return nil
}
