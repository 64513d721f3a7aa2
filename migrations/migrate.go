// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations upgrades the application schema with goose SQL
// migrations read from a directory on disk.
package migrations

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/pressly/goose/v3"

	"github.com/MKhiriev/go-ligand/internal/logger"
)

var (
	// ErrNilDB is returned when Migrate is called without a connection.
	ErrNilDB = errors.New("db is nil")

	// ErrMigrationDirNotFound is returned when the migration directory does
	// not exist.
	ErrMigrationDirNotFound = errors.New("migration directory not found")
)

// goose keeps its dialect, filesystem and logger in package state.
var gooseMu sync.Mutex

// Migrate applies every pending migration found in dir to db.
func Migrate(ctx context.Context, db *sql.DB, dialect, dir string, log *logger.Logger) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", ErrNilDB)
	}

	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return fmt.Errorf("migration error: %w: '%s'", ErrMigrationDirNotFound, dir)
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(nil)
	goose.SetLogger(gooseLogger{log})

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.UpContext(ctx, db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

// gooseLogger forwards goose progress messages to zerolog.
type gooseLogger struct {
	log *logger.Logger
}

func (l gooseLogger) Printf(format string, v ...any) {
	l.log.Info().Msgf(strings.TrimSuffix(format, "\n"), v...)
}

// Fatalf logs only; goose's default would exit the process.
func (l gooseLogger) Fatalf(format string, v ...any) {
	l.log.Error().Msgf(strings.TrimSuffix(format, "\n"), v...)
}
