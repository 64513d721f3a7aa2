package ligand

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-ligand/internal/store"
)

type (
	// DB is the database handle of an [App].
	DB = store.DB
	// RowScanner is implemented by *sql.Row and *sql.Rows.
	RowScanner = store.RowScanner
	// ScanFunc reads one row into a T.
	ScanFunc[T any] = store.ScanFunc[T]
)

// Store errors. [AbortError] maps them to 404 and 409.
var (
	ErrNotFound            = store.ErrNotFound
	ErrAlreadyExists       = store.ErrAlreadyExists
	ErrConstraintViolation = store.ErrConstraintViolation
)

// GetOne runs q and scans its first row, returning [ErrNotFound] when
// nothing matches.
func GetOne[T any](ctx context.Context, db *DB, q squirrel.SelectBuilder, scan ScanFunc[T]) (T, error) {
	return store.GetOne(ctx, db, q, scan)
}

// Paginate runs q for one page and returns the rows with their pagination
// metadata.
func Paginate[T any](ctx context.Context, db *DB, q squirrel.SelectBuilder, page PaginationParams, scan ScanFunc[T]) ([]T, PaginationMetadata, error) {
	return store.Paginate(ctx, db, q, page, scan)
}
