package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-ligand/models"
)

// GetOne runs q and scans its first row. A query matching no row returns
// [ErrNotFound].
//
// Example usage:
//
//	widget, err := store.GetOne(ctx, db,
//		db.Builder().Select("id", "name").From("widgets").Where(squirrel.Eq{"id": id}),
//		scanWidget)
func GetOne[T any](ctx context.Context, db *DB, q squirrel.SelectBuilder, scan ScanFunc[T]) (T, error) {
	var zero T

	query, args, err := q.PlaceholderFormat(db.placeholder()).Limit(1).ToSql()
	if err != nil {
		return zero, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	item, err := scan(db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return zero, ErrNotFound
	}
	if err != nil {
		return zero, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return item, nil
}

// Paginate runs q for the requested page and returns its rows together with
// the pagination metadata computed from a COUNT over the unpaginated query.
func Paginate[T any](ctx context.Context, db *DB, q squirrel.SelectBuilder, page models.PaginationParams, scan ScanFunc[T]) ([]T, models.PaginationMetadata, error) {
	base := q.RemoveLimit().RemoveOffset()

	countQuery, countArgs, err := squirrel.Select("COUNT(*)").
		FromSelect(base, "page_source").
		PlaceholderFormat(db.placeholder()).
		ToSql()
	if err != nil {
		return nil, models.PaginationMetadata{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int
	if err = db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, models.PaginationMetadata{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	meta := models.NewPaginationMetadata(page, total)

	query, args, err := base.
		Limit(uint64(page.PageSize)).
		Offset(uint64(page.Offset())).
		PlaceholderFormat(db.placeholder()).
		ToSql()
	if err != nil {
		return nil, models.PaginationMetadata{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, models.PaginationMetadata{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]T, 0, page.PageSize)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, models.PaginationMetadata{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, models.PaginationMetadata{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, meta, nil
}
