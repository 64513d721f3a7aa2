package store

import "errors"

// Sentinel errors returned by store helpers to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNotFound is returned by [GetOne] when the query matches no row.
	ErrNotFound = errors.New("record not found")

	// ErrAlreadyExists is returned when a write violates a unique or primary
	// key constraint.
	ErrAlreadyExists = errors.New("record already exists")

	// ErrConstraintViolation is returned when a write violates a foreign key,
	// check or not-null constraint.
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrUnsupportedDatabase is returned by [Open] for DATABASE_URI schemes
	// other than sqlite and postgres.
	ErrUnsupportedDatabase = errors.New("unsupported database uri")
)

// Low-level database operation errors. These are returned (or wrapped) by
// store helpers when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
