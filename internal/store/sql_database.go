package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	"github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-ligand/internal/logger"
	"github.com/MKhiriev/go-ligand/migrations"
)

// Dialects understood by [DB.Migrate].
const (
	DialectSQLite   = "sqlite3"
	DialectPostgres = "postgres"
)

const memoryDB = ":memory:"

// DB is the application database handle. It embeds *sql.DB so services can
// use the full database/sql API.
type DB struct {
	*sql.DB
	Dialect string

	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Open connects to the database selected by uri and pings it.
//
// Supported schemes:
//   - sqlite://<path> (sqlite://:memory: for a private in-memory database);
//   - postgres:// and postgresql:// through the pgx driver.
func Open(ctx context.Context, uri string, log *logger.Logger) (*DB, error) {
	switch {
	case strings.HasPrefix(uri, "sqlite://"):
		return newConnectSQLite(ctx, strings.TrimPrefix(uri, "sqlite://"), log)
	case strings.HasPrefix(uri, "postgres://"), strings.HasPrefix(uri, "postgresql://"):
		return newConnectPostgres(ctx, uri, log)
	default:
		scheme, _, _ := strings.Cut(uri, "://")
		return nil, fmt.Errorf("%w: scheme '%s'", ErrUnsupportedDatabase, scheme)
	}
}

func newConnectPostgres(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Err(err).Msg("error occurred during database connection")
		return nil, fmt.Errorf("error occurred during database connection: %w", err)
	}

	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, fmt.Errorf("error connecting database: %w", err)
	}
	log.Info().Str("driver", "pgx").Msg("connected to database successfully")

	return &DB{
		DB:                 conn,
		Dialect:            DialectPostgres,
		logger:             log,
		errorClassificator: NewPostgresErrorClassifier(),
	}, nil
}

func newConnectSQLite(ctx context.Context, path string, log *logger.Logger) (*DB, error) {
	if path == "" {
		path = memoryDB
	}

	if path != memoryDB {
		if err := createLocalDBFileIfNotExists(path); err != nil {
			log.Err(err).Msg("error creating database file")
			return nil, err
		}
	}

	conn, err := sql.Open("sqlite3", path+"?_foreign_keys=on")
	if err != nil {
		log.Err(err).Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	if path == memoryDB {
		// every new connection would see a fresh empty database
		conn.SetMaxOpenConns(1)
		conn.SetConnMaxLifetime(0)
		conn.SetConnMaxIdleTime(0)
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, fmt.Errorf("error connecting database: %w", err)
	}
	log.Debug().Str("driver", "sqlite3").Str("path", path).Msg("connected to database successfully")

	return &DB{
		DB:                 conn,
		Dialect:            DialectSQLite,
		logger:             log,
		errorClassificator: NewSQLiteErrorClassifier(),
	}, nil
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		return f.Close()
	}

	return nil
}

// Migrate applies every pending migration found in dir.
func (db *DB) Migrate(ctx context.Context, dir string) error {
	db.logger.Info().Str("dir", dir).Msg("upgrading database schema")

	return migrations.Migrate(ctx, db.DB, db.Dialect, dir, db.logger)
}

// Builder returns a squirrel statement builder using the placeholder format
// of the connected driver.
func (db *DB) Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(db.placeholder())
}

func (db *DB) placeholder() squirrel.PlaceholderFormat {
	if db.Dialect == DialectPostgres {
		return squirrel.Dollar
	}

	return squirrel.Question
}

// ClassifyError converts unique and constraint violations reported by the
// driver into [ErrAlreadyExists] and [ErrConstraintViolation]. Other errors
// are returned unchanged.
func (db *DB) ClassifyError(err error) error {
	if err == nil || db.errorClassificator == nil {
		return err
	}

	switch db.errorClassificator.Classify(err) {
	case UniqueViolation:
		return fmt.Errorf("%w: %w", ErrAlreadyExists, err)
	case ConstraintViolation:
		return fmt.Errorf("%w: %w", ErrConstraintViolation, err)
	default:
		return err
	}
}

// Exec builds and runs a write statement, classifying driver errors.
func (db *DB) Exec(ctx context.Context, stmt squirrel.Sqlizer) (sql.Result, error) {
	query, args, err := stmt.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, db.ClassifyError(err))
	}

	return res, nil
}
