// Package database owns the store handle: a database/sql pool wrapped with
// tracing and statement logging, plus the squirrel builder configured for the
// active backend. SQLite is the default; a DATABASE_URL switches the handle
// to Postgres over pgx.
package database

import (
	"database/sql"
	"os"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/rs/zerolog"
	sqldblogger "github.com/simukti/sqldb-logger"
	"github.com/simukti/sqldb-logger/logadapter/zerologadapter"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

type DB struct {
	*sql.DB
	QueryBuilder *squirrel.StatementBuilderType
	driverName   string
}

type Options struct {
	// DatabasePath is the sqlite file, used when DatabaseURL is empty.
	DatabasePath string
	// DatabaseURL selects the postgres backend.
	DatabaseURL    string
	MigrationsPath string
}

// Open initializes the store handle and brings the schema up to date.
func Open(opts Options) (*DB, error) {
	if opts.DatabaseURL != "" {
		return openPostgres(opts)
	}

	return openSQLite(opts)
}

func openSQLite(opts Options) (*DB, error) {
	migrationDB, err := sql.Open("sqlite3", opts.DatabasePath)

	if err != nil {
		return nil, err
	}

	if err := RunMigrations(migrationDB, "sqlite3", opts.MigrationsPath); err != nil {
		migrationDB.Close()
		return nil, err
	}

	migrationDB.Close()

	sqlDB, err := otelsql.Open("sqlite3", opts.DatabasePath,
		otelsql.WithDBSystem("sqlite"),
		otelsql.WithDBName("react-todo-app"),
	)

	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	logger := zerolog.New(os.Stdout)
	loggedDB := sqldblogger.OpenDriver(opts.DatabasePath, sqlDB.Driver(), zerologadapter.New(logger))

	queryBuilder := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

	return &DB{
		DB:           loggedDB,
		QueryBuilder: &queryBuilder,
		driverName:   "sqlite3",
	}, nil
}

func openPostgres(opts Options) (*DB, error) {
	migrationDB, err := sql.Open("pgx", opts.DatabaseURL)

	if err != nil {
		return nil, err
	}

	if err := RunMigrations(migrationDB, "postgres", opts.MigrationsPath); err != nil {
		migrationDB.Close()
		return nil, err
	}

	migrationDB.Close()

	sqlDB, err := otelsql.Open("pgx", opts.DatabaseURL,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName("react-todo-app"),
	)

	if err != nil {
		return nil, err
	}

	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, err
	}

	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	queryBuilder := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	return &DB{
		DB:           sqlDB,
		QueryBuilder: &queryBuilder,
		driverName:   "pgx",
	}, nil
}

// NewWithConn wraps an existing connection, used by tests running against an
// in-memory sqlite database.
func NewWithConn(sqlDB *sql.DB) *DB {
	queryBuilder := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

	return &DB{
		DB:           sqlDB,
		QueryBuilder: &queryBuilder,
		driverName:   "sqlite3",
	}
}

func RunMigrations(db *sql.DB, driverName, migrationsPath string) error {
	var (
		m   *migrate.Migrate
		err error
	)

	switch driverName {
	case "postgres", "pgx":
		pgDriver, pgErr := migratepg.WithInstance(db, &migratepg.Config{})

		if pgErr != nil {
			return pgErr
		}

		m, err = migrate.NewWithDatabaseInstance("file://"+migrationsPath, "postgres", pgDriver)
	default:
		sqliteDriver, liteErr := migratesqlite.WithInstance(db, &migratesqlite.Config{})

		if liteErr != nil {
			return liteErr
		}

		m, err = migrate.NewWithDatabaseInstance("file://"+migrationsPath, "sqlite3", sqliteDriver)
	}

	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}

	return nil
}
