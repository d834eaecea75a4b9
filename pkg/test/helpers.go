package test

import (
	"database/sql"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/Ezhilarasu1330/React-Todo-App/internal/adapter/database"
)

type TestSetup struct {
	DB *database.DB
}

// findProjectRoot walks up from this file until it hits go.mod, so tests can
// locate the migrations regardless of which package runs them.
func findProjectRoot() string {
	_, filename, _, _ := runtime.Caller(0)
	dir := filepath.Dir(filename)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)

		if parent == dir {
			break
		}

		dir = parent
	}

	if wd, err := os.Getwd(); err == nil {
		return wd
	}

	log.Fatal("Could not find project root directory")
	return ""
}

// InitTestDB opens an in-memory sqlite database with the schema applied.
func InitTestDB() *database.DB {
	sqlDB, err := sql.Open("sqlite3", ":memory:")

	if err != nil {
		log.Fatal(err)
	}

	// Every sqlite connection gets its own in-memory database, so the pool
	// must stay at one connection.
	sqlDB.SetMaxOpenConns(1)

	if _, err := sqlDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		log.Fatal(err)
	}

	migrationsPath := filepath.Join(findProjectRoot(), "db", "migrations")

	if err := database.RunMigrations(sqlDB, "sqlite3", migrationsPath); err != nil {
		log.Fatal(err)
	}

	return database.NewWithConn(sqlDB)
}

func SetupTest(t *testing.T) *TestSetup {
	t.Helper()

	return &TestSetup{DB: InitTestDB()}
}

func TeardownTest(t *testing.T, setup *TestSetup) {
	t.Helper()

	if setup.DB != nil {
		CleanDB(t, setup)
		setup.DB.Close()
	}
}

func CleanDB(t *testing.T, setup *TestSetup) {
	t.Helper()

	rows, err := setup.DB.Query("SELECT name FROM sqlite_master WHERE type = 'table' and name not in ('sqlite_sequence', 'schema_migrations')")

	if err != nil {
		t.Fatalf("Failed to query tables: %v", err)
	}

	defer rows.Close()

	tables := []string{}

	for rows.Next() {
		var table string

		if err := rows.Scan(&table); err != nil {
			t.Fatalf("Failed to scan table name: %v", err)
		}

		tables = append(tables, strings.TrimSpace(table))
	}

	if err := rows.Err(); err != nil {
		t.Fatalf("Error iterating over rows: %v", err)
	}

	// todos first, it references users
	for i := len(tables) - 1; i >= 0; i-- {
		if _, err := setup.DB.Exec("DELETE FROM " + tables[i]); err != nil {
			t.Fatalf("Failed to clean table %s: %v", tables[i], err)
		}
	}
}
