// Package dbtest opens throwaway migrated databases for package tests.
package dbtest

import (
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/clawguinness/clawboard/internal/db"
)

const sqlitePragmas = "?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_txlock=immediate"

// New returns a SQLite database in a temp dir with every migration applied.
// The database is closed when the test finishes.
func New(t testing.TB) *sqlx.DB {
	t.Helper()

	connection := filepath.Join(t.TempDir(), "clawboard.db") + sqlitePragmas
	database, err := db.Init("sqlite", connection)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	require.NoError(t, db.RunMigrations(t.Context(), database.DB, "sqlite"))
	return database
}
