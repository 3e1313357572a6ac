package handlers

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/ray-remotestate/bento/database"
	"github.com/stretchr/testify/require"
)

// setupMockDB swaps the package-global database handle for a sqlmock-backed
// one so handlers can be exercised without a live Postgres.
func setupMockDB(t *testing.T) sqlmock.Sqlmock {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	database.Bento = sqlx.NewDb(db, "sqlmock")
	t.Cleanup(func() { _ = db.Close() })
	return mock
}

func freezeTime(t *testing.T, day time.Time) {
	t.Helper()
	orig := timeNow
	timeNow = func() time.Time { return day }
	t.Cleanup(func() { timeNow = orig })
}
