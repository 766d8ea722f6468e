// Package dbtest opens migrated in-memory SQLite databases for package tests.
package dbtest

import (
	"testing"

	"github.com/mx-space/blog/internal/config"
	"github.com/mx-space/blog/internal/database"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const memoryDSN = ":memory:?_pragma=foreign_keys(1)"

// New returns a fresh, migrated database that lives until the test ends.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := database.Open(config.DriverSQLite, memoryDSN, logger.Silent)
	require.NoError(t, err, "open sqlite")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Every pooled connection would get its own empty in-memory database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.Migrate(db), "migrate")
	return db
}
