//go:build integration
// +build integration

package database_test

import (
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"testing"

	"github.com/teamEPYC/leave-management-app-sub000/internal/database"
	"github.com/teamEPYC/leave-management-app-sub000/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMain ensures Docker cleanup when the package runs on its own
func TestMain(m *testing.M) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		testutils.CleanupSharedContainer()
		os.Exit(1)
	}()

	log.Println("🧪 Starting database integration tests...")
	code := m.Run()
	testutils.CleanupSharedContainer()
	os.Exit(code)
}

// TestInitializeMigratesByDefault tests that a nil options value creates the schema
func TestInitializeMigratesByDefault(t *testing.T) {
	base := testutils.SetupTestSuite(t)

	assert.True(t, base.DB.Migrator().HasTable("users"))
	assert.True(t, base.DB.Migrator().HasTable("leave_balance_adjustments"))
}

// TestInitializeSkipAutoMigrate tests that the skip flag leaves the schema alone
func TestInitializeSkipAutoMigrate(t *testing.T) {
	base := testutils.SetupTestSuite(t)

	require.NoError(t, base.DB.Exec(`DROP DATABASE IF EXISTS skip_migrate_check`).Error)
	require.NoError(t, base.DB.Exec(`CREATE DATABASE skip_migrate_check`).Error)

	dsn := strings.Replace(base.Config.DatabaseURL, "/testdb", "/skip_migrate_check", 1)

	db, err := database.Initialize(dsn, &database.Options{SkipAutoMigrate: true})
	require.NoError(t, err)
	assert.False(t, db.Migrator().HasTable("users"))
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	db, err = database.Initialize(dsn, nil)
	require.NoError(t, err)
	assert.True(t, db.Migrator().HasTable("users"))

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
