package database_test

import (
	"testing"

	"github.com/daonswim/swim-club-api/internal/model"
	"github.com/daonswim/swim-club-api/internal/shared/database"
	"github.com/daonswim/swim-club-api/internal/shared/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openRawDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB, err := db.DB()
		require.NoError(t, err)
		_ = sqlDB.Close()
	})
	return db
}

func TestMigrate_FreshDatabase(t *testing.T) {
	// Given: An empty database
	db := openRawDB(t)
	cfg := testutil.NewTestConfig()

	// When: Migrating
	require.NoError(t, database.Migrate(db, cfg))

	// Then: All tables exist and the marker holds the current version
	for _, m := range database.Models() {
		assert.True(t, db.Migrator().HasTable(m), "table for %T should exist", m)
	}

	var marker model.SchemaVersion
	require.NoError(t, db.First(&marker, "id = ?", 1).Error)
	assert.Equal(t, database.CurrentSchemaVersion, marker.Version)
}

func TestMigrate_VersionMismatchPreservesData(t *testing.T) {
	// Given: A migrated database holding a member, marked with an old version
	db := openRawDB(t)
	cfg := testutil.NewTestConfig()
	require.NoError(t, database.Migrate(db, cfg))

	m := testutil.CreateMember(t, db, "김철수", "chulsoo@example.com", model.StatusActive)
	require.NoError(t, db.Model(&model.SchemaVersion{}).
		Where("id = ?", 1).
		Update("version", database.CurrentSchemaVersion-1).Error)

	// When: Migrating again with the newer binary
	require.NoError(t, database.Migrate(db, cfg))

	// Then: Data survives and the marker is bumped
	var survivor model.Member
	require.NoError(t, db.First(&survivor, m.ID).Error)
	assert.Equal(t, "김철수", survivor.Name)

	var marker model.SchemaVersion
	require.NoError(t, db.First(&marker, "id = ?", 1).Error)
	assert.Equal(t, database.CurrentSchemaVersion, marker.Version)
}

func TestMigrate_Idempotent(t *testing.T) {
	// Given: A migrated database
	db := openRawDB(t)
	cfg := testutil.NewTestConfig()
	require.NoError(t, database.Migrate(db, cfg))

	// When / Then: Running again is harmless
	require.NoError(t, database.Migrate(db, cfg))
}
