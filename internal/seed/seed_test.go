package seed_test

import (
	"context"
	"testing"

	"github.com/daonswim/swim-club-api/internal/model"
	"github.com/daonswim/swim-club-api/internal/seed"
	"github.com/daonswim/swim-club-api/internal/shared/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRun_FirstBoot(t *testing.T) {
	// Given: An empty database
	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.CleanupTestDB(t, db) })
	cfg := testutil.NewTestConfig()

	// When: Seeding
	require.NoError(t, seed.Run(context.Background(), db, cfg))

	// Then: An active admin exists with the configured credentials
	var admin model.Member
	require.NoError(t, db.Where("role = ?", model.RoleAdmin).First(&admin).Error)
	assert.Equal(t, cfg.Seed.AdminEmail, admin.Email)
	assert.Equal(t, model.StatusActive, admin.Status)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(cfg.Seed.AdminPassword)))

	// Then: Settings and checklist defaults exist
	var settings model.SystemSettings
	require.NoError(t, db.First(&settings, "id = ?", 1).Error)
	assert.Equal(t, 30, settings.MaxCapacity)

	var itemCount int64
	require.NoError(t, db.Model(&model.ChecklistItem{}).Count(&itemCount).Error)
	assert.Greater(t, itemCount, int64(0))
}

func TestRun_Idempotent(t *testing.T) {
	// Given: An already seeded database
	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.CleanupTestDB(t, db) })
	cfg := testutil.NewTestConfig()
	require.NoError(t, seed.Run(context.Background(), db, cfg))

	// When: Seeding again
	require.NoError(t, seed.Run(context.Background(), db, cfg))

	// Then: Nothing is duplicated
	var adminCount, settingsCount int64
	require.NoError(t, db.Model(&model.Member{}).Where("role = ?", model.RoleAdmin).Count(&adminCount).Error)
	require.NoError(t, db.Model(&model.SystemSettings{}).Count(&settingsCount).Error)
	assert.Equal(t, int64(1), adminCount)
	assert.Equal(t, int64(1), settingsCount)
}

func TestRun_KeepsExistingSettings(t *testing.T) {
	// Given: An admin already customized the capacity
	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.CleanupTestDB(t, db) })
	cfg := testutil.NewTestConfig()
	testutil.CreateSettings(t, db, 12, true)

	// When: Seeding
	require.NoError(t, seed.Run(context.Background(), db, cfg))

	// Then: The customized values survive
	var settings model.SystemSettings
	require.NoError(t, db.First(&settings, "id = ?", 1).Error)
	assert.Equal(t, 12, settings.MaxCapacity)
	assert.True(t, settings.IncludeInactiveInCapacity)
}
