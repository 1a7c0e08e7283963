package capacity_test

import (
	"context"
	"errors"
	"testing"

	"github.com/daonswim/swim-club-api/internal/capacity"
	"github.com/daonswim/swim-club-api/internal/model"
	"github.com/daonswim/swim-club-api/internal/shared/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCount_OnlyActiveByDefault(t *testing.T) {
	// Given: One member in every lifecycle state
	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.CleanupTestDB(t, db) })

	testutil.CreateMember(t, db, "활동", "active@example.com", model.StatusActive)
	testutil.CreateMember(t, db, "휴면", "inactive@example.com", model.StatusInactive)
	testutil.CreateMember(t, db, "대기", "pending@example.com", model.StatusPending)
	testutil.CreateMember(t, db, "탈퇴", "withdrawn@example.com", model.StatusWithdrawn)

	accountant := capacity.NewAccountant()
	settings := &model.SystemSettings{MaxCapacity: 10, IncludeInactiveInCapacity: false}

	// When: Counting occupied slots
	count, err := accountant.Count(context.Background(), db, settings)

	// Then: Only the active member counts
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestCount_InclusionPolicyCountsInactive(t *testing.T) {
	// Given: An active and an inactive member
	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.CleanupTestDB(t, db) })

	testutil.CreateMember(t, db, "활동", "active@example.com", model.StatusActive)
	testutil.CreateMember(t, db, "휴면", "inactive@example.com", model.StatusInactive)

	accountant := capacity.NewAccountant()
	settings := &model.SystemSettings{MaxCapacity: 10, IncludeInactiveInCapacity: true}

	// When: Counting with the inclusion policy on
	count, err := accountant.Count(context.Background(), db, settings)

	// Then: Both count
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestRemaining_NegativeWhenCapacityLowered(t *testing.T) {
	// Given: More active members than the configured capacity
	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.CleanupTestDB(t, db) })

	testutil.CreateMember(t, db, "활동1", "a@example.com", model.StatusActive)
	testutil.CreateMember(t, db, "활동2", "b@example.com", model.StatusActive)
	testutil.CreateMember(t, db, "활동3", "c@example.com", model.StatusActive)

	accountant := capacity.NewAccountant()
	settings := &model.SystemSettings{MaxCapacity: 2}

	// When: Computing remaining slots
	remaining, err := accountant.Remaining(context.Background(), db, settings)

	// Then: Negative, not an error
	require.NoError(t, err)
	assert.Equal(t, -1, remaining)
}

func TestEnsureRoom_FullClub(t *testing.T) {
	// Given: A club at capacity
	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.CleanupTestDB(t, db) })

	testutil.CreateMember(t, db, "활동", "a@example.com", model.StatusActive)

	accountant := capacity.NewAccountant()
	settings := &model.SystemSettings{MaxCapacity: 1}

	// When: Checking for a free slot
	err := accountant.EnsureRoom(context.Background(), db, settings)

	// Then: Capacity full
	require.Error(t, err)
	assert.True(t, errors.Is(err, capacity.ErrCapacityFull))
}

func TestEnsureRoom_HasRoom(t *testing.T) {
	// Given: A club with a free slot
	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.CleanupTestDB(t, db) })

	testutil.CreateMember(t, db, "활동", "a@example.com", model.StatusActive)

	accountant := capacity.NewAccountant()
	settings := &model.SystemSettings{MaxCapacity: 2}

	// When / Then: Room is available
	assert.NoError(t, accountant.EnsureRoom(context.Background(), db, settings))
}

func TestSnapshot(t *testing.T) {
	// Given: Two active members, capacity 30
	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.CleanupTestDB(t, db) })

	testutil.CreateMember(t, db, "활동1", "a@example.com", model.StatusActive)
	testutil.CreateMember(t, db, "활동2", "b@example.com", model.StatusActive)

	accountant := capacity.NewAccountant()
	settings := &model.SystemSettings{MaxCapacity: 30}

	// When: Building the occupancy report
	snapshot, err := accountant.Snapshot(context.Background(), db, settings)

	// Then: Count, max and remaining line up
	require.NoError(t, err)
	assert.Equal(t, 2, snapshot.Count)
	assert.Equal(t, 30, snapshot.Max)
	assert.Equal(t, 28, snapshot.Remaining)
}
