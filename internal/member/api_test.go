package member_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/daonswim/swim-club-api/internal/member"
	"github.com/daonswim/swim-club-api/internal/model"
	sharedError "github.com/daonswim/swim-club-api/internal/shared/error"
	"github.com/daonswim/swim-club-api/internal/shared/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testEnv struct {
	db      *gorm.DB
	handler *member.MemberHandler
}

func setupTestEnvironment(t *testing.T) *testEnv {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() {
		testutil.CleanupTestDB(t, db)
	})

	memberService := member.NewMemberService(db, member.NewMemberRepository())

	return &testEnv{
		db:      db,
		handler: member.NewMemberHandler(memberService),
	}
}

func (e *testEnv) routerFor(m *model.Member) *gin.Engine {
	router := testutil.SetupTestRouter()
	authed := router.Group("/api/v1", testutil.AuthAs(m))
	authed.GET("/members/me", e.handler.GetProfile)
	authed.PUT("/members/me", e.handler.UpdateProfile)
	authed.PUT("/members/me/onboarding", e.handler.UpdateOnboarding)
	authed.GET("/admin/members", e.handler.List)
	authed.PUT("/admin/members/:id/status", e.handler.OverrideStatus)
	authed.DELETE("/admin/members/:id", e.handler.Delete)
	authed.GET("/admin/members/:id/history", e.handler.ListHistory)
	return router
}

func TestGetProfile(t *testing.T) {
	// Given: An active member
	env := setupTestEnvironment(t)
	m := testutil.CreateMember(t, env.db, "김철수", "chulsoo@example.com", model.StatusActive)
	router := env.routerFor(m)

	// When: The member reads their profile
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/members/me",
	})

	// Then: Profile fields are returned
	assert.Equal(t, http.StatusOK, recorder.Code)

	var response member.GetProfileResponse
	testutil.ParseResponse(t, recorder, &response)
	assert.Equal(t, "김철수", response.Name)
	assert.Equal(t, "chulsoo@example.com", response.Email)
	assert.Equal(t, string(model.StatusActive), response.Status)
}

func TestUpdateOnboarding_PartialFlags(t *testing.T) {
	// Given: A freshly approved member
	env := setupTestEnvironment(t)
	m := testutil.CreateMember(t, env.db, "김철수", "chulsoo@example.com", model.StatusActive)
	router := env.routerFor(m)

	// When: Only the kakao flag is sent
	joined := true
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPut,
		URL:    "/api/v1/members/me/onboarding",
		Body:   member.UpdateOnboardingRequest{HasJoinedKakao: &joined},
	})

	// Then: Only that flag changes
	assert.Equal(t, http.StatusOK, recorder.Code)

	var updated model.Member
	require.NoError(t, env.db.First(&updated, m.ID).Error)
	assert.True(t, updated.HasJoinedKakao)
	assert.False(t, updated.HasCompletedOnboarding)
}

func TestList_FilterByStatus(t *testing.T) {
	// Given: Members in different states
	env := setupTestEnvironment(t)
	admin := testutil.CreateAdmin(t, env.db, "운영진", "admin@example.com")
	testutil.CreateMember(t, env.db, "휴면", "inactive@example.com", model.StatusInactive)
	testutil.CreateMember(t, env.db, "활동", "active@example.com", model.StatusActive)
	router := env.routerFor(admin)

	// When: The admin filters by inactive
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/admin/members?status=inactive",
	})

	// Then: Only the inactive member is listed
	assert.Equal(t, http.StatusOK, recorder.Code)

	var response member.ListMembersResponse
	testutil.ParseResponse(t, recorder, &response)
	require.Len(t, response.Members, 1)
	assert.Equal(t, "휴면", response.Members[0].Name)
}

func TestOverrideStatus_RecordsHistory(t *testing.T) {
	// Given: An active member
	env := setupTestEnvironment(t)
	admin := testutil.CreateAdmin(t, env.db, "운영진", "admin@example.com")
	m := testutil.CreateMember(t, env.db, "김철수", "chulsoo@example.com", model.StatusActive)
	router := env.routerFor(admin)

	// When: The admin forces the member inactive
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPut,
		URL:    fmt.Sprintf("/api/v1/admin/members/%d/status", m.ID),
		Body:   member.OverrideStatusRequest{Status: string(model.StatusInactive)},
	})

	// Then: Status flips and the override is recorded
	assert.Equal(t, http.StatusOK, recorder.Code)

	var updated model.Member
	require.NoError(t, env.db.First(&updated, m.ID).Error)
	assert.Equal(t, model.StatusInactive, updated.Status)

	var history model.StatusChangeHistory
	require.NoError(t, env.db.Where("member_id = ?", m.ID).First(&history).Error)
	assert.Equal(t, model.SourceAdminOverride, history.Source)
	assert.Equal(t, "운영진", history.ChangedBy)
}

func TestOverrideStatus_SameStatusNoHistory(t *testing.T) {
	// Given: An active member
	env := setupTestEnvironment(t)
	admin := testutil.CreateAdmin(t, env.db, "운영진", "admin@example.com")
	m := testutil.CreateMember(t, env.db, "김철수", "chulsoo@example.com", model.StatusActive)
	router := env.routerFor(admin)

	// When: The admin sets the status the member already has
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPut,
		URL:    fmt.Sprintf("/api/v1/admin/members/%d/status", m.ID),
		Body:   member.OverrideStatusRequest{Status: string(model.StatusActive)},
	})

	// Then: No-op, no history row
	assert.Equal(t, http.StatusOK, recorder.Code)

	var count int64
	require.NoError(t, env.db.Model(&model.StatusChangeHistory{}).
		Where("member_id = ?", m.ID).
		Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestOverrideStatus_UnknownMember(t *testing.T) {
	// Given: No such member
	env := setupTestEnvironment(t)
	admin := testutil.CreateAdmin(t, env.db, "운영진", "admin@example.com")
	router := env.routerFor(admin)

	// When: The admin overrides a missing ID
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPut,
		URL:    "/api/v1/admin/members/9999/status",
		Body:   member.OverrideStatusRequest{Status: string(model.StatusInactive)},
	})

	// Then: Not found
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "MEMBER-001", errorResponse.Code)
}

func TestDelete_RemovesMember(t *testing.T) {
	// Given: A member
	env := setupTestEnvironment(t)
	admin := testutil.CreateAdmin(t, env.db, "운영진", "admin@example.com")
	m := testutil.CreateMember(t, env.db, "김철수", "chulsoo@example.com", model.StatusActive)
	router := env.routerFor(admin)

	// When: The admin deletes the member
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodDelete,
		URL:    fmt.Sprintf("/api/v1/admin/members/%d", m.ID),
	})

	// Then: The row is gone
	assert.Equal(t, http.StatusOK, recorder.Code)

	var count int64
	require.NoError(t, env.db.Model(&model.Member{}).Where("id = ?", m.ID).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestListHistory(t *testing.T) {
	// Given: A member with two recorded transitions
	env := setupTestEnvironment(t)
	admin := testutil.CreateAdmin(t, env.db, "운영진", "admin@example.com")
	m := testutil.CreateMember(t, env.db, "김철수", "chulsoo@example.com", model.StatusActive)
	require.NoError(t, env.db.Create(&model.StatusChangeHistory{
		MemberID: m.ID, FromStatus: model.StatusPending, ToStatus: model.StatusActive,
		ChangedBy: "운영진", Source: model.SourceAdminApproval,
	}).Error)
	require.NoError(t, env.db.Create(&model.StatusChangeHistory{
		MemberID: m.ID, FromStatus: model.StatusActive, ToStatus: model.StatusInactive,
		ChangedBy: "운영진", Source: model.SourceAdminOverride,
	}).Error)
	router := env.routerFor(admin)

	// When: The admin reads the member's history
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    fmt.Sprintf("/api/v1/admin/members/%d/history", m.ID),
	})

	// Then: Both entries are returned
	assert.Equal(t, http.StatusOK, recorder.Code)

	var response member.ListHistoryResponse
	testutil.ParseResponse(t, recorder, &response)
	assert.Len(t, response.Histories, 2)
}
