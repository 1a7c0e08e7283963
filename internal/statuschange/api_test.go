package statuschange_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/daonswim/swim-club-api/internal/capacity"
	"github.com/daonswim/swim-club-api/internal/member"
	"github.com/daonswim/swim-club-api/internal/model"
	"github.com/daonswim/swim-club-api/internal/settings"
	sharedError "github.com/daonswim/swim-club-api/internal/shared/error"
	"github.com/daonswim/swim-club-api/internal/shared/testutil"
	"github.com/daonswim/swim-club-api/internal/statuschange"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testEnv struct {
	db      *gorm.DB
	handler *statuschange.StatusChangeHandler
}

func setupTestEnvironment(t *testing.T) *testEnv {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() {
		testutil.CleanupTestDB(t, db)
	})

	statusChangeService := statuschange.NewStatusChangeService(
		db,
		statuschange.NewStatusChangeRepository(),
		member.NewMemberRepository(),
		settings.NewSettingsRepository(),
		capacity.NewAccountant(),
	)

	return &testEnv{
		db:      db,
		handler: statuschange.NewStatusChangeHandler(statusChangeService),
	}
}

func (e *testEnv) routerFor(m *model.Member) *gin.Engine {
	router := testutil.SetupTestRouter()
	authed := router.Group("/api/v1", testutil.AuthAs(m))
	authed.POST("/status-changes", e.handler.Create)
	authed.GET("/status-changes/me", e.handler.ListMine)
	authed.POST("/status-changes/:id/decision", e.handler.Decide)
	return router
}

func createPendingRequest(t *testing.T, db *gorm.DB, m *model.Member, requested model.MemberStatus) *model.StatusChangeRequest {
	t.Helper()

	entity := &model.StatusChangeRequest{
		MemberID:        m.ID,
		MemberName:      m.Name,
		CurrentStatus:   m.Status,
		RequestedStatus: requested,
		Reason:          "개인 사정",
		Status:          model.RequestPending,
	}
	require.NoError(t, db.Create(entity).Error)
	return entity
}

func TestCreate_ActiveToInactive(t *testing.T) {
	// Given: An active member
	env := setupTestEnvironment(t)
	m := testutil.CreateMember(t, env.db, "김철수", "chulsoo@example.com", model.StatusActive)
	router := env.routerFor(m)

	// When: Request dormancy
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/status-changes",
		Body: statuschange.CreateStatusChangeRequest{
			RequestedStatus: string(model.StatusInactive),
			Reason:          "당분간 참여가 어렵습니다",
		},
	})

	// Then: A pending request snapshots the current status
	assert.Equal(t, http.StatusCreated, recorder.Code)

	var response statuschange.StatusChangeResponse
	testutil.ParseResponse(t, recorder, &response)
	assert.Equal(t, string(model.StatusActive), response.CurrentStatus)
	assert.Equal(t, string(model.StatusInactive), response.RequestedStatus)
	assert.Equal(t, string(model.RequestPending), response.Status)

	// Then: The member status itself is untouched until approval
	var updated model.Member
	require.NoError(t, env.db.First(&updated, m.ID).Error)
	assert.Equal(t, model.StatusActive, updated.Status)
}

func TestCreate_SameStatusRejected(t *testing.T) {
	// Given: An active member
	env := setupTestEnvironment(t)
	m := testutil.CreateMember(t, env.db, "김철수", "chulsoo@example.com", model.StatusActive)
	router := env.routerFor(m)

	// When: Request the status the member already has
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/status-changes",
		Body: statuschange.CreateStatusChangeRequest{
			RequestedStatus: string(model.StatusActive),
			Reason:          "지금 그대로가 좋아요",
		},
	})

	// Then: Refused
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "STATUS-005", errorResponse.Code)
}

func TestCreate_PendingApplicantNotEligible(t *testing.T) {
	// Given: An applicant still in the approval pipeline
	env := setupTestEnvironment(t)
	m := testutil.CreateApplicant(t, env.db, "박영희", "younghee@example.com", "김철수")
	router := env.routerFor(m)

	// When: The applicant requests dormancy
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/status-changes",
		Body: statuschange.CreateStatusChangeRequest{
			RequestedStatus: string(model.StatusInactive),
			Reason:          "아직 회원이 아니에요",
		},
	})

	// Then: Refused
	assert.Equal(t, http.StatusConflict, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "MEMBER-003", errorResponse.Code)
}

func TestCreate_OnePendingRequestPerMember(t *testing.T) {
	// Given: A member with an open request
	env := setupTestEnvironment(t)
	m := testutil.CreateMember(t, env.db, "김철수", "chulsoo@example.com", model.StatusActive)
	createPendingRequest(t, env.db, m, model.StatusInactive)
	router := env.routerFor(m)

	// When: Open a second one
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/status-changes",
		Body: statuschange.CreateStatusChangeRequest{
			RequestedStatus: string(model.StatusInactive),
			Reason:          "한 번 더",
		},
	})

	// Then: Conflict
	assert.Equal(t, http.StatusConflict, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "STATUS-002", errorResponse.Code)
}

func TestCreate_PendingWithdrawalBlocksStatusChange(t *testing.T) {
	// Given: A member with an open withdrawal request
	env := setupTestEnvironment(t)
	m := testutil.CreateMember(t, env.db, "김철수", "chulsoo@example.com", model.StatusActive)
	require.NoError(t, env.db.Create(&model.WithdrawalRequest{
		MemberID:   m.ID,
		MemberName: m.Name,
		Reason:     "탈퇴하려고요",
		Status:     model.RequestPending,
	}).Error)
	router := env.routerFor(m)

	// When: The member also requests a status change
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/status-changes",
		Body: statuschange.CreateStatusChangeRequest{
			RequestedStatus: string(model.StatusInactive),
			Reason:          "마음이 바뀌었어요",
		},
	})

	// Then: The open withdrawal blocks it
	assert.Equal(t, http.StatusConflict, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "STATUS-002", errorResponse.Code)
}

func TestDecide_ApproveDormancy(t *testing.T) {
	// Given: A pending active→inactive request
	env := setupTestEnvironment(t)
	admin := testutil.CreateAdmin(t, env.db, "운영진", "admin@example.com")
	m := testutil.CreateMember(t, env.db, "김철수", "chulsoo@example.com", model.StatusActive)
	entity := createPendingRequest(t, env.db, m, model.StatusInactive)
	router := env.routerFor(admin)

	// When: The admin approves
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    fmt.Sprintf("/api/v1/status-changes/%d/decision", entity.ID),
		Body:   statuschange.DecisionRequest{Decision: "approve"},
	})

	// Then: Member flips to inactive with a history row
	assert.Equal(t, http.StatusOK, recorder.Code)

	var updated model.Member
	require.NoError(t, env.db.First(&updated, m.ID).Error)
	assert.Equal(t, model.StatusInactive, updated.Status)

	var history model.StatusChangeHistory
	require.NoError(t, env.db.Where("member_id = ?", m.ID).First(&history).Error)
	assert.Equal(t, model.StatusActive, history.FromStatus)
	assert.Equal(t, model.StatusInactive, history.ToStatus)
	assert.Equal(t, model.SourceRequest, history.Source)

	var decided model.StatusChangeRequest
	require.NoError(t, env.db.First(&decided, entity.ID).Error)
	assert.Equal(t, model.RequestApproved, decided.Status)
}

func TestDecide_ReactivationGatedByCapacity(t *testing.T) {
	// Given: Capacity 1 already filled, an inactive member wants back in
	env := setupTestEnvironment(t)
	admin := testutil.CreateAdmin(t, env.db, "운영진", "admin@example.com")
	m := testutil.CreateMember(t, env.db, "김철수", "chulsoo@example.com", model.StatusInactive)
	entity := createPendingRequest(t, env.db, m, model.StatusActive)
	testutil.CreateSettings(t, env.db, 1, false)
	router := env.routerFor(admin)

	// When: The admin approves the reactivation (admin fills the slot)
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    fmt.Sprintf("/api/v1/status-changes/%d/decision", entity.ID),
		Body:   statuschange.DecisionRequest{Decision: "approve"},
	})

	// Then: Refused, request stays pending
	assert.Equal(t, http.StatusConflict, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "CAPACITY-001", errorResponse.Code)

	var stillPending model.StatusChangeRequest
	require.NoError(t, env.db.First(&stillPending, entity.ID).Error)
	assert.Equal(t, model.RequestPending, stillPending.Status)
}

func TestDecide_DormancyIgnoresCapacity(t *testing.T) {
	// Given: Capacity 1 already filled, an active member wants dormancy
	env := setupTestEnvironment(t)
	admin := testutil.CreateAdmin(t, env.db, "운영진", "admin@example.com")
	m := testutil.CreateMember(t, env.db, "김철수", "chulsoo@example.com", model.StatusActive)
	entity := createPendingRequest(t, env.db, m, model.StatusInactive)
	testutil.CreateSettings(t, env.db, 1, false)
	router := env.routerFor(admin)

	// When: The admin approves the dormancy
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    fmt.Sprintf("/api/v1/status-changes/%d/decision", entity.ID),
		Body:   statuschange.DecisionRequest{Decision: "approve"},
	})

	// Then: Leaving the active pool never hits the capacity gate
	assert.Equal(t, http.StatusOK, recorder.Code)

	var updated model.Member
	require.NoError(t, env.db.First(&updated, m.ID).Error)
	assert.Equal(t, model.StatusInactive, updated.Status)
}

func TestDecide_StaleRequestStateMismatch(t *testing.T) {
	// Given: A pending request whose member was since changed by an admin override
	env := setupTestEnvironment(t)
	admin := testutil.CreateAdmin(t, env.db, "운영진", "admin@example.com")
	m := testutil.CreateMember(t, env.db, "김철수", "chulsoo@example.com", model.StatusActive)
	entity := createPendingRequest(t, env.db, m, model.StatusInactive)

	// 운영진이 직접 휴면으로 바꿔 신청의 현재 상태 스냅샷이 stale이 됐다.
	require.NoError(t, env.db.Model(&model.Member{}).
		Where("id = ?", m.ID).
		Update("status", model.StatusInactive).Error)
	router := env.routerFor(admin)

	// When: The admin approves the stale request
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    fmt.Sprintf("/api/v1/status-changes/%d/decision", entity.ID),
		Body:   statuschange.DecisionRequest{Decision: "approve"},
	})

	// Then: State mismatch, nothing is applied
	assert.Equal(t, http.StatusConflict, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "STATUS-004", errorResponse.Code)
}

func TestDecide_AlreadyProcessed(t *testing.T) {
	// Given: A request that was already approved
	env := setupTestEnvironment(t)
	admin := testutil.CreateAdmin(t, env.db, "운영진", "admin@example.com")
	m := testutil.CreateMember(t, env.db, "김철수", "chulsoo@example.com", model.StatusActive)
	entity := createPendingRequest(t, env.db, m, model.StatusInactive)
	router := env.routerFor(admin)

	first := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    fmt.Sprintf("/api/v1/status-changes/%d/decision", entity.ID),
		Body:   statuschange.DecisionRequest{Decision: "approve"},
	})
	require.Equal(t, http.StatusOK, first.Code)

	// When: The admin decides the same request again
	second := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    fmt.Sprintf("/api/v1/status-changes/%d/decision", entity.ID),
		Body:   statuschange.DecisionRequest{Decision: "approve"},
	})

	// Then: Conflict, no double apply
	assert.Equal(t, http.StatusConflict, second.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, second, &errorResponse)
	assert.Equal(t, "STATUS-003", errorResponse.Code)

	var historyCount int64
	require.NoError(t, env.db.Model(&model.StatusChangeHistory{}).
		Where("member_id = ?", m.ID).
		Count(&historyCount).Error)
	assert.Equal(t, int64(1), historyCount)
}

func TestDecide_RejectRequiresReason(t *testing.T) {
	// Given: A pending request
	env := setupTestEnvironment(t)
	admin := testutil.CreateAdmin(t, env.db, "운영진", "admin@example.com")
	m := testutil.CreateMember(t, env.db, "김철수", "chulsoo@example.com", model.StatusActive)
	entity := createPendingRequest(t, env.db, m, model.StatusInactive)
	router := env.routerFor(admin)

	// When: Reject with empty reason
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    fmt.Sprintf("/api/v1/status-changes/%d/decision", entity.ID),
		Body:   statuschange.DecisionRequest{Decision: "reject"},
	})

	// Then: Reason is required
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "STATUS-006", errorResponse.Code)
}

func TestListMine(t *testing.T) {
	// Given: A member with one decided and one pending request
	env := setupTestEnvironment(t)
	m := testutil.CreateMember(t, env.db, "김철수", "chulsoo@example.com", model.StatusActive)
	decided := createPendingRequest(t, env.db, m, model.StatusInactive)
	require.NoError(t, env.db.Model(decided).Update("status", model.RequestRejected).Error)
	createPendingRequest(t, env.db, m, model.StatusInactive)
	router := env.routerFor(m)

	// When: The member lists their own requests
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/status-changes/me",
	})

	// Then: Both requests are returned
	assert.Equal(t, http.StatusOK, recorder.Code)

	var response statuschange.ListStatusChangesResponse
	testutil.ParseResponse(t, recorder, &response)
	assert.Len(t, response.Requests, 2)
}
