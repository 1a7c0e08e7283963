package checklist_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/daonswim/swim-club-api/internal/checklist"
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
	handler *checklist.ChecklistHandler
}

func setupTestEnvironment(t *testing.T) *testEnv {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() {
		testutil.CleanupTestDB(t, db)
	})

	checklistService := checklist.NewChecklistService(db, checklist.NewChecklistRepository())

	return &testEnv{
		db:      db,
		handler: checklist.NewChecklistHandler(checklistService),
	}
}

func (e *testEnv) router() *gin.Engine {
	router := testutil.SetupTestRouter()
	router.GET("/api/v1/checklist", e.handler.ListActive)
	admin := router.Group("/api/v1/admin")
	admin.GET("/checklist", e.handler.List)
	admin.POST("/checklist", e.handler.Create)
	admin.PUT("/checklist/:id", e.handler.Update)
	admin.DELETE("/checklist/:id", e.handler.Delete)
	return router
}

func TestListActive_OrderedAndFiltered(t *testing.T) {
	// Given: Two active items out of order plus one inactive
	env := setupTestEnvironment(t)
	testutil.CreateChecklistItem(t, env.db, "두 번째", 2)
	testutil.CreateChecklistItem(t, env.db, "첫 번째", 1)
	hidden := testutil.CreateChecklistItem(t, env.db, "숨김", 3)
	require.NoError(t, env.db.Model(hidden).Update("is_active", false).Error)

	// When: An applicant loads the public checklist
	recorder := testutil.ExecuteRequest(t, env.router(), testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/checklist",
	})

	// Then: Active items only, in display order
	assert.Equal(t, http.StatusOK, recorder.Code)

	var response checklist.ListChecklistResponse
	testutil.ParseResponse(t, recorder, &response)
	require.Len(t, response.Items, 2)
	assert.Equal(t, "첫 번째", response.Items[0].Label)
	assert.Equal(t, "두 번째", response.Items[1].Label)
}

func TestCreateAndUpdate(t *testing.T) {
	// Given: An empty checklist
	env := setupTestEnvironment(t)
	router := env.router()

	// When: The admin creates an item
	created := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/admin/checklist",
		Body: checklist.CreateChecklistItemRequest{
			Label:        "회칙 동의",
			Description:  "회비 납부 및 회칙에 동의합니다.",
			DisplayOrder: 1,
		},
	})
	require.Equal(t, http.StatusCreated, created.Code)

	var item checklist.ChecklistItemResponse
	testutil.ParseResponse(t, created, &item)
	assert.True(t, item.IsActive)

	// When: The admin deactivates it
	inactive := false
	updated := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPut,
		URL:    fmt.Sprintf("/api/v1/admin/checklist/%d", item.ID),
		Body:   checklist.UpdateChecklistItemRequest{IsActive: &inactive},
	})

	// Then: The item is inactive but still listed for admins
	assert.Equal(t, http.StatusOK, updated.Code)

	var row model.ChecklistItem
	require.NoError(t, env.db.First(&row, item.ID).Error)
	assert.False(t, row.IsActive)
}

func TestUpdate_UnknownItem(t *testing.T) {
	// Given: No items
	env := setupTestEnvironment(t)

	// When: Updating a missing ID
	label := "없는 항목"
	recorder := testutil.ExecuteRequest(t, env.router(), testutil.TestRequest{
		Method: http.MethodPut,
		URL:    "/api/v1/admin/checklist/42",
		Body:   checklist.UpdateChecklistItemRequest{Label: &label},
	})

	// Then: Not found
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "CHECK-001", errorResponse.Code)
}

func TestDelete(t *testing.T) {
	// Given: One item
	env := setupTestEnvironment(t)
	item := testutil.CreateChecklistItem(t, env.db, "삭제 대상", 1)

	// When: The admin deletes it
	recorder := testutil.ExecuteRequest(t, env.router(), testutil.TestRequest{
		Method: http.MethodDelete,
		URL:    fmt.Sprintf("/api/v1/admin/checklist/%d", item.ID),
	})

	// Then: Gone
	assert.Equal(t, http.StatusOK, recorder.Code)

	var count int64
	require.NoError(t, env.db.Model(&model.ChecklistItem{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}
