package auth_test

import (
	"net/http"
	"testing"

	"github.com/daonswim/swim-club-api/internal/auth"
	"github.com/daonswim/swim-club-api/internal/member"
	"github.com/daonswim/swim-club-api/internal/model"
	sharedError "github.com/daonswim/swim-club-api/internal/shared/error"
	"github.com/daonswim/swim-club-api/internal/shared/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// setupTestEnvironment creates all dependencies needed for auth handler tests
func setupTestEnvironment(t *testing.T) (*gorm.DB, *gin.Engine) {
	t.Helper()

	// Setup test database
	db := testutil.SetupTestDB(t)
	t.Cleanup(func() {
		testutil.CleanupTestDB(t, db)
	})

	// Setup dependencies
	memberRepo := member.NewMemberRepository()
	authService := auth.NewAuthService(db, memberRepo, testutil.NewMockTokenManager())
	authHandler := auth.NewAuthHandler(authService)

	router := testutil.SetupTestRouter()
	router.POST("/api/v1/auth/login", authHandler.Login)

	return db, router
}

func TestLogin_Success(t *testing.T) {
	// Given: An active member
	db, router := setupTestEnvironment(t)
	testutil.CreateMember(t, db, "김철수", "chulsoo@example.com", model.StatusActive)

	// When: Login with correct credentials
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/auth/login",
		Body: auth.LoginRequest{
			Email:    "chulsoo@example.com",
			Password: testutil.FixturePassword,
		},
	})

	// Then: Tokens and member info are returned
	assert.Equal(t, http.StatusOK, recorder.Code)

	var response auth.LoginResponse
	testutil.ParseResponse(t, recorder, &response)
	assert.NotEmpty(t, response.AccessToken)
	assert.NotEmpty(t, response.RefreshToken)
	assert.Equal(t, string(model.StatusActive), response.Status)
	assert.Equal(t, string(model.RoleMember), response.Role)
}

func TestLogin_PendingApplicantCanLogin(t *testing.T) {
	// Given: An applicant still in the approval pipeline
	db, router := setupTestEnvironment(t)
	testutil.CreateApplicant(t, db, "박영희", "younghee@example.com", "김철수")

	// When: The applicant logs in
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/auth/login",
		Body: auth.LoginRequest{
			Email:    "younghee@example.com",
			Password: testutil.FixturePassword,
		},
	})

	// Then: Login succeeds with pending status
	assert.Equal(t, http.StatusOK, recorder.Code)

	var response auth.LoginResponse
	testutil.ParseResponse(t, recorder, &response)
	assert.Equal(t, string(model.StatusPending), response.Status)
}

func TestLogin_IncorrectPassword(t *testing.T) {
	// Given: An active member
	db, router := setupTestEnvironment(t)
	testutil.CreateMember(t, db, "김철수", "chulsoo@example.com", model.StatusActive)

	// When: Login with the wrong password
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/auth/login",
		Body: auth.LoginRequest{
			Email:    "chulsoo@example.com",
			Password: "wrong-password",
		},
	})

	// Then: Generic credential error, no hint which field was wrong
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "AUTH-003", errorResponse.Code)
}

func TestLogin_UnknownEmail(t *testing.T) {
	// Given: No member at all
	_, router := setupTestEnvironment(t)

	// When: Login with an unknown email
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/auth/login",
		Body: auth.LoginRequest{
			Email:    "nobody@example.com",
			Password: "password123",
		},
	})

	// Then: Same generic credential error as a wrong password
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "AUTH-003", errorResponse.Code)
}

func TestLogin_WithdrawnMemberRejected(t *testing.T) {
	// Given: A withdrawn member
	db, router := setupTestEnvironment(t)
	testutil.CreateMember(t, db, "김철수", "left@example.com", model.StatusWithdrawn)

	// When: The withdrawn member tries to log in
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/auth/login",
		Body: auth.LoginRequest{
			Email:    "left@example.com",
			Password: testutil.FixturePassword,
		},
	})

	// Then: Treated as unknown credentials
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "AUTH-003", errorResponse.Code)
}
