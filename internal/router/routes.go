package router

import (
	"github.com/daonswim/swim-club-api/internal/application"
	"github.com/daonswim/swim-club-api/internal/auth"
	"github.com/daonswim/swim-club-api/internal/capacity"
	"github.com/daonswim/swim-club-api/internal/checklist"
	"github.com/daonswim/swim-club-api/internal/config"
	"github.com/daonswim/swim-club-api/internal/member"
	"github.com/daonswim/swim-club-api/internal/meta"
	"github.com/daonswim/swim-club-api/internal/model"
	"github.com/daonswim/swim-club-api/internal/settings"
	"github.com/daonswim/swim-club-api/internal/shared/database"
	"github.com/daonswim/swim-club-api/internal/shared/middleware"
	"github.com/daonswim/swim-club-api/internal/shared/token"
	"github.com/daonswim/swim-club-api/internal/statuschange"
	"github.com/daonswim/swim-club-api/internal/withdrawal"
	"github.com/gin-gonic/gin"
)

// Setup configures all application-specific routes using dependency injection
func Setup(router *gin.Engine, cfg *config.Config, db *database.DB) {
	// Meta handler (health check, app version)
	metaHandler := meta.NewHandler(cfg, db)
	router.GET("/health", metaHandler.Health)

	// repository
	memberRepository := member.NewMemberRepository()
	applicationRepository := application.NewApplicationRepository()
	statusChangeRepository := statuschange.NewStatusChangeRepository()
	withdrawalRepository := withdrawal.NewWithdrawalRepository()
	settingsRepository := settings.NewSettingsRepository()
	checklistRepository := checklist.NewChecklistRepository()

	// shared services
	tokenManager := token.NewJWTManager(cfg)
	accountant := capacity.NewAccountant()

	// service
	authService := auth.NewAuthService(db.DB, memberRepository, tokenManager)
	memberService := member.NewMemberService(db.DB, memberRepository)
	applicationService := application.NewApplicationService(
		db.DB, memberRepository, applicationRepository,
		checklistRepository, settingsRepository, accountant)
	statusChangeService := statuschange.NewStatusChangeService(
		db.DB, statusChangeRepository, memberRepository,
		settingsRepository, accountant)
	withdrawalService := withdrawal.NewWithdrawalService(db.DB, withdrawalRepository, memberRepository)
	settingsService := settings.NewSettingsService(db.DB, settingsRepository, memberRepository, accountant)
	checklistService := checklist.NewChecklistService(db.DB, checklistRepository)

	// handler
	authHandler := auth.NewAuthHandler(authService)
	memberHandler := member.NewMemberHandler(memberService)
	applicationHandler := application.NewApplicationHandler(applicationService)
	statusChangeHandler := statuschange.NewStatusChangeHandler(statusChangeService)
	withdrawalHandler := withdrawal.NewWithdrawalHandler(withdrawalService)
	settingsHandler := settings.NewSettingsHandler(settingsService)
	checklistHandler := checklist.NewChecklistHandler(checklistService)

	// 공개 라우트: 로그인, 가입 신청 제출, 가입 전 확인사항 조회
	publicV1 := router.Group("/api/v1")
	{
		publicV1.POST("/auth/login", authHandler.Login)
		publicV1.POST("/applications", applicationHandler.Submit)
		publicV1.GET("/checklist", checklistHandler.ListActive)
	}

	// 인증 라우트: 본인 프로필/신청 관리, 추천인 심사, 상태 변경/탈퇴 요청
	memberV1 := router.Group("/api/v1")
	memberV1.Use(middleware.JWT(cfg))
	{
		memberV1.GET("/members/me", memberHandler.GetProfile)
		memberV1.PUT("/members/me", memberHandler.UpdateProfile)
		memberV1.PUT("/members/me/onboarding", memberHandler.UpdateOnboarding)

		memberV1.GET("/applications/me", applicationHandler.GetMine)
		memberV1.POST("/applications/me/resubmit", applicationHandler.Resubmit)
		memberV1.DELETE("/applications/me", applicationHandler.Withdraw)
		memberV1.POST("/applications/:id/referrer-decision", applicationHandler.ReferrerDecide)

		memberV1.POST("/status-changes", statusChangeHandler.Create)
		memberV1.GET("/status-changes/me", statusChangeHandler.ListMine)

		memberV1.POST("/withdrawals", withdrawalHandler.Create)
		memberV1.GET("/withdrawals/me", withdrawalHandler.ListMine)
	}

	// 운영진 라우트: 회원/신청/요청 큐 관리, 정원 현황, 설정, 확인사항 관리
	adminV1 := router.Group("/api/v1/admin")
	adminV1.Use(middleware.JWT(cfg), middleware.RequireRole(string(model.RoleAdmin)))
	{
		adminV1.GET("/members", memberHandler.List)
		adminV1.PUT("/members/:id/status", memberHandler.OverrideStatus)
		adminV1.DELETE("/members/:id", memberHandler.Delete)
		adminV1.GET("/members/:id/history", memberHandler.ListHistory)

		adminV1.GET("/applications", applicationHandler.List)
		adminV1.POST("/applications/:id/decision", applicationHandler.AdminDecide)

		adminV1.GET("/status-changes", statusChangeHandler.List)
		adminV1.POST("/status-changes/:id/decision", statusChangeHandler.Decide)

		adminV1.GET("/withdrawals", withdrawalHandler.List)
		adminV1.POST("/withdrawals/:id/decision", withdrawalHandler.Decide)

		adminV1.GET("/occupancy", settingsHandler.Occupancy)
		adminV1.GET("/settings", settingsHandler.Get)
		adminV1.PUT("/settings", settingsHandler.Update)

		adminV1.GET("/checklist", checklistHandler.List)
		adminV1.POST("/checklist", checklistHandler.Create)
		adminV1.PUT("/checklist/:id", checklistHandler.Update)
		adminV1.DELETE("/checklist/:id", checklistHandler.Delete)
	}
}
