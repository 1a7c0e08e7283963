package middleware

import (
	"log/slog"

	sharedContext "github.com/daonswim/swim-club-api/internal/shared/context"
	sharedError "github.com/daonswim/swim-club-api/internal/shared/error"
	"github.com/gin-gonic/gin"
)

// RequireRole aborts with 403 unless the authenticated member carries the
// given role claim. Must run after the JWT middleware.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		memberRole, ok := sharedContext.GetMemberRole(c)
		if !ok || memberRole != role {
			slog.Warn("권한 없는 접근 차단",
				"required_role", role,
				"member_role", memberRole,
				"path", c.Request.URL.Path,
				"method", c.Request.Method,
				"client_ip", c.ClientIP(),
			)
			c.JSON(sharedError.Forbidden.Status, sharedError.Forbidden)
			c.Abort()
			return
		}
		c.Next()
	}
}
