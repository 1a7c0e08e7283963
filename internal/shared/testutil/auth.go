package testutil

import (
	"strconv"

	"github.com/daonswim/swim-club-api/internal/model"
	sharedContext "github.com/daonswim/swim-club-api/internal/shared/context"
	"github.com/gin-gonic/gin"
)

// AuthAs returns middleware that injects the given member as the
// authenticated caller, standing in for the JWT middleware in handler tests.
func AuthAs(m *model.Member) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(sharedContext.MemberIDKey, strconv.FormatUint(uint64(m.ID), 10))
		c.Set(sharedContext.MemberEmailKey, m.Email)
		c.Set(sharedContext.MemberRoleKey, string(m.Role))
		c.Next()
	}
}
