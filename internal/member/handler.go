package member

import (
	"github.com/daonswim/swim-club-api/internal/model"
	sharedContext "github.com/daonswim/swim-club-api/internal/shared/context"
	sharedError "github.com/daonswim/swim-club-api/internal/shared/error"
	"github.com/daonswim/swim-club-api/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type MemberHandler struct {
	memberService *MemberService
}

func NewMemberHandler(memberService *MemberService) *MemberHandler {
	return &MemberHandler{
		memberService: memberService,
	}
}

func (h *MemberHandler) GetProfile(c *gin.Context) {
	memberID, ok := sharedContext.RequireMemberID(c)
	if !ok {
		return
	}

	response, err := h.memberService.GetProfile(c.Request.Context(), memberID)
	if err != nil {
		handler.Respond(c, err)
		return
	}

	c.JSON(200, response)
}

func (h *MemberHandler) UpdateProfile(c *gin.Context) {
	memberID, ok := sharedContext.RequireMemberID(c)
	if !ok {
		return
	}

	var request UpdateProfileRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := h.memberService.UpdateProfile(c.Request.Context(), memberID, &request)
	if err != nil {
		handler.Respond(c, err)
		return
	}

	c.JSON(200, response)
}

func (h *MemberHandler) UpdateOnboarding(c *gin.Context) {
	memberID, ok := sharedContext.RequireMemberID(c)
	if !ok {
		return
	}

	var request UpdateOnboardingRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := h.memberService.UpdateOnboarding(c.Request.Context(), memberID, &request)
	if err != nil {
		handler.Respond(c, err)
		return
	}

	c.JSON(200, response)
}

// List handles GET /admin/members?status=
func (h *MemberHandler) List(c *gin.Context) {
	var status *model.MemberStatus
	if raw := c.Query("status"); raw != "" {
		s := model.MemberStatus(raw)
		if !s.IsValid() {
			c.JSON(sharedError.ValidationFailed.Status, sharedError.ValidationFailed)
			return
		}
		status = &s
	}

	response, err := h.memberService.List(c.Request.Context(), status)
	if err != nil {
		handler.Respond(c, err)
		return
	}

	c.JSON(200, response)
}

// OverrideStatus handles PUT /admin/members/:id/status
func (h *MemberHandler) OverrideStatus(c *gin.Context) {
	actorID, ok := sharedContext.RequireMemberID(c)
	if !ok {
		return
	}

	memberID, ok := handler.PathID(c)
	if !ok {
		return
	}

	var request OverrideStatusRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	err := h.memberService.OverrideStatus(c.Request.Context(), memberID, actorID, model.MemberStatus(request.Status))
	if err != nil {
		handler.Respond(c, err)
		return
	}

	c.JSON(200, gin.H{})
}

// Delete handles DELETE /admin/members/:id
func (h *MemberHandler) Delete(c *gin.Context) {
	memberID, ok := handler.PathID(c)
	if !ok {
		return
	}

	if err := h.memberService.Delete(c.Request.Context(), memberID); err != nil {
		handler.Respond(c, err)
		return
	}

	c.JSON(200, gin.H{})
}

// ListHistory handles GET /admin/members/:id/history
func (h *MemberHandler) ListHistory(c *gin.Context) {
	memberID, ok := handler.PathID(c)
	if !ok {
		return
	}

	response, err := h.memberService.ListHistory(c.Request.Context(), memberID)
	if err != nil {
		handler.Respond(c, err)
		return
	}

	c.JSON(200, response)
}
