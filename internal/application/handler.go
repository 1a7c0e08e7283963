package application

import (
	"github.com/daonswim/swim-club-api/internal/model"
	sharedContext "github.com/daonswim/swim-club-api/internal/shared/context"
	sharedError "github.com/daonswim/swim-club-api/internal/shared/error"
	"github.com/daonswim/swim-club-api/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applicationService *ApplicationService
}

func NewApplicationHandler(applicationService *ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		applicationService: applicationService,
	}
}

// Submit handles POST /applications (public)
func (h *ApplicationHandler) Submit(c *gin.Context) {
	var request SubmitApplicationRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := h.applicationService.Submit(c.Request.Context(), &request)
	if err != nil {
		handler.Respond(c, err)
		return
	}

	c.JSON(201, response)
}

// GetMine handles GET /applications/me (신청자 본인 진행 상황)
func (h *ApplicationHandler) GetMine(c *gin.Context) {
	memberID, ok := sharedContext.RequireMemberID(c)
	if !ok {
		return
	}

	response, err := h.applicationService.GetStatus(c.Request.Context(), memberID)
	if err != nil {
		handler.Respond(c, err)
		return
	}

	c.JSON(200, response)
}

// ReferrerDecide handles POST /applications/:id/referrer-decision
func (h *ApplicationHandler) ReferrerDecide(c *gin.Context) {
	actorID, ok := sharedContext.RequireMemberID(c)
	if !ok {
		return
	}

	applicantID, ok := handler.PathID(c)
	if !ok {
		return
	}

	var request ReferrerDecisionRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	err := h.applicationService.ReferrerDecide(c.Request.Context(), applicantID, actorID, &request)
	if err != nil {
		handler.Respond(c, err)
		return
	}

	c.JSON(200, gin.H{})
}

// AdminDecide handles POST /admin/applications/:id/decision
func (h *ApplicationHandler) AdminDecide(c *gin.Context) {
	actorID, ok := sharedContext.RequireMemberID(c)
	if !ok {
		return
	}

	applicantID, ok := handler.PathID(c)
	if !ok {
		return
	}

	var request AdminDecisionRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	err := h.applicationService.AdminDecide(c.Request.Context(), applicantID, actorID, &request)
	if err != nil {
		handler.Respond(c, err)
		return
	}

	c.JSON(200, gin.H{})
}

// Resubmit handles POST /applications/me/resubmit
func (h *ApplicationHandler) Resubmit(c *gin.Context) {
	memberID, ok := sharedContext.RequireMemberID(c)
	if !ok {
		return
	}

	var request ResubmitRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := h.applicationService.Resubmit(c.Request.Context(), memberID, &request)
	if err != nil {
		handler.Respond(c, err)
		return
	}

	c.JSON(200, response)
}

// Withdraw handles DELETE /applications/me
func (h *ApplicationHandler) Withdraw(c *gin.Context) {
	memberID, ok := sharedContext.RequireMemberID(c)
	if !ok {
		return
	}

	if err := h.applicationService.Withdraw(c.Request.Context(), memberID); err != nil {
		handler.Respond(c, err)
		return
	}

	c.JSON(200, gin.H{})
}

// List handles GET /admin/applications?status=
func (h *ApplicationHandler) List(c *gin.Context) {
	var status *model.RequestStatus
	if raw := c.Query("status"); raw != "" {
		s := model.RequestStatus(raw)
		switch s {
		case model.RequestPending, model.RequestApproved, model.RequestRejected:
			status = &s
		default:
			c.JSON(sharedError.ValidationFailed.Status, sharedError.ValidationFailed)
			return
		}
	}

	response, err := h.applicationService.List(c.Request.Context(), status)
	if err != nil {
		handler.Respond(c, err)
		return
	}

	c.JSON(200, response)
}
