package statuschange

import (
	"github.com/daonswim/swim-club-api/internal/model"
	sharedContext "github.com/daonswim/swim-club-api/internal/shared/context"
	sharedError "github.com/daonswim/swim-club-api/internal/shared/error"
	"github.com/daonswim/swim-club-api/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type StatusChangeHandler struct {
	statusChangeService *StatusChangeService
}

func NewStatusChangeHandler(statusChangeService *StatusChangeService) *StatusChangeHandler {
	return &StatusChangeHandler{
		statusChangeService: statusChangeService,
	}
}

// Create handles POST /status-changes
func (h *StatusChangeHandler) Create(c *gin.Context) {
	memberID, ok := sharedContext.RequireMemberID(c)
	if !ok {
		return
	}

	var request CreateStatusChangeRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := h.statusChangeService.Create(c.Request.Context(), memberID, &request)
	if err != nil {
		handler.Respond(c, err)
		return
	}

	c.JSON(201, response)
}

// ListMine handles GET /status-changes/me
func (h *StatusChangeHandler) ListMine(c *gin.Context) {
	memberID, ok := sharedContext.RequireMemberID(c)
	if !ok {
		return
	}

	response, err := h.statusChangeService.ListMine(c.Request.Context(), memberID)
	if err != nil {
		handler.Respond(c, err)
		return
	}

	c.JSON(200, response)
}

// List handles GET /admin/status-changes?status=
func (h *StatusChangeHandler) List(c *gin.Context) {
	status, ok := queryStatus(c)
	if !ok {
		return
	}

	response, err := h.statusChangeService.List(c.Request.Context(), status)
	if err != nil {
		handler.Respond(c, err)
		return
	}

	c.JSON(200, response)
}

// Decide handles POST /admin/status-changes/:id/decision
func (h *StatusChangeHandler) Decide(c *gin.Context) {
	actorID, ok := sharedContext.RequireMemberID(c)
	if !ok {
		return
	}

	requestID, ok := handler.PathID(c)
	if !ok {
		return
	}

	var request DecisionRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	if err := h.statusChangeService.Decide(c.Request.Context(), requestID, actorID, &request); err != nil {
		handler.Respond(c, err)
		return
	}

	c.JSON(200, gin.H{})
}

func queryStatus(c *gin.Context) (*model.RequestStatus, bool) {
	raw := c.Query("status")
	if raw == "" {
		return nil, true
	}

	s := model.RequestStatus(raw)
	switch s {
	case model.RequestPending, model.RequestApproved, model.RequestRejected:
		return &s, true
	default:
		c.JSON(sharedError.ValidationFailed.Status, sharedError.ValidationFailed)
		return nil, false
	}
}
