package withdrawal

import (
	"github.com/daonswim/swim-club-api/internal/model"
	sharedContext "github.com/daonswim/swim-club-api/internal/shared/context"
	sharedError "github.com/daonswim/swim-club-api/internal/shared/error"
	"github.com/daonswim/swim-club-api/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type WithdrawalHandler struct {
	withdrawalService *WithdrawalService
}

func NewWithdrawalHandler(withdrawalService *WithdrawalService) *WithdrawalHandler {
	return &WithdrawalHandler{
		withdrawalService: withdrawalService,
	}
}

// Create handles POST /withdrawals
func (h *WithdrawalHandler) Create(c *gin.Context) {
	memberID, ok := sharedContext.RequireMemberID(c)
	if !ok {
		return
	}

	var request CreateWithdrawalRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := h.withdrawalService.Create(c.Request.Context(), memberID, &request)
	if err != nil {
		handler.Respond(c, err)
		return
	}

	c.JSON(201, response)
}

// ListMine handles GET /withdrawals/me
func (h *WithdrawalHandler) ListMine(c *gin.Context) {
	memberID, ok := sharedContext.RequireMemberID(c)
	if !ok {
		return
	}

	response, err := h.withdrawalService.ListMine(c.Request.Context(), memberID)
	if err != nil {
		handler.Respond(c, err)
		return
	}

	c.JSON(200, response)
}

// List handles GET /admin/withdrawals?status=
func (h *WithdrawalHandler) List(c *gin.Context) {
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

	response, err := h.withdrawalService.List(c.Request.Context(), status)
	if err != nil {
		handler.Respond(c, err)
		return
	}

	c.JSON(200, response)
}

// Decide handles POST /admin/withdrawals/:id/decision
func (h *WithdrawalHandler) Decide(c *gin.Context) {
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

	if err := h.withdrawalService.Decide(c.Request.Context(), requestID, actorID, &request); err != nil {
		handler.Respond(c, err)
		return
	}

	c.JSON(200, gin.H{})
}
