package checklist

import (
	"github.com/daonswim/swim-club-api/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type ChecklistHandler struct {
	checklistService *ChecklistService
}

func NewChecklistHandler(checklistService *ChecklistService) *ChecklistHandler {
	return &ChecklistHandler{
		checklistService: checklistService,
	}
}

// ListActive handles GET /checklist (public, 가입 신청 폼에서 사용)
func (h *ChecklistHandler) ListActive(c *gin.Context) {
	response, err := h.checklistService.ListActive(c.Request.Context())
	if err != nil {
		handler.Respond(c, err)
		return
	}

	c.JSON(200, response)
}

// List handles GET /admin/checklist
func (h *ChecklistHandler) List(c *gin.Context) {
	response, err := h.checklistService.List(c.Request.Context())
	if err != nil {
		handler.Respond(c, err)
		return
	}

	c.JSON(200, response)
}

func (h *ChecklistHandler) Create(c *gin.Context) {
	var request CreateChecklistItemRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := h.checklistService.Create(c.Request.Context(), &request)
	if err != nil {
		handler.Respond(c, err)
		return
	}

	c.JSON(201, response)
}

func (h *ChecklistHandler) Update(c *gin.Context) {
	id, ok := handler.PathID(c)
	if !ok {
		return
	}

	var request UpdateChecklistItemRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := h.checklistService.Update(c.Request.Context(), id, &request)
	if err != nil {
		handler.Respond(c, err)
		return
	}

	c.JSON(200, response)
}

func (h *ChecklistHandler) Delete(c *gin.Context) {
	id, ok := handler.PathID(c)
	if !ok {
		return
	}

	if err := h.checklistService.Delete(c.Request.Context(), id); err != nil {
		handler.Respond(c, err)
		return
	}

	c.JSON(200, gin.H{})
}
