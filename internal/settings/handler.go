package settings

import (
	sharedContext "github.com/daonswim/swim-club-api/internal/shared/context"
	"github.com/daonswim/swim-club-api/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	settingsService *SettingsService
}

func NewSettingsHandler(settingsService *SettingsService) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
	}
}

func (h *SettingsHandler) Get(c *gin.Context) {
	response, err := h.settingsService.Get(c.Request.Context())
	if err != nil {
		handler.Respond(c, err)
		return
	}

	c.JSON(200, response)
}

func (h *SettingsHandler) Update(c *gin.Context) {
	actorID, ok := sharedContext.RequireMemberID(c)
	if !ok {
		return
	}

	var request UpdateSettingsRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := h.settingsService.Update(c.Request.Context(), actorID, &request)
	if err != nil {
		handler.Respond(c, err)
		return
	}

	c.JSON(200, response)
}

func (h *SettingsHandler) Occupancy(c *gin.Context) {
	response, err := h.settingsService.Occupancy(c.Request.Context())
	if err != nil {
		handler.Respond(c, err)
		return
	}

	c.JSON(200, response)
}
