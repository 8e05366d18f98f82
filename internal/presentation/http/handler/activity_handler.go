package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gamebook/gamebook-api/internal/application/service"
	"github.com/gamebook/gamebook-api/internal/presentation/http/dto/response"
)

// ActivityHandler serves the vendor's activity feed
type ActivityHandler struct {
	activityService *service.ActivityService
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(activityService *service.ActivityService) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

// List handles listing recent activities
func (h *ActivityHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	activities, err := h.activityService.ListRecent(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Activities retrieved successfully", activities)
}
