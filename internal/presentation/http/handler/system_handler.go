package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/gamebook/gamebook-api/internal/application/service"
	"github.com/gamebook/gamebook-api/internal/presentation/http/dto/request"
	"github.com/gamebook/gamebook-api/internal/presentation/http/dto/response"
)

// SystemHandler exposes the maintenance switch to admins
type SystemHandler struct {
	systemService *service.SystemService
}

// NewSystemHandler creates a new system handler
func NewSystemHandler(systemService *service.SystemService) *SystemHandler {
	return &SystemHandler{systemService: systemService}
}

// GetStatus handles fetching the maintenance state
func (h *SystemHandler) GetStatus(c *gin.Context) {
	status, err := h.systemService.GetStatus(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "System status retrieved successfully", status)
}

// UpdateStatus handles flipping the maintenance switch
func (h *SystemHandler) UpdateStatus(c *gin.Context) {
	var req request.UpdateSystemStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	status, err := h.systemService.SetStatus(c.Request.Context(), *req.Enabled, req.Reason)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "System status updated successfully", status)
}
