package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/gamebook/gamebook-api/internal/application/service"
	"github.com/gamebook/gamebook-api/internal/presentation/http/dto/request"
	"github.com/gamebook/gamebook-api/internal/presentation/http/dto/response"
	"github.com/gamebook/gamebook-api/internal/presentation/http/middleware"
	"github.com/gamebook/gamebook-api/pkg/utils"
)

// ShortcutHandler handles the bulk income entry routes
type ShortcutHandler struct {
	shortcutService *service.ShortcutService
}

// NewShortcutHandler creates a new shortcut handler
func NewShortcutHandler(shortcutService *service.ShortcutService) *ShortcutHandler {
	return &ShortcutHandler{shortcutService: shortcutService}
}

// ApplyIncomes handles a bulk income submission
// @Summary Bulk Income Entry
// @Description Apply one income per customer onto their receipt for the date. Entries are independent; the response reports per-entry outcomes.
// @Tags shortcuts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.BulkIncomeRequest true "Bulk income data"
// @Success 200 {object} response.APIResponse
// @Router /shortcuts/incomes [post]
func (h *ShortcutHandler) ApplyIncomes(c *gin.Context) {
	var req request.BulkIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	entries := make([]service.IncomeEntry, 0, len(req.Entries))
	for _, e := range req.Entries {
		customerID, err := utils.ParseUUID(e.CustomerID)
		if err != nil {
			response.BadRequest(c, "Invalid customer ID in entries")
			return
		}
		entries = append(entries, service.IncomeEntry{
			CustomerID: customerID,
			GameType:   e.GameType,
			Income:     e.Income,
		})
	}

	result, err := h.shortcutService.ApplyIncomes(
		c.Request.Context(),
		middleware.GetSubjectID(c),
		middleware.GetSubjectName(c),
		&service.BulkIncomeInput{
			Date:    req.Date,
			Entries: entries,
		})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bulk income applied", result)
}
