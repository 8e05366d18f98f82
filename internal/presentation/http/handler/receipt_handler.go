package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/gamebook/gamebook-api/internal/application/service"
	"github.com/gamebook/gamebook-api/internal/presentation/http/dto/request"
	"github.com/gamebook/gamebook-api/internal/presentation/http/dto/response"
	"github.com/gamebook/gamebook-api/internal/presentation/http/middleware"
	"github.com/gamebook/gamebook-api/pkg/utils"
)

// ReceiptHandler handles receipt HTTP requests
type ReceiptHandler struct {
	receiptService *service.ReceiptService
}

// NewReceiptHandler creates a new receipt handler
func NewReceiptHandler(receiptService *service.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{receiptService: receiptService}
}

// Create handles receipt creation
// @Summary Create Receipt
// @Description Record a receipt; all totals are recomputed server-side from the rows
// @Tags receipts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param Idempotency-Key header string true "Idempotency key"
// @Param request body request.CreateReceiptRequest true "Receipt data"
// @Success 201 {object} response.APIResponse
// @Router /receipts [post]
func (h *ReceiptHandler) Create(c *gin.Context) {
	var req request.CreateReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	customerID, err := utils.ParseUUID(req.CustomerID)
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	receipt, err := h.receiptService.Create(
		c.Request.Context(),
		middleware.GetSubjectID(c),
		middleware.GetSubjectName(c),
		&service.ReceiptInput{
			CustomerID:      customerID,
			CustomerCompany: req.CustomerCompany,
			Date:            req.Date,
			GameRows:        req.GameRows,
			OpenCloseValues: req.OpenCloseValues,
			PendingAmount:   req.PendingAmount,
			AdvanceAmount:   req.AdvanceAmount,
			CuttingAmount:   req.CuttingAmount,
			Jama:            req.Jama,
			Chuk:            req.Chuk,
			IsChukEnabled:   req.IsChukEnabled,
		})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Receipt created successfully", receipt)
}

// List handles paginated receipt listing, newest first
func (h *ReceiptHandler) List(c *gin.Context) {
	params := parsePagination(c)

	result, err := h.receiptService.List(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Receipts retrieved successfully", result)
}

// Get handles fetching one receipt
func (h *ReceiptHandler) Get(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid receipt ID")
		return
	}

	receipt, err := h.receiptService.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt retrieved successfully", receipt)
}

// Update handles receipt edits; totals are recomputed from the new rows
func (h *ReceiptHandler) Update(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid receipt ID")
		return
	}

	var req request.UpdateReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	receipt, err := h.receiptService.Update(c.Request.Context(), id, &service.ReceiptInput{
		CustomerCompany: req.CustomerCompany,
		Date:            req.Date,
		GameRows:        req.GameRows,
		OpenCloseValues: req.OpenCloseValues,
		PendingAmount:   req.PendingAmount,
		AdvanceAmount:   req.AdvanceAmount,
		CuttingAmount:   req.CuttingAmount,
		Jama:            req.Jama,
		Chuk:            req.Chuk,
		IsChukEnabled:   req.IsChukEnabled,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt updated successfully", receipt)
}

// Delete handles receipt removal
func (h *ReceiptHandler) Delete(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid receipt ID")
		return
	}

	if err := h.receiptService.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt deleted successfully", nil)
}

// DailyTotals handles the per-company totals for one date
// @Summary Daily Totals
// @Description Per-company income and payment totals for one date
// @Tags receipts
// @Security BearerAuth
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} response.APIResponse
// @Router /receipts/daily-totals [get]
func (h *ReceiptHandler) DailyTotals(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		response.BadRequest(c, "date query parameter is required")
		return
	}

	result, err := h.receiptService.DailyTotals(c.Request.Context(), date)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Daily totals retrieved successfully", result)
}
