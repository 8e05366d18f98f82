package handler

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gamebook/gamebook-api/internal/application/service"
	"github.com/gamebook/gamebook-api/internal/presentation/http/dto/response"
	"github.com/gamebook/gamebook-api/internal/presentation/http/middleware"
)

// ReportHandler handles the vendor analytics routes
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Summary handles the weekly/monthly/yearly summary. The period comes from
// the last path segment.
// @Summary Period Summary
// @Tags reports
// @Security BearerAuth
// @Produce json
// @Param period path string true "weekly, monthly or yearly"
// @Success 200 {object} response.APIResponse
// @Router /reports/summary/{period} [get]
func (h *ReportHandler) Summary(c *gin.Context) {
	period := strings.ToLower(c.Param("period"))

	summary, err := h.reportService.Summary(c.Request.Context(), middleware.GetSubjectID(c), period)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Summary retrieved successfully", summary)
}

// MonthlyTrends handles the per-month trends report
func (h *ReportHandler) MonthlyTrends(c *gin.Context) {
	months, _ := strconv.Atoi(c.DefaultQuery("months", "12"))

	trends, err := h.reportService.MonthlyTrends(c.Request.Context(), middleware.GetSubjectID(c), months)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Monthly trends retrieved successfully", trends)
}

// TopCustomers handles the highest-income customers report
func (h *ReportHandler) TopCustomers(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	customers, err := h.reportService.TopCustomers(c.Request.Context(), middleware.GetSubjectID(c), limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Top customers retrieved successfully", customers)
}

// IncomeByGameType handles the per-game-type income breakdown
func (h *ReportHandler) IncomeByGameType(c *gin.Context) {
	breakdown, err := h.reportService.IncomeByGameType(c.Request.Context(), middleware.GetSubjectID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Income by game type retrieved successfully", breakdown)
}

// PaymentStats handles the payment statistics report
func (h *ReportHandler) PaymentStats(c *gin.Context) {
	stats, err := h.reportService.PaymentStats(c.Request.Context(), middleware.GetSubjectID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment stats retrieved successfully", stats)
}

// AllBalances handles the every-customer balance listing
func (h *ReportHandler) AllBalances(c *gin.Context) {
	balances, err := h.reportService.CustomerBalances(c.Request.Context(), middleware.GetSubjectID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer balances retrieved successfully", balances)
}
