package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/gamebook/gamebook-api/internal/application/service"
	"github.com/gamebook/gamebook-api/internal/presentation/http/dto/request"
	"github.com/gamebook/gamebook-api/internal/presentation/http/dto/response"
	"github.com/gamebook/gamebook-api/internal/presentation/http/middleware"
	"github.com/gamebook/gamebook-api/pkg/utils"
)

// MarketHandler handles the intraday staging routes: per-company market
// details and the vendor-wide daily values
type MarketHandler struct {
	marketService *service.MarketService
}

// NewMarketHandler creates a new market handler
func NewMarketHandler(marketService *service.MarketService) *MarketHandler {
	return &MarketHandler{marketService: marketService}
}

// SaveDetails handles creating or overwriting a staging record
func (h *MarketHandler) SaveDetails(c *gin.Context) {
	var req request.SaveMarketDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	customerID, err := utils.ParseUUID(req.CustomerID)
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	details, err := h.marketService.SaveDetails(c.Request.Context(), middleware.GetSubjectID(c), &service.MarketDetailsInput{
		CustomerID:   customerID,
		CompanyName:  req.CompanyName,
		Date:         req.Date,
		OpenValue:    req.OpenValue,
		CloseValue:   req.CloseValue,
		JodValue:     req.JodValue,
		GameRowOpen:  req.GameRowOpen,
		GameRowClose: req.GameRowClose,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Market details saved successfully", details)
}

// ListDetails handles listing staging records. With customer_id it returns
// that customer's records (optionally narrowed by date); otherwise date is
// required and every record of the day comes back.
func (h *MarketHandler) ListDetails(c *gin.Context) {
	date := c.Query("date")

	if customerIDStr := c.Query("customer_id"); customerIDStr != "" {
		customerID, err := utils.ParseUUID(customerIDStr)
		if err != nil {
			response.BadRequest(c, "Invalid customer ID")
			return
		}
		details, err := h.marketService.ListDetailsByCustomer(c.Request.Context(), customerID, date)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, "Market details retrieved successfully", details)
		return
	}

	if date == "" {
		response.BadRequest(c, "date or customer_id query parameter is required")
		return
	}

	details, err := h.marketService.ListDetailsByDate(c.Request.Context(), date)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Market details retrieved successfully", details)
}

// GetDetails handles fetching the record for one customer+company+date tuple
func (h *MarketHandler) GetDetails(c *gin.Context) {
	customerID, err := utils.ParseUUID(c.Query("customer_id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}
	companyName := c.Query("company_name")
	date := c.Query("date")
	if companyName == "" || date == "" {
		response.BadRequest(c, "company_name and date query parameters are required")
		return
	}

	details, err := h.marketService.GetDetails(c.Request.Context(), customerID, companyName, date)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Market details retrieved successfully", details)
}

// DeleteDetails handles deleting one staging record by ID
func (h *MarketHandler) DeleteDetails(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid market details ID")
		return
	}

	if err := h.marketService.DeleteDetails(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Market details deleted successfully", nil)
}

// DeleteDetailsByQuery handles bulk staging deletes. With customer_id it
// removes the record for that customer+company+date tuple; otherwise it
// clears every record of the date.
func (h *MarketHandler) DeleteDetailsByQuery(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		response.BadRequest(c, "date query parameter is required")
		return
	}

	if customerIDStr := c.Query("customer_id"); customerIDStr != "" {
		customerID, err := utils.ParseUUID(customerIDStr)
		if err != nil {
			response.BadRequest(c, "Invalid customer ID")
			return
		}
		companyName := c.Query("company_name")
		if companyName == "" {
			response.BadRequest(c, "company_name query parameter is required")
			return
		}
		if err := h.marketService.DeleteDetailsByTuple(c.Request.Context(), customerID, companyName, date); err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, "Market details deleted successfully", nil)
		return
	}

	if err := h.marketService.DeleteDetailsByDate(c.Request.Context(), date); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Market details deleted successfully", nil)
}

// SaveDailyValues handles creating or overwriting the vendor's daily digits
func (h *MarketHandler) SaveDailyValues(c *gin.Context) {
	var req request.SaveDailyValuesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	values, err := h.marketService.SaveDailyValues(c.Request.Context(), middleware.GetSubjectID(c), &service.DailyValuesInput{
		Date:       req.Date,
		OpenValue:  req.OpenValue,
		CloseValue: req.CloseValue,
		JodValue:   req.JodValue,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Daily values saved successfully", values)
}

// GetDailyValues handles fetching the vendor's digits for one date
func (h *MarketHandler) GetDailyValues(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		response.BadRequest(c, "date query parameter is required")
		return
	}

	values, err := h.marketService.GetDailyValues(c.Request.Context(), date)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Daily values retrieved successfully", values)
}

// DeleteDailyValues handles removing the vendor's digits for one date
func (h *MarketHandler) DeleteDailyValues(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		response.BadRequest(c, "date query parameter is required")
		return
	}

	if err := h.marketService.DeleteDailyValues(c.Request.Context(), date); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Daily values deleted successfully", nil)
}
