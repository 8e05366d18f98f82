package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/gamebook/gamebook-api/internal/application/service"
	"github.com/gamebook/gamebook-api/internal/presentation/http/dto/request"
	"github.com/gamebook/gamebook-api/internal/presentation/http/dto/response"
	"github.com/gamebook/gamebook-api/internal/presentation/http/middleware"
	"github.com/gamebook/gamebook-api/pkg/utils"
)

// CustomerHandler handles customer-related HTTP requests
type CustomerHandler struct {
	customerService *service.CustomerService
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerService *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// List handles listing the vendor's customers with their latest balances
// @Summary List Customers
// @Tags customers
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /customers [get]
func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.customerService.List(c.Request.Context(), middleware.GetSubjectID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customers retrieved successfully", customers)
}

// Create handles customer creation
// @Summary Create Customer
// @Tags customers
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.CreateCustomerRequest true "Customer data"
// @Success 201 {object} response.APIResponse
// @Router /customers [post]
func (h *CustomerHandler) Create(c *gin.Context) {
	var req request.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	customer, err := h.customerService.Create(c.Request.Context(), middleware.GetSubjectID(c), &service.CreateCustomerInput{
		Name:    req.Name,
		Address: req.Address,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Customer created successfully", customer)
}

// Update handles customer edits
func (h *CustomerHandler) Update(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	var req request.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	customer, err := h.customerService.Update(c.Request.Context(), id, &service.UpdateCustomerInput{
		Name:    req.Name,
		Address: req.Address,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer updated successfully", customer)
}

// Delete handles customer removal
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	if err := h.customerService.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer deleted successfully", nil)
}

// UpdateBalance handles a manual balance override for one customer
// @Summary Update Customer Balance
// @Description Set the customer's standing balance directly (yene or dene)
// @Tags customers
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Customer ID"
// @Param request body request.UpdateBalanceRequest true "Balance data"
// @Success 200 {object} response.APIResponse
// @Router /customers/{id}/balance [put]
func (h *CustomerHandler) UpdateBalance(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	var req request.UpdateBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	receipt, err := h.customerService.UpdateBalance(c.Request.Context(), middleware.GetSubjectID(c), id, &service.UpdateBalanceInput{
		Yene:          req.Yene,
		Dene:          req.Dene,
		AdvanceAmount: req.AdvanceAmount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Balance updated successfully", receipt)
}
