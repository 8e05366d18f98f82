package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/gamebook/gamebook-api/internal/application/service"
	"github.com/gamebook/gamebook-api/internal/domain/enum"
	"github.com/gamebook/gamebook-api/internal/presentation/http/dto/request"
	"github.com/gamebook/gamebook-api/internal/presentation/http/dto/response"
	"github.com/gamebook/gamebook-api/internal/presentation/http/middleware"
	"github.com/gamebook/gamebook-api/pkg/utils"
)

// VendorHandler handles vendor account HTTP requests, both the admin
// management routes and the vendor's own profile routes
type VendorHandler struct {
	vendorService *service.VendorService
}

// NewVendorHandler creates a new vendor handler
func NewVendorHandler(vendorService *service.VendorService) *VendorHandler {
	return &VendorHandler{vendorService: vendorService}
}

// Create handles vendor creation (admin)
// @Summary Create Vendor
// @Tags admin-vendors
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.CreateVendorRequest true "Vendor data"
// @Success 201 {object} response.APIResponse
// @Router /admin/vendors [post]
func (h *VendorHandler) Create(c *gin.Context) {
	var req request.CreateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	vendor, err := h.vendorService.CreateVendor(c.Request.Context(), &service.CreateVendorInput{
		Name:         req.Name,
		BusinessName: req.BusinessName,
		Mobile:       req.Mobile,
		Email:        req.Email,
		Address:      req.Address,
		Password:     req.Password,
		Status:       enum.VendorStatus(req.Status),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Vendor created successfully", vendor)
}

// List handles vendor listing (admin)
// @Summary List Vendors
// @Tags admin-vendors
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Param search query string false "Search by name, business or mobile"
// @Param status query string false "Filter by status"
// @Success 200 {object} response.APIResponse
// @Router /admin/vendors [get]
func (h *VendorHandler) List(c *gin.Context) {
	params := parsePagination(c)
	search := c.Query("search")
	status := enum.VendorStatus(c.Query("status"))

	result, err := h.vendorService.ListVendors(c.Request.Context(), params, search, status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Vendors retrieved successfully", result)
}

// Get handles fetching one vendor (admin)
func (h *VendorHandler) Get(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid vendor ID")
		return
	}

	vendor, err := h.vendorService.GetVendor(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Vendor retrieved successfully", vendor)
}

// Update handles vendor updates including status changes (admin)
func (h *VendorHandler) Update(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid vendor ID")
		return
	}

	var req request.UpdateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	vendor, err := h.vendorService.UpdateVendor(c.Request.Context(), id, &service.UpdateVendorInput{
		Name:         req.Name,
		BusinessName: req.BusinessName,
		Mobile:       req.Mobile,
		Email:        req.Email,
		Address:      req.Address,
		Status:       enum.VendorStatus(req.Status),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Vendor updated successfully", vendor)
}

// Delete handles vendor removal (admin)
func (h *VendorHandler) Delete(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid vendor ID")
		return
	}

	if err := h.vendorService.DeleteVendor(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Vendor deleted successfully", nil)
}

// ResetPassword handles an admin resetting a vendor's password
func (h *VendorHandler) ResetPassword(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid vendor ID")
		return
	}

	var req request.ResetVendorPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.vendorService.ResetVendorPassword(c.Request.Context(), id, req.NewPassword); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Password reset successfully", nil)
}

// Me handles fetching the authenticated vendor's own profile
// @Summary Get Own Profile
// @Tags vendors
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /vendors/me [get]
func (h *VendorHandler) Me(c *gin.Context) {
	vendor, err := h.vendorService.GetVendor(c.Request.Context(), middleware.GetSubjectID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Profile retrieved successfully", vendor)
}

// UpdateMe handles the vendor updating their own profile
func (h *VendorHandler) UpdateMe(c *gin.Context) {
	var req request.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	vendor, err := h.vendorService.UpdateProfile(c.Request.Context(), middleware.GetSubjectID(c), &service.UpdateProfileInput{
		Name:         req.Name,
		BusinessName: req.BusinessName,
		Email:        req.Email,
		Address:      req.Address,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Profile updated successfully", vendor)
}
