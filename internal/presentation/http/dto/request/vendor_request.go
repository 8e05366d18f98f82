package request

// CreateVendorRequest represents a vendor creation request (admin)
type CreateVendorRequest struct {
	Name         string  `json:"name" binding:"required,min=2,max=255"`
	BusinessName string  `json:"business_name" binding:"required,min=2,max=255"`
	Mobile       string  `json:"mobile" binding:"required,min=10,max=20"`
	Email        *string `json:"email" binding:"omitempty,email"`
	Address      *string `json:"address"`
	Password     string  `json:"password" binding:"required,min=8"`
	Status       string  `json:"status"`
}

// UpdateVendorRequest represents a vendor update request (admin)
type UpdateVendorRequest struct {
	Name         string  `json:"name"`
	BusinessName string  `json:"business_name"`
	Mobile       string  `json:"mobile"`
	Email        *string `json:"email" binding:"omitempty,email"`
	Address      *string `json:"address"`
	Status       string  `json:"status"`
}

// ResetVendorPasswordRequest represents an admin password reset for a vendor
type ResetVendorPasswordRequest struct {
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

// UpdateProfileRequest represents a vendor's own profile update
type UpdateProfileRequest struct {
	Name         string  `json:"name"`
	BusinessName string  `json:"business_name"`
	Email        *string `json:"email" binding:"omitempty,email"`
	Address      *string `json:"address"`
}
