package request

// CreateCustomerRequest represents a customer creation request
type CreateCustomerRequest struct {
	Name    string  `json:"name" binding:"required,min=1,max=255"`
	Address *string `json:"address"`
}

// UpdateCustomerRequest represents a customer update request
type UpdateCustomerRequest struct {
	Name    string  `json:"name"`
	Address *string `json:"address"`
}

// UpdateBalanceRequest represents a manual balance override. Exactly one of
// yene or dene must be present.
type UpdateBalanceRequest struct {
	Yene          *float64 `json:"yene"`
	Dene          *float64 `json:"dene"`
	AdvanceAmount *float64 `json:"advance_amount"`
}
