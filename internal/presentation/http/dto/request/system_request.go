package request

// UpdateSystemStatusRequest represents the maintenance switch update
type UpdateSystemStatusRequest struct {
	Enabled *bool  `json:"enabled" binding:"required"`
	Reason  string `json:"reason"`
}
