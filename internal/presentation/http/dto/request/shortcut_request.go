package request

// IncomeEntryRequest is one customer's income line in a bulk submission
type IncomeEntryRequest struct {
	CustomerID string `json:"customer_id" binding:"required,uuid"`
	GameType   string `json:"game_type" binding:"required"`
	Income     string `json:"income" binding:"required"`
}

// BulkIncomeRequest represents the shortcut bulk income submission
type BulkIncomeRequest struct {
	Date    string               `json:"date" binding:"required"`
	Entries []IncomeEntryRequest `json:"entries" binding:"required,min=1,dive"`
}
