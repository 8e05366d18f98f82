package request

import "github.com/gamebook/gamebook-api/internal/domain/entity"

// SaveMarketDetailsRequest represents a per-company staging record.
// Re-posting the same customer+company+date overwrites the earlier record.
type SaveMarketDetailsRequest struct {
	CustomerID   string          `json:"customer_id" binding:"required,uuid"`
	CompanyName  string          `json:"company_name" binding:"required"`
	Date         string          `json:"date" binding:"required"`
	OpenValue    string          `json:"open_value"`
	CloseValue   string          `json:"close_value"`
	JodValue     string          `json:"jod_value"`
	GameRowOpen  *entity.GameRow `json:"game_row_open"`
	GameRowClose *entity.GameRow `json:"game_row_close"`
}

// SaveDailyValuesRequest represents the vendor-wide digits for one date
type SaveDailyValuesRequest struct {
	Date       string `json:"date" binding:"required"`
	OpenValue  string `json:"open_value"`
	CloseValue string `json:"close_value"`
	JodValue   string `json:"jod_value"`
}
