package request

import "github.com/gamebook/gamebook-api/internal/domain/entity"

// CreateReceiptRequest represents a receipt submission. Any derived totals
// the client computed are ignored; only rows and adjustment inputs are read.
type CreateReceiptRequest struct {
	CustomerID      string                 `json:"customer_id" binding:"required,uuid"`
	CustomerCompany string                 `json:"customer_company"`
	Date            string                 `json:"date" binding:"required"`
	GameRows        []entity.GameRow       `json:"game_rows"`
	OpenCloseValues entity.OpenCloseValues `json:"open_close_values"`
	PendingAmount   float64                `json:"pending_amount"`
	AdvanceAmount   float64                `json:"advance_amount"`
	CuttingAmount   float64                `json:"cutting_amount"`
	Jama            float64                `json:"jama"`
	Chuk            float64                `json:"chuk"`
	IsChukEnabled   bool                   `json:"is_chuk_enabled"`
}

// UpdateReceiptRequest represents a receipt update
type UpdateReceiptRequest struct {
	CustomerCompany string                 `json:"customer_company"`
	Date            string                 `json:"date"`
	GameRows        []entity.GameRow       `json:"game_rows"`
	OpenCloseValues entity.OpenCloseValues `json:"open_close_values"`
	PendingAmount   float64                `json:"pending_amount"`
	AdvanceAmount   float64                `json:"advance_amount"`
	CuttingAmount   float64                `json:"cutting_amount"`
	Jama            float64                `json:"jama"`
	Chuk            float64                `json:"chuk"`
	IsChukEnabled   bool                   `json:"is_chuk_enabled"`
}
