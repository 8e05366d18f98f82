package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MarketDetails stages the per-company market digits and draft rows a vendor
// keys in during the day for one customer. One record per
// vendor+customer+company+date; re-posting the tuple overwrites it. Rows
// here never feed receipt totals.
type MarketDetails struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	VendorID    uuid.UUID `gorm:"type:uuid;not null;index:idx_market_tuple,unique" json:"vendor_id"`
	CustomerID  uuid.UUID `gorm:"type:uuid;not null;index:idx_market_tuple,unique" json:"customer_id"`
	CompanyName string    `gorm:"size:255;not null;index:idx_market_tuple,unique" json:"company_name"`
	Date        string    `gorm:"size:10;not null;index:idx_market_tuple,unique;index" json:"date"`

	OpenValue  string `gorm:"size:20" json:"open_value"`
	CloseValue string `gorm:"size:20" json:"close_value"`
	JodValue   string `gorm:"size:20" json:"jod_value"`

	GameRowOpen  *GameRow `gorm:"type:jsonb;serializer:json" json:"game_row_open,omitempty"`
	GameRowClose *GameRow `gorm:"type:jsonb;serializer:json" json:"game_row_close,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Vendor   Vendor   `gorm:"foreignKey:VendorID" json:"-"`
	Customer Customer `gorm:"foreignKey:CustomerID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new market details record
func (m *MarketDetails) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the MarketDetails model
func (MarketDetails) TableName() string {
	return "market_details"
}
