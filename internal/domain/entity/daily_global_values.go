package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DailyGlobalValues holds a vendor's market-wide open/close/jod digits for
// one date. One record per vendor+date, overwritten on re-post.
type DailyGlobalValues struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	VendorID uuid.UUID `gorm:"type:uuid;not null;index:idx_daily_values_vendor_date,unique" json:"vendor_id"`
	Date     string    `gorm:"size:10;not null;index:idx_daily_values_vendor_date,unique" json:"date"`

	OpenValue  string `gorm:"size:20" json:"open_value"`
	CloseValue string `gorm:"size:20" json:"close_value"`
	JodValue   string `gorm:"size:20" json:"jod_value"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Vendor Vendor `gorm:"foreignKey:VendorID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new record
func (d *DailyGlobalValues) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the DailyGlobalValues model
func (DailyGlobalValues) TableName() string {
	return "daily_global_values"
}
