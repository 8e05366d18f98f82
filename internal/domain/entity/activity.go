package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gamebook/gamebook-api/internal/domain/enum"
)

// Activity is one entry in a vendor's audit feed
type Activity struct {
	ID          uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	VendorID    uuid.UUID         `gorm:"type:uuid;not null;index" json:"vendor_id"`
	Type        enum.ActivityType `gorm:"size:50;not null" json:"type"`
	Description string            `gorm:"type:text;not null" json:"description"`
	CreatedAt   time.Time         `gorm:"index" json:"created_at"`

	// Relationships
	Vendor Vendor `gorm:"foreignKey:VendorID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new activity
func (a *Activity) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Activity model
func (Activity) TableName() string {
	return "activities"
}
