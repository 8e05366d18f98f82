package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gamebook/gamebook-api/internal/domain/enum"
)

// Vendor is the tenant of the system. Every customer, receipt and market
// record belongs to exactly one vendor.
type Vendor struct {
	ID           uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	Name         string            `gorm:"size:255;not null" json:"name"`
	BusinessName string            `gorm:"size:255;not null" json:"business_name"`
	Mobile       string            `gorm:"size:20;unique;not null" json:"mobile"`
	Email        *string           `gorm:"size:255" json:"email,omitempty"`
	Address      *string           `gorm:"type:text" json:"address,omitempty"`
	Password     string            `gorm:"size:255;not null" json:"-"`
	Status       enum.VendorStatus `gorm:"size:20;default:'pending';index" json:"status"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
	DeletedAt    gorm.DeletedAt    `gorm:"index" json:"-"`

	// Relationships
	Customers []Customer `gorm:"foreignKey:VendorID" json:"-"`
	Receipts  []Receipt  `gorm:"foreignKey:VendorID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new vendor
func (v *Vendor) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Vendor model
func (Vendor) TableName() string {
	return "vendors"
}
