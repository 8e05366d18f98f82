package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer represents a player account kept by a vendor. SrNo is a
// vendor-scoped running serial assigned from the counters table and is
// never reused, even after deletes.
type Customer struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	VendorID  uuid.UUID      `gorm:"type:uuid;not null;index:idx_customers_vendor_srno,unique" json:"vendor_id"`
	SrNo      int64          `gorm:"not null;index:idx_customers_vendor_srno,unique" json:"sr_no"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Address   *string        `gorm:"type:text" json:"address,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Vendor   Vendor    `gorm:"foreignKey:VendorID" json:"-"`
	Receipts []Receipt `gorm:"foreignKey:CustomerID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new customer
func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}
