package entity

import "github.com/google/uuid"

// Counter is a named monotonic sequence. Serials are handed out with a
// single atomic upsert-increment so concurrent callers never see the same
// value; a counter never goes backwards and values are never reused.
type Counter struct {
	Name  string `gorm:"size:255;primary_key" json:"name"`
	Value int64  `gorm:"not null;default:0" json:"value"`
}

// TableName returns the table name for the Counter model
func (Counter) TableName() string {
	return "counters"
}

// CustomerSrNoCounter returns the counter name holding a vendor's customer
// serial sequence
func CustomerSrNoCounter(vendorID uuid.UUID) string {
	return "customer_srno_" + vendorID.String()
}
