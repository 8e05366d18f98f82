package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SystemStatus is the single-row maintenance switch. When Enabled is false
// every authenticated route answers 503 with the stored reason; only login,
// health and the admin status routes stay reachable.
type SystemStatus struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Enabled   bool      `gorm:"not null;default:true" json:"enabled"`
	Reason    string    `gorm:"type:text" json:"reason"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating the status row
func (s *SystemStatus) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SystemStatus model
func (SystemStatus) TableName() string {
	return "system_status"
}
