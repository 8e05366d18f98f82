package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Receipt is the daily bookkeeping document for one customer. Raw game rows
// are stored as entered; every derived figure below GameRows is recomputed
// server-side from the rows before the record is persisted.
type Receipt struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	VendorID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"vendor_id"`
	CustomerID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"customer_id"`
	BusinessName    string          `gorm:"size:255" json:"business_name"`
	CustomerName    string          `gorm:"size:255;not null" json:"customer_name"`
	CustomerCompany string          `gorm:"size:255" json:"customer_company"`
	Date            string          `gorm:"size:10;not null;index" json:"date"` // YYYY-MM-DD
	Day             string          `gorm:"size:20" json:"day"`
	GameRows        GameRows        `gorm:"type:jsonb;serializer:json" json:"game_rows"`
	OpenCloseValues OpenCloseValues `gorm:"type:jsonb;serializer:json" json:"open_close_values"`

	// Adjustment inputs entered by the vendor
	PendingAmount float64 `json:"pending_amount"`
	AdvanceAmount float64 `json:"advance_amount"`
	CuttingAmount float64 `json:"cutting_amount"`
	Jama          float64 `json:"jama"`
	Chuk          float64 `json:"chuk"`
	IsChukEnabled bool    `json:"is_chuk_enabled"`

	// Derived totals, always recomputed from GameRows
	TotalIncome         float64 `json:"total_income"`
	Deduction           float64 `json:"deduction"`
	AfterDeduction      float64 `json:"after_deduction"`
	Payment             float64 `json:"payment"`
	RemainingBalance    float64 `json:"remaining_balance"`
	TotalDue            float64 `json:"total_due"`
	JamaTotal           float64 `json:"jama_total"`
	FinalTotalAfterChuk float64 `json:"final_total_after_chuk"`
	FinalTotal          float64 `json:"final_total"`

	// Per-category payment totals across all rows
	OFinalTotal       float64 `json:"o_final_total"`
	JodFinalTotal     float64 `json:"jod_final_total"`
	KoFinalTotal      float64 `json:"ko_final_total"`
	PanFinalTotal     float64 `json:"pan_final_total"`
	GunFinalTotal     float64 `json:"gun_final_total"`
	SpecialFinalTotal float64 `json:"special_final_total"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Vendor   Vendor   `gorm:"foreignKey:VendorID" json:"-"`
	Customer Customer `gorm:"foreignKey:CustomerID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new receipt
func (r *Receipt) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Receipt model
func (Receipt) TableName() string {
	return "receipts"
}

// PairValue is a two-sided game entry whose payable amount is val1 * val2.
// Both sides arrive as free text; a blank or non-numeric side counts as 0.
type PairValue struct {
	Val1 string `json:"val1"`
	Val2 string `json:"val2"`
	Type string `json:"type,omitempty"`
}

// GameRow is one line of a receipt as entered by the vendor. O, Jod and Ko
// hold shorthand arithmetic expressions ("10+20+5"); Income is a plain
// numeric field. Multiplier is present only for the multiplier game
// categories (8 or 9) and must match the row type.
type GameRow struct {
	ID         int64      `json:"id"`
	Type       string     `json:"type"`
	Income     string     `json:"income"`
	O          string     `json:"o"`
	Jod        string     `json:"jod"`
	Ko         string     `json:"ko"`
	Multiplier *float64   `json:"multiplier,omitempty"`
	Pan        *PairValue `json:"pan,omitempty"`
	Gun        *PairValue `json:"gun,omitempty"`
	Special    *PairValue `json:"special,omitempty"`
}

// GameRows is the jsonb column type for a receipt's row list
type GameRows []GameRow

// Scan implements the sql.Scanner interface for GameRows
func (g *GameRows) Scan(value interface{}) error {
	if value == nil {
		*g = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("failed to scan GameRows: unsupported type")
	}

	return json.Unmarshal(bytes, g)
}

// Value implements the driver.Valuer interface for GameRows
func (g GameRows) Value() (driver.Value, error) {
	return json.Marshal(g)
}

// OpenCloseValues carries the market open/close/jod digits shown on the
// receipt. They are informational only and never feed the totals.
type OpenCloseValues struct {
	Open  string `json:"open"`
	Close string `json:"close"`
	Jod   string `json:"jod"`
}

// Scan implements the sql.Scanner interface for OpenCloseValues
func (o *OpenCloseValues) Scan(value interface{}) error {
	if value == nil {
		*o = OpenCloseValues{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("failed to scan OpenCloseValues: unsupported type")
	}

	return json.Unmarshal(bytes, o)
}

// Value implements the driver.Valuer interface for OpenCloseValues
func (o OpenCloseValues) Value() (driver.Value, error) {
	return json.Marshal(o)
}
