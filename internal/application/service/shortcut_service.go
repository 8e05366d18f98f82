package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gamebook/gamebook-api/internal/domain/calc"
	"github.com/gamebook/gamebook-api/internal/domain/entity"
	"github.com/gamebook/gamebook-api/internal/domain/repository"
	"github.com/gamebook/gamebook-api/pkg/apperror"
)

// ShortcutService applies bulk income entries across many customers in one
// call. Each entry lands on the customer's receipt for the date, creating
// one when needed. Entries are applied independently; a failed entry never
// rolls back the ones already written.
type ShortcutService struct {
	receiptRepo  repository.ReceiptRepository
	customerRepo repository.CustomerRepository
	logger       *zap.Logger
}

// NewShortcutService creates a new shortcut service
func NewShortcutService(
	receiptRepo repository.ReceiptRepository,
	customerRepo repository.CustomerRepository,
	logger *zap.Logger,
) *ShortcutService {
	return &ShortcutService{
		receiptRepo:  receiptRepo,
		customerRepo: customerRepo,
		logger:       logger,
	}
}

// IncomeEntry is one customer's income for a multiplier game type
type IncomeEntry struct {
	CustomerID uuid.UUID
	GameType   string
	Income     string
}

// BulkIncomeInput represents the bulk income submission
type BulkIncomeInput struct {
	Date    string
	Entries []IncomeEntry
}

// EntryResult reports the outcome of one entry
type EntryResult struct {
	CustomerID uuid.UUID  `json:"customer_id"`
	ReceiptID  *uuid.UUID `json:"receipt_id,omitempty"`
	Created    bool       `json:"created"`
	Error      string     `json:"error,omitempty"`
}

// BulkIncomeResult summarizes a bulk income run
type BulkIncomeResult struct {
	Date    string        `json:"date"`
	Applied int           `json:"applied"`
	Failed  int           `json:"failed"`
	Results []EntryResult `json:"results"`
}

// ApplyIncomes writes one income row per entry onto each customer's receipt
// for the date. An existing row of the same game type is overwritten rather
// than duplicated, and the receipt's totals are recomputed from its rows.
func (s *ShortcutService) ApplyIncomes(ctx context.Context, vendorID uuid.UUID, businessName string, input *BulkIncomeInput) (*BulkIncomeResult, error) {
	date, err := parseDate(input.Date)
	if err != nil {
		return nil, err
	}
	if len(input.Entries) == 0 {
		return nil, apperror.NewBadRequestError("At least one entry is required")
	}

	result := &BulkIncomeResult{Date: input.Date}
	for _, entry := range input.Entries {
		r := s.applyEntry(ctx, vendorID, businessName, input.Date, date, entry)
		if r.Error == "" {
			result.Applied++
		} else {
			result.Failed++
		}
		result.Results = append(result.Results, r)
	}

	if result.Failed > 0 {
		s.logger.Warn("bulk income run had failures",
			zap.String("date", input.Date),
			zap.Int("applied", result.Applied),
			zap.Int("failed", result.Failed))
	}

	return result, nil
}

func (s *ShortcutService) applyEntry(ctx context.Context, vendorID uuid.UUID, businessName, dateStr string, date time.Time, entry IncomeEntry) EntryResult {
	result := EntryResult{CustomerID: entry.CustomerID}

	if calc.MultiplierFor(entry.GameType) == nil {
		result.Error = fmt.Sprintf("game type %q does not support shortcut entry", entry.GameType)
		return result
	}

	customer, err := s.customerRepo.GetByID(ctx, entry.CustomerID)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	if customer == nil {
		result.Error = "customer not found"
		return result
	}

	receipt, err := s.receiptRepo.GetByCustomerAndDate(ctx, customer.ID, dateStr)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	isNew := receipt == nil
	if isNew {
		receipt = &entity.Receipt{
			VendorID:     vendorID,
			CustomerID:   customer.ID,
			BusinessName: businessName,
			CustomerName: customer.Name,
			Date:         dateStr,
			Day:          date.Weekday().String(),
		}
	}

	setIncomeRow(receipt, entry.GameType, entry.Income)
	calc.Recalculate(receipt)

	if isNew {
		err = s.receiptRepo.Create(ctx, receipt)
	} else {
		err = s.receiptRepo.Update(ctx, receipt)
	}
	if err != nil {
		result.Error = err.Error()
		return result
	}

	result.ReceiptID = &receipt.ID
	result.Created = isNew
	return result
}

// setIncomeRow overwrites the income of the receipt's row for the game type,
// appending a fresh row when the receipt has none of that type yet.
func setIncomeRow(receipt *entity.Receipt, gameType, income string) {
	for i := range receipt.GameRows {
		if receipt.GameRows[i].Type == gameType {
			receipt.GameRows[i].Income = income
			receipt.GameRows[i].Multiplier = calc.MultiplierFor(gameType)
			return
		}
	}

	var nextID int64 = 1
	for _, row := range receipt.GameRows {
		if row.ID >= nextID {
			nextID = row.ID + 1
		}
	}
	receipt.GameRows = append(receipt.GameRows, entity.GameRow{
		ID:         nextID,
		Type:       gameType,
		Income:     income,
		Multiplier: calc.MultiplierFor(gameType),
	})
}
