package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gamebook/gamebook-api/internal/domain/calc"
	"github.com/gamebook/gamebook-api/internal/domain/repository"
	"github.com/gamebook/gamebook-api/pkg/apperror"
)

// ReportService answers the vendor's analytics queries. Aggregates over the
// stored numeric columns run in SQL; the per-game-type breakdown walks the
// raw rows in Go because income values are free text.
type ReportService struct {
	reportRepo  repository.ReportRepository
	receiptRepo repository.ReceiptRepository
	logger      *zap.Logger
}

// NewReportService creates a new report service
func NewReportService(
	reportRepo repository.ReportRepository,
	receiptRepo repository.ReceiptRepository,
	logger *zap.Logger,
) *ReportService {
	return &ReportService{
		reportRepo:  reportRepo,
		receiptRepo: receiptRepo,
		logger:      logger,
	}
}

// PeriodSummary is a summary of receipts over one reporting window
type PeriodSummary struct {
	Period       string  `json:"period"`
	From         string  `json:"from"`
	To           string  `json:"to"`
	TotalIncome  float64 `json:"total_income"`
	TotalPayment float64 `json:"total_payment"`
	ReceiptCount int64   `json:"receipt_count"`
}

// Summary aggregates the vendor's receipts for a named period: "weekly"
// covers the last 7 days, "monthly" the current calendar month and "yearly"
// the current calendar year, all ending today.
func (s *ReportService) Summary(ctx context.Context, vendorID uuid.UUID, period string) (*PeriodSummary, error) {
	now := time.Now()
	to := now.Format(dateLayout)

	var from string
	switch period {
	case "weekly":
		from = now.AddDate(0, 0, -6).Format(dateLayout)
	case "monthly":
		from = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).Format(dateLayout)
	case "yearly":
		from = time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location()).Format(dateLayout)
	default:
		return nil, apperror.NewBadRequestError("Period must be weekly, monthly or yearly")
	}

	agg, err := s.reportRepo.PeriodSummary(ctx, vendorID, from, to)
	if err != nil {
		return nil, err
	}

	return &PeriodSummary{
		Period:       period,
		From:         from,
		To:           to,
		TotalIncome:  agg.TotalIncome,
		TotalPayment: agg.TotalPayment,
		ReceiptCount: agg.ReceiptCount,
	}, nil
}

// MonthlyTrends returns per-month income and payment for the last N months
// (12 when months is out of range)
func (s *ReportService) MonthlyTrends(ctx context.Context, vendorID uuid.UUID, months int) ([]repository.MonthlyTrendResult, error) {
	if months <= 0 || months > 36 {
		months = 12
	}
	return s.reportRepo.MonthlyTrends(ctx, vendorID, months)
}

// TopCustomers returns the highest-income customers (10 when limit is out of
// range)
func (s *ReportService) TopCustomers(ctx context.Context, vendorID uuid.UUID, limit int) ([]repository.TopCustomerResult, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	return s.reportRepo.TopCustomers(ctx, vendorID, limit)
}

// PaymentStats aggregates payment figures across the vendor's receipts
func (s *ReportService) PaymentStats(ctx context.Context, vendorID uuid.UUID) (*repository.PaymentStatsResult, error) {
	return s.reportRepo.PaymentStats(ctx, vendorID)
}

// CustomerBalances returns every customer's latest-receipt balance
func (s *ReportService) CustomerBalances(ctx context.Context, vendorID uuid.UUID) ([]repository.CustomerBalanceResult, error) {
	return s.reportRepo.CustomerBalances(ctx, vendorID)
}

// GameTypeIncome is one game type's share of income
type GameTypeIncome struct {
	GameType    string  `json:"game_type"`
	TotalIncome float64 `json:"total_income"`
	RowCount    int64   `json:"row_count"`
}

// IncomeByGameType sums the income of every game row over the trailing
// twelve months, grouped by row type. Income fields are entered as free
// text, so each one goes through the calculator's numeric parse and rows
// that do not parse count as zero.
func (s *ReportService) IncomeByGameType(ctx context.Context, vendorID uuid.UUID) ([]GameTypeIncome, error) {
	now := time.Now()
	from := now.AddDate(-1, 0, 0).Format(dateLayout)
	to := now.Format(dateLayout)

	receipts, err := s.receiptRepo.ListBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}

	byType := make(map[string]*GameTypeIncome)
	var order []string
	for _, r := range receipts {
		for _, row := range r.GameRows {
			agg, ok := byType[row.Type]
			if !ok {
				agg = &GameTypeIncome{GameType: row.Type}
				byType[row.Type] = agg
				order = append(order, row.Type)
			}
			agg.TotalIncome += calc.Number(row.Income)
			agg.RowCount++
		}
	}

	result := make([]GameTypeIncome, 0, len(order))
	for _, t := range order {
		result = append(result, *byType[t])
	}
	return result, nil
}
