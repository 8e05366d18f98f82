package repository

import (
	"context"

	"github.com/google/uuid"
)

// PeriodSummaryResult aggregates receipts over a date window
type PeriodSummaryResult struct {
	TotalIncome  float64
	TotalPayment float64
	ReceiptCount int64
}

// MonthlyTrendResult is one month of the trends report
type MonthlyTrendResult struct {
	Month        string // YYYY-MM
	TotalIncome  float64
	TotalPayment float64
	ReceiptCount int64
}

// TopCustomerResult represents a customer's income contribution
type TopCustomerResult struct {
	CustomerID   uuid.UUID
	CustomerName string
	TotalIncome  float64
	ReceiptCount int64
}

// PaymentStatsResult aggregates payment figures across all receipts
type PaymentStatsResult struct {
	TotalPayment   float64
	AveragePayment float64
	MaxPayment     float64
	ReceiptCount   int64
}

// CustomerBalanceResult carries the standing balance of one customer taken
// from their most recent receipt
type CustomerBalanceResult struct {
	CustomerID    uuid.UUID
	CustomerName  string
	SrNo          int64
	Date          string
	Balance       float64 // finalTotalAfterChuk of the latest receipt
	AdvanceAmount float64
}

// ReportRepository defines interface for reporting/aggregation queries.
// Callers pass the vendor explicitly; these run raw SQL outside the scoped
// query path.
type ReportRepository interface {
	// PeriodSummary aggregates income and payment between two dates
	// (YYYY-MM-DD, inclusive)
	PeriodSummary(ctx context.Context, vendorID uuid.UUID, from, to string) (*PeriodSummaryResult, error)

	// MonthlyTrends returns per-month aggregates for the last N months
	MonthlyTrends(ctx context.Context, vendorID uuid.UUID, months int) ([]MonthlyTrendResult, error)

	// TopCustomers returns the highest-income customers
	TopCustomers(ctx context.Context, vendorID uuid.UUID, limit int) ([]TopCustomerResult, error)

	// PaymentStats aggregates payment figures across the vendor's receipts
	PaymentStats(ctx context.Context, vendorID uuid.UUID) (*PaymentStatsResult, error)

	// CustomerBalances returns each customer's latest-receipt balance
	CustomerBalances(ctx context.Context, vendorID uuid.UUID) ([]CustomerBalanceResult, error)
}
