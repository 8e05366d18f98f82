package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domainRepo "github.com/gamebook/gamebook-api/internal/domain/repository"
)

type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *gorm.DB) domainRepo.ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) PeriodSummary(ctx context.Context, vendorID uuid.UUID, from, to string) (*domainRepo.PeriodSummaryResult, error) {
	var result domainRepo.PeriodSummaryResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(SUM(total_income), 0) as total_income,
			COALESCE(SUM(payment), 0) as total_payment,
			COUNT(*) as receipt_count
		FROM receipts
		WHERE vendor_id = ? AND deleted_at IS NULL
		AND date >= ? AND date <= ?
	`, vendorID, from, to).Scan(&result).Error

	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *reportRepository) MonthlyTrends(ctx context.Context, vendorID uuid.UUID, months int) ([]domainRepo.MonthlyTrendResult, error) {
	var results []domainRepo.MonthlyTrendResult

	now := time.Now()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).
		AddDate(0, -(months - 1), 0).
		Format("2006-01-02")

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			substring(date from 1 for 7) as month,
			COALESCE(SUM(total_income), 0) as total_income,
			COALESCE(SUM(payment), 0) as total_payment,
			COUNT(*) as receipt_count
		FROM receipts
		WHERE vendor_id = ? AND deleted_at IS NULL AND date >= ?
		GROUP BY 1
		ORDER BY 1 ASC
	`, vendorID, from).Scan(&results).Error

	if err != nil {
		return nil, err
	}
	return results, nil
}

func (r *reportRepository) TopCustomers(ctx context.Context, vendorID uuid.UUID, limit int) ([]domainRepo.TopCustomerResult, error) {
	var results []domainRepo.TopCustomerResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			c.id as customer_id,
			c.name as customer_name,
			COALESCE(SUM(r.total_income), 0) as total_income,
			COUNT(r.id) as receipt_count
		FROM receipts r
		JOIN customers c ON c.id = r.customer_id
		WHERE r.vendor_id = ? AND r.deleted_at IS NULL AND c.deleted_at IS NULL
		GROUP BY c.id, c.name
		ORDER BY total_income DESC
		LIMIT ?
	`, vendorID, limit).Scan(&results).Error

	if err != nil {
		return nil, err
	}
	return results, nil
}

func (r *reportRepository) PaymentStats(ctx context.Context, vendorID uuid.UUID) (*domainRepo.PaymentStatsResult, error) {
	var result domainRepo.PaymentStatsResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(SUM(payment), 0) as total_payment,
			COALESCE(AVG(payment), 0) as average_payment,
			COALESCE(MAX(payment), 0) as max_payment,
			COUNT(*) as receipt_count
		FROM receipts
		WHERE vendor_id = ? AND deleted_at IS NULL
	`, vendorID).Scan(&result).Error

	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *reportRepository) CustomerBalances(ctx context.Context, vendorID uuid.UUID) ([]domainRepo.CustomerBalanceResult, error) {
	var results []domainRepo.CustomerBalanceResult

	// DISTINCT ON keeps only the newest receipt per customer; customers
	// without receipts still appear with zero balances.
	err := r.db.WithContext(ctx).Raw(`
		SELECT DISTINCT ON (c.id)
			c.id as customer_id,
			c.name as customer_name,
			c.sr_no,
			COALESCE(r.date, '') as date,
			COALESCE(r.final_total_after_chuk, 0) as balance,
			COALESCE(r.advance_amount, 0) as advance_amount
		FROM customers c
		LEFT JOIN receipts r ON r.customer_id = c.id AND r.deleted_at IS NULL
		WHERE c.vendor_id = ? AND c.deleted_at IS NULL
		ORDER BY c.id, r.date DESC, r.created_at DESC
	`, vendorID).Scan(&results).Error

	if err != nil {
		return nil, err
	}
	return results, nil
}
