package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gamebook/gamebook-api/internal/domain/calc"
	"github.com/gamebook/gamebook-api/internal/domain/entity"
	"github.com/gamebook/gamebook-api/internal/domain/enum"
	"github.com/gamebook/gamebook-api/internal/domain/repository"
	"github.com/gamebook/gamebook-api/pkg/apperror"
	"github.com/gamebook/gamebook-api/pkg/pagination"
)

const dateLayout = "2006-01-02"

// ReceiptService handles receipt entry. Clients may send whatever derived
// totals they computed locally; the service discards them and recomputes
// everything from the raw rows before anything is stored.
type ReceiptService struct {
	receiptRepo  repository.ReceiptRepository
	customerRepo repository.CustomerRepository
	activityRepo repository.ActivityRepository
	logger       *zap.Logger
}

// NewReceiptService creates a new receipt service
func NewReceiptService(
	receiptRepo repository.ReceiptRepository,
	customerRepo repository.CustomerRepository,
	activityRepo repository.ActivityRepository,
	logger *zap.Logger,
) *ReceiptService {
	return &ReceiptService{
		receiptRepo:  receiptRepo,
		customerRepo: customerRepo,
		activityRepo: activityRepo,
		logger:       logger,
	}
}

// ReceiptInput represents the fields a vendor submits for a receipt
type ReceiptInput struct {
	CustomerID      uuid.UUID
	CustomerCompany string
	Date            string
	GameRows        []entity.GameRow
	OpenCloseValues entity.OpenCloseValues
	PendingAmount   float64
	AdvanceAmount   float64
	CuttingAmount   float64
	Jama            float64
	Chuk            float64
	IsChukEnabled   bool
}

// Create records a new receipt for a customer
func (s *ReceiptService) Create(ctx context.Context, vendorID uuid.UUID, businessName string, input *ReceiptInput) (*entity.Receipt, error) {
	date, err := parseDate(input.Date)
	if err != nil {
		return nil, err
	}

	customer, err := s.customerRepo.GetByID(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	receipt := &entity.Receipt{
		VendorID:        vendorID,
		CustomerID:      customer.ID,
		BusinessName:    businessName,
		CustomerName:    customer.Name,
		CustomerCompany: input.CustomerCompany,
		Date:            input.Date,
		Day:             date.Weekday().String(),
		GameRows:        normalizeRows(input.GameRows),
		OpenCloseValues: input.OpenCloseValues,
		PendingAmount:   input.PendingAmount,
		AdvanceAmount:   input.AdvanceAmount,
		CuttingAmount:   input.CuttingAmount,
		Jama:            input.Jama,
		Chuk:            input.Chuk,
		IsChukEnabled:   input.IsChukEnabled,
	}
	calc.Recalculate(receipt)

	if err := s.receiptRepo.Create(ctx, receipt); err != nil {
		return nil, err
	}

	s.recordActivity(ctx, vendorID,
		fmt.Sprintf("Receipt for %s on %s, final total %.2f", receipt.CustomerName, receipt.Date, receipt.FinalTotal))

	return receipt, nil
}

// Update replaces the editable fields of a receipt and recomputes totals
func (s *ReceiptService) Update(ctx context.Context, id uuid.UUID, input *ReceiptInput) (*entity.Receipt, error) {
	receipt, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Date != "" && input.Date != receipt.Date {
		date, err := parseDate(input.Date)
		if err != nil {
			return nil, err
		}
		receipt.Date = input.Date
		receipt.Day = date.Weekday().String()
	}
	if input.CustomerCompany != "" {
		receipt.CustomerCompany = input.CustomerCompany
	}
	receipt.GameRows = normalizeRows(input.GameRows)
	receipt.OpenCloseValues = input.OpenCloseValues
	receipt.PendingAmount = input.PendingAmount
	receipt.AdvanceAmount = input.AdvanceAmount
	receipt.CuttingAmount = input.CuttingAmount
	receipt.Jama = input.Jama
	receipt.Chuk = input.Chuk
	receipt.IsChukEnabled = input.IsChukEnabled
	calc.Recalculate(receipt)

	if err := s.receiptRepo.Update(ctx, receipt); err != nil {
		return nil, err
	}
	return receipt, nil
}

// Get returns one receipt within the vendor scope
func (s *ReceiptService) Get(ctx context.Context, id uuid.UUID) (*entity.Receipt, error) {
	receipt, err := s.receiptRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, apperror.NewNotFoundError("Receipt")
	}
	return receipt, nil
}

// Delete removes a receipt
func (s *ReceiptService) Delete(ctx context.Context, id uuid.UUID) error {
	receipt, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	return s.receiptRepo.Delete(ctx, receipt.ID)
}

// List returns the vendor's receipts newest first
func (s *ReceiptService) List(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Receipt], error) {
	receipts, total, err := s.receiptRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(receipts, pagination.NewPagination(params.Page, params.PerPage, total)), nil
}

// GameTypeDailyTotal aggregates the rows of one game type within a company
type GameTypeDailyTotal struct {
	Income   float64 `json:"income"`
	Payment  float64 `json:"payment"`
	RowCount int     `json:"row_count"`
}

// CompanyDailyTotal aggregates one company's receipts for a day
type CompanyDailyTotal struct {
	CompanyName   string                        `json:"company_name"`
	TotalIncome   float64                       `json:"total_income"`
	TotalPayment  float64                       `json:"total_payment"`
	Categories    calc.Contribution             `json:"categories"`
	GameTypes     map[string]GameTypeDailyTotal `json:"game_types"`
	ReceiptCount  int                           `json:"receipt_count"`
	CustomerCount int                           `json:"customer_count"`
}

// DailyTotalsResult is the per-company breakdown for one date
type DailyTotalsResult struct {
	Date          string              `json:"date"`
	Companies     []CompanyDailyTotal `json:"companies"`
	TotalIncome   float64             `json:"total_income"`
	TotalPayment  float64             `json:"total_payment"`
	ReceiptCount  int                 `json:"receipt_count"`
	CustomerCount int                 `json:"customer_count"`
}

// DailyTotals recomputes every receipt of the date from its raw rows and
// groups the figures by customer company, splitting each company's rows by
// game type
func (s *ReceiptService) DailyTotals(ctx context.Context, date string) (*DailyTotalsResult, error) {
	if _, err := parseDate(date); err != nil {
		return nil, err
	}

	receipts, err := s.receiptRepo.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	type companyAgg struct {
		total     CompanyDailyTotal
		customers map[uuid.UUID]struct{}
	}

	byCompany := make(map[string]*companyAgg)
	result := &DailyTotalsResult{Date: date}
	allCustomers := make(map[uuid.UUID]struct{})

	for _, r := range receipts {
		company := r.CustomerCompany
		if company == "" {
			company = "Unknown"
		}
		agg, ok := byCompany[company]
		if !ok {
			agg = &companyAgg{
				total: CompanyDailyTotal{
					CompanyName: company,
					GameTypes:   make(map[string]GameTypeDailyTotal),
				},
				customers: make(map[uuid.UUID]struct{}),
			}
			byCompany[company] = agg
		}

		totals := calc.ComputeTotals(r.GameRows, calc.Adjustments{})
		agg.total.TotalIncome += totals.TotalIncome
		agg.total.TotalPayment += totals.Payment
		agg.total.Categories.O += totals.Category.O
		agg.total.Categories.Jod += totals.Category.Jod
		agg.total.Categories.Ko += totals.Category.Ko
		agg.total.Categories.Pan += totals.Category.Pan
		agg.total.Categories.Gun += totals.Category.Gun
		agg.total.Categories.Special += totals.Category.Special
		agg.total.ReceiptCount++

		for _, row := range r.GameRows {
			gameType := row.Type
			if gameType == "" {
				gameType = "Unknown"
			}
			byType := agg.total.GameTypes[gameType]
			byType.Income += calc.Number(row.Income)
			byType.Payment += calc.RowContribution(row).Sum()
			byType.RowCount++
			agg.total.GameTypes[gameType] = byType
		}

		agg.customers[r.CustomerID] = struct{}{}
		allCustomers[r.CustomerID] = struct{}{}

		result.TotalIncome += totals.TotalIncome
		result.TotalPayment += totals.Payment
		result.ReceiptCount++
	}

	names := make([]string, 0, len(byCompany))
	for name := range byCompany {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		agg := byCompany[name]
		agg.total.CustomerCount = len(agg.customers)
		result.Companies = append(result.Companies, agg.total)
	}
	result.CustomerCount = len(allCustomers)

	return result, nil
}

// normalizeRows forces the multiplier the row type mandates, whatever the
// client sent.
func normalizeRows(rows []entity.GameRow) entity.GameRows {
	normalized := make(entity.GameRows, len(rows))
	for i, row := range rows {
		row.Multiplier = calc.MultiplierFor(row.Type)
		normalized[i] = row
	}
	return normalized
}

func parseDate(date string) (time.Time, error) {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return time.Time{}, apperror.NewBadRequestError("Date must be in YYYY-MM-DD format")
	}
	return t, nil
}

func (s *ReceiptService) recordActivity(ctx context.Context, vendorID uuid.UUID, description string) {
	activity := &entity.Activity{
		VendorID:    vendorID,
		Type:        enum.ActivityNewReceipt,
		Description: description,
	}
	if err := s.activityRepo.Create(ctx, activity); err != nil {
		s.logger.Warn("failed to record activity", zap.Error(err))
	}
}
