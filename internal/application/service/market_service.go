package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gamebook/gamebook-api/internal/domain/entity"
	"github.com/gamebook/gamebook-api/internal/domain/repository"
	"github.com/gamebook/gamebook-api/pkg/apperror"
)

// MarketService manages the intraday staging records: per-company market
// details for a customer and the vendor-wide daily digits. Both are
// overwrite-on-repost and are cleaned up by the scheduler after a retention
// window; nothing here flows into receipt totals.
type MarketService struct {
	marketRepo   repository.MarketDetailsRepository
	dailyRepo    repository.DailyValuesRepository
	customerRepo repository.CustomerRepository
	logger       *zap.Logger
}

// NewMarketService creates a new market service
func NewMarketService(
	marketRepo repository.MarketDetailsRepository,
	dailyRepo repository.DailyValuesRepository,
	customerRepo repository.CustomerRepository,
	logger *zap.Logger,
) *MarketService {
	return &MarketService{
		marketRepo:   marketRepo,
		dailyRepo:    dailyRepo,
		customerRepo: customerRepo,
		logger:       logger,
	}
}

// MarketDetailsInput represents one company's staging record
type MarketDetailsInput struct {
	CustomerID   uuid.UUID
	CompanyName  string
	Date         string
	OpenValue    string
	CloseValue   string
	JodValue     string
	GameRowOpen  *entity.GameRow
	GameRowClose *entity.GameRow
}

// SaveDetails creates or overwrites the staging record for the
// customer+company+date tuple
func (s *MarketService) SaveDetails(ctx context.Context, vendorID uuid.UUID, input *MarketDetailsInput) (*entity.MarketDetails, error) {
	if input.CompanyName == "" {
		return nil, apperror.NewBadRequestError("Company name is required")
	}
	if _, err := parseDate(input.Date); err != nil {
		return nil, err
	}

	customer, err := s.customerRepo.GetByID(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	details := &entity.MarketDetails{
		VendorID:     vendorID,
		CustomerID:   customer.ID,
		CompanyName:  input.CompanyName,
		Date:         input.Date,
		OpenValue:    input.OpenValue,
		CloseValue:   input.CloseValue,
		JodValue:     input.JodValue,
		GameRowOpen:  input.GameRowOpen,
		GameRowClose: input.GameRowClose,
	}
	if err := s.marketRepo.Upsert(ctx, details); err != nil {
		return nil, err
	}
	return details, nil
}

// GetDetails returns the staging record for one tuple, or a not-found error
func (s *MarketService) GetDetails(ctx context.Context, customerID uuid.UUID, companyName, date string) (*entity.MarketDetails, error) {
	details, err := s.marketRepo.GetByTuple(ctx, customerID, companyName, date)
	if err != nil {
		return nil, err
	}
	if details == nil {
		return nil, apperror.NewNotFoundError("Market details")
	}
	return details, nil
}

// ListDetailsByCustomer returns a customer's staging records, narrowed to a
// date when one is given
func (s *MarketService) ListDetailsByCustomer(ctx context.Context, customerID uuid.UUID, date string) ([]entity.MarketDetails, error) {
	if date != "" {
		if _, err := parseDate(date); err != nil {
			return nil, err
		}
	}
	return s.marketRepo.ListByCustomer(ctx, customerID, date)
}

// ListDetailsByDate returns every staging record of the vendor for one date
func (s *MarketService) ListDetailsByDate(ctx context.Context, date string) ([]entity.MarketDetails, error) {
	if _, err := parseDate(date); err != nil {
		return nil, err
	}
	return s.marketRepo.ListByDate(ctx, date)
}

// DeleteDetails removes one staging record by ID
func (s *MarketService) DeleteDetails(ctx context.Context, id uuid.UUID) error {
	return s.marketRepo.DeleteByID(ctx, id)
}

// DeleteDetailsByTuple removes the staging record for one tuple
func (s *MarketService) DeleteDetailsByTuple(ctx context.Context, customerID uuid.UUID, companyName, date string) error {
	return s.marketRepo.DeleteByTuple(ctx, customerID, companyName, date)
}

// DeleteDetailsByDate removes every staging record of the vendor for a date
func (s *MarketService) DeleteDetailsByDate(ctx context.Context, date string) error {
	if _, err := parseDate(date); err != nil {
		return err
	}
	return s.marketRepo.DeleteByDate(ctx, date)
}

// DailyValuesInput represents the vendor-wide digits for one date
type DailyValuesInput struct {
	Date       string
	OpenValue  string
	CloseValue string
	JodValue   string
}

// SaveDailyValues creates or overwrites the vendor's digits for the date
func (s *MarketService) SaveDailyValues(ctx context.Context, vendorID uuid.UUID, input *DailyValuesInput) (*entity.DailyGlobalValues, error) {
	if _, err := parseDate(input.Date); err != nil {
		return nil, err
	}

	values := &entity.DailyGlobalValues{
		VendorID:   vendorID,
		Date:       input.Date,
		OpenValue:  input.OpenValue,
		CloseValue: input.CloseValue,
		JodValue:   input.JodValue,
	}
	if err := s.dailyRepo.Upsert(ctx, values); err != nil {
		return nil, err
	}
	return values, nil
}

// GetDailyValues returns the vendor's digits for the date, or nil when the
// date has none yet
func (s *MarketService) GetDailyValues(ctx context.Context, date string) (*entity.DailyGlobalValues, error) {
	if _, err := parseDate(date); err != nil {
		return nil, err
	}
	return s.dailyRepo.GetByDate(ctx, date)
}

// DeleteDailyValues removes the vendor's digits for the date
func (s *MarketService) DeleteDailyValues(ctx context.Context, date string) error {
	if _, err := parseDate(date); err != nil {
		return err
	}
	return s.dailyRepo.DeleteByDate(ctx, date)
}
