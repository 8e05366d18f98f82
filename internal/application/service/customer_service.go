package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gamebook/gamebook-api/internal/domain/entity"
	"github.com/gamebook/gamebook-api/internal/domain/enum"
	"github.com/gamebook/gamebook-api/internal/domain/repository"
	"github.com/gamebook/gamebook-api/pkg/apperror"
)

// CustomerService handles a vendor's customer book. Serial numbers come
// from the counters table, so they stay sequential per vendor and are never
// handed out twice.
type CustomerService struct {
	customerRepo repository.CustomerRepository
	receiptRepo  repository.ReceiptRepository
	counterRepo  repository.CounterRepository
	activityRepo repository.ActivityRepository
	reportRepo   repository.ReportRepository
	logger       *zap.Logger
}

// NewCustomerService creates a new customer service
func NewCustomerService(
	customerRepo repository.CustomerRepository,
	receiptRepo repository.ReceiptRepository,
	counterRepo repository.CounterRepository,
	activityRepo repository.ActivityRepository,
	reportRepo repository.ReportRepository,
	logger *zap.Logger,
) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
		receiptRepo:  receiptRepo,
		counterRepo:  counterRepo,
		activityRepo: activityRepo,
		reportRepo:   reportRepo,
		logger:       logger,
	}
}

// CustomerWithBalance decorates a customer with the standing figures from
// their most recent receipt
type CustomerWithBalance struct {
	entity.Customer
	LatestBalance   float64 `json:"latest_balance"`
	AdvanceAmount   float64 `json:"advance_amount"`
	LastReceiptDate string  `json:"last_receipt_date,omitempty"`
}

// List returns the vendor's customers ordered by serial number, each
// carrying the balance of their latest receipt
func (s *CustomerService) List(ctx context.Context, vendorID uuid.UUID) ([]CustomerWithBalance, error) {
	customers, err := s.customerRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	balances, err := s.reportRepo.CustomerBalances(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	byCustomer := make(map[uuid.UUID]repository.CustomerBalanceResult, len(balances))
	for _, b := range balances {
		byCustomer[b.CustomerID] = b
	}

	result := make([]CustomerWithBalance, 0, len(customers))
	for _, c := range customers {
		enriched := CustomerWithBalance{Customer: c}
		if b, ok := byCustomer[c.ID]; ok {
			enriched.LatestBalance = b.Balance
			enriched.AdvanceAmount = b.AdvanceAmount
			enriched.LastReceiptDate = b.Date
		}
		result = append(result, enriched)
	}
	return result, nil
}

// CreateCustomerInput represents the customer creation input
type CreateCustomerInput struct {
	Name    string
	Address *string
}

// Create adds a customer to the vendor's book with the next serial number
func (s *CustomerService) Create(ctx context.Context, vendorID uuid.UUID, input *CreateCustomerInput) (*entity.Customer, error) {
	if input.Name == "" {
		return nil, apperror.NewBadRequestError("Customer name is required")
	}

	existing, err := s.customerRepo.GetByName(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("A customer with this name already exists")
	}

	srNo, err := s.counterRepo.Next(ctx, entity.CustomerSrNoCounter(vendorID))
	if err != nil {
		return nil, err
	}

	customer := &entity.Customer{
		VendorID: vendorID,
		SrNo:     srNo,
		Name:     input.Name,
		Address:  input.Address,
	}
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	s.recordActivity(ctx, vendorID, enum.ActivityNewCustomer,
		fmt.Sprintf("New customer %s added with serial %d", customer.Name, customer.SrNo))

	return customer, nil
}

// UpdateCustomerInput represents the customer update input
type UpdateCustomerInput struct {
	Name    string
	Address *string
}

// Update edits a customer's name and address
func (s *CustomerService) Update(ctx context.Context, id uuid.UUID, input *UpdateCustomerInput) (*entity.Customer, error) {
	customer, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != "" && input.Name != customer.Name {
		existing, err := s.customerRepo.GetByName(ctx, input.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != customer.ID {
			return nil, apperror.NewConflictError("A customer with this name already exists")
		}
		customer.Name = input.Name
	}
	if input.Address != nil {
		customer.Address = input.Address
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// Delete removes a customer. The serial number is retired with them.
func (s *CustomerService) Delete(ctx context.Context, id uuid.UUID) error {
	customer, err := s.get(ctx, id)
	if err != nil {
		return err
	}
	return s.customerRepo.Delete(ctx, customer.ID)
}

// UpdateBalanceInput represents a manual balance override. Exactly one of
// Yene (customer owes the vendor) or Dene (vendor owes the customer) must
// be set.
type UpdateBalanceInput struct {
	Yene          *float64
	Dene          *float64
	AdvanceAmount *float64
}

// UpdateBalance writes a manual balance onto the customer's latest receipt,
// creating a bare adjustment receipt for today when they have none. This is
// the one path where stored totals do not come out of the row cascade; the
// rows themselves are left untouched.
func (s *CustomerService) UpdateBalance(ctx context.Context, vendorID uuid.UUID, customerID uuid.UUID, input *UpdateBalanceInput) (*entity.Receipt, error) {
	if (input.Yene == nil) == (input.Dene == nil) {
		return nil, apperror.NewBadRequestError("Exactly one of yene or dene must be provided")
	}

	customer, err := s.get(ctx, customerID)
	if err != nil {
		return nil, err
	}

	receipt, err := s.receiptRepo.LatestByCustomer(ctx, customer.ID)
	if err != nil {
		return nil, err
	}

	isNew := receipt == nil
	if isNew {
		now := time.Now()
		receipt = &entity.Receipt{
			VendorID:     vendorID,
			CustomerID:   customer.ID,
			CustomerName: customer.Name,
			Date:         now.Format("2006-01-02"),
			Day:          now.Weekday().String(),
		}
	}

	var balance float64
	if input.Yene != nil {
		balance = *input.Yene
	} else {
		balance = -*input.Dene
	}
	receipt.FinalTotalAfterChuk = balance
	if input.AdvanceAmount != nil {
		receipt.AdvanceAmount = *input.AdvanceAmount
	}
	receipt.FinalTotal = receipt.FinalTotalAfterChuk - receipt.AdvanceAmount - receipt.CuttingAmount

	if isNew {
		err = s.receiptRepo.Create(ctx, receipt)
	} else {
		err = s.receiptRepo.Update(ctx, receipt)
	}
	if err != nil {
		return nil, err
	}

	s.recordActivity(ctx, vendorID, enum.ActivityBalanceUpdate,
		fmt.Sprintf("Balance of %s set to %.2f", customer.Name, balance))

	return receipt, nil
}

func (s *CustomerService) get(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

func (s *CustomerService) recordActivity(ctx context.Context, vendorID uuid.UUID, activityType enum.ActivityType, description string) {
	activity := &entity.Activity{
		VendorID:    vendorID,
		Type:        activityType,
		Description: description,
	}
	if err := s.activityRepo.Create(ctx, activity); err != nil {
		s.logger.Warn("failed to record activity", zap.Error(err))
	}
}
