package service

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/gamebook/gamebook-api/internal/domain/entity"
	"github.com/gamebook/gamebook-api/internal/domain/enum"
	"github.com/gamebook/gamebook-api/internal/domain/repository"
	"github.com/gamebook/gamebook-api/pkg/pagination"
)

// In-memory repository fakes backing the service tests.

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

type fakeVendorRepo struct {
	vendors map[uuid.UUID]*entity.Vendor
}

func newFakeVendorRepo() *fakeVendorRepo {
	return &fakeVendorRepo{vendors: make(map[uuid.UUID]*entity.Vendor)}
}

func (r *fakeVendorRepo) Create(ctx context.Context, vendor *entity.Vendor) error {
	if vendor.ID == uuid.Nil {
		vendor.ID = uuid.New()
	}
	r.vendors[vendor.ID] = vendor
	return nil
}

func (r *fakeVendorRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Vendor, error) {
	return r.vendors[id], nil
}

func (r *fakeVendorRepo) GetByMobile(ctx context.Context, mobile string) (*entity.Vendor, error) {
	for _, v := range r.vendors {
		if v.Mobile == mobile {
			return v, nil
		}
	}
	return nil, nil
}

func (r *fakeVendorRepo) Update(ctx context.Context, vendor *entity.Vendor) error {
	r.vendors[vendor.ID] = vendor
	return nil
}

func (r *fakeVendorRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.vendors, id)
	return nil
}

func (r *fakeVendorRepo) List(ctx context.Context, params *pagination.PaginationParams, search string, status enum.VendorStatus) ([]entity.Vendor, int64, error) {
	var result []entity.Vendor
	for _, v := range r.vendors {
		if status != "" && v.Status != status {
			continue
		}
		if search != "" && !strings.Contains(v.Name, search) && !strings.Contains(v.Mobile, search) {
			continue
		}
		result = append(result, *v)
	}
	return result, int64(len(result)), nil
}

type fakeCustomerRepo struct {
	customers map[uuid.UUID]*entity.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[uuid.UUID]*entity.Customer)}
}

func (r *fakeCustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	r.customers[customer.ID] = customer
	return nil
}

func (r *fakeCustomerRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	return r.customers[id], nil
}

func (r *fakeCustomerRepo) GetByName(ctx context.Context, name string) (*entity.Customer, error) {
	for _, c := range r.customers {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCustomerRepo) Update(ctx context.Context, customer *entity.Customer) error {
	r.customers[customer.ID] = customer
	return nil
}

func (r *fakeCustomerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.customers, id)
	return nil
}

func (r *fakeCustomerRepo) List(ctx context.Context) ([]entity.Customer, error) {
	var result []entity.Customer
	for _, c := range r.customers {
		result = append(result, *c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].SrNo < result[j].SrNo })
	return result, nil
}

type fakeReceiptRepo struct {
	receipts map[uuid.UUID]*entity.Receipt
}

func newFakeReceiptRepo() *fakeReceiptRepo {
	return &fakeReceiptRepo{receipts: make(map[uuid.UUID]*entity.Receipt)}
}

func (r *fakeReceiptRepo) Create(ctx context.Context, receipt *entity.Receipt) error {
	if receipt.ID == uuid.Nil {
		receipt.ID = uuid.New()
	}
	r.receipts[receipt.ID] = receipt
	return nil
}

func (r *fakeReceiptRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Receipt, error) {
	return r.receipts[id], nil
}

func (r *fakeReceiptRepo) Update(ctx context.Context, receipt *entity.Receipt) error {
	r.receipts[receipt.ID] = receipt
	return nil
}

func (r *fakeReceiptRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.receipts, id)
	return nil
}

func (r *fakeReceiptRepo) List(ctx context.Context, params *pagination.PaginationParams) ([]entity.Receipt, int64, error) {
	all := r.sorted()
	return all, int64(len(all)), nil
}

func (r *fakeReceiptRepo) ListByDate(ctx context.Context, date string) ([]entity.Receipt, error) {
	var result []entity.Receipt
	for _, rec := range r.sorted() {
		if rec.Date == date {
			result = append(result, rec)
		}
	}
	return result, nil
}

func (r *fakeReceiptRepo) ListBetween(ctx context.Context, from, to string) ([]entity.Receipt, error) {
	var result []entity.Receipt
	for _, rec := range r.sorted() {
		if rec.Date >= from && rec.Date <= to {
			result = append(result, rec)
		}
	}
	return result, nil
}

func (r *fakeReceiptRepo) GetByCustomerAndDate(ctx context.Context, customerID uuid.UUID, date string) (*entity.Receipt, error) {
	for _, rec := range r.receipts {
		if rec.CustomerID == customerID && rec.Date == date {
			return rec, nil
		}
	}
	return nil, nil
}

func (r *fakeReceiptRepo) LatestByCustomer(ctx context.Context, customerID uuid.UUID) (*entity.Receipt, error) {
	var latest *entity.Receipt
	for _, rec := range r.receipts {
		if rec.CustomerID != customerID {
			continue
		}
		if latest == nil || rec.Date > latest.Date {
			latest = rec
		}
	}
	return latest, nil
}

func (r *fakeReceiptRepo) sorted() []entity.Receipt {
	var all []entity.Receipt
	for _, rec := range r.receipts {
		all = append(all, *rec)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Date > all[j].Date })
	return all
}

type fakeActivityRepo struct {
	activities []entity.Activity
}

func (r *fakeActivityRepo) Create(ctx context.Context, activity *entity.Activity) error {
	if activity.ID == uuid.Nil {
		activity.ID = uuid.New()
	}
	r.activities = append(r.activities, *activity)
	return nil
}

func (r *fakeActivityRepo) ListRecent(ctx context.Context, limit int) ([]entity.Activity, error) {
	if len(r.activities) <= limit {
		return r.activities, nil
	}
	return r.activities[len(r.activities)-limit:], nil
}

type fakeCounterRepo struct {
	counters map[string]int64
}

func newFakeCounterRepo() *fakeCounterRepo {
	return &fakeCounterRepo{counters: make(map[string]int64)}
}

func (r *fakeCounterRepo) Next(ctx context.Context, name string) (int64, error) {
	r.counters[name]++
	return r.counters[name], nil
}

type fakeReportRepo struct {
	balances []repository.CustomerBalanceResult
}

func (r *fakeReportRepo) PeriodSummary(ctx context.Context, vendorID uuid.UUID, from, to string) (*repository.PeriodSummaryResult, error) {
	return &repository.PeriodSummaryResult{}, nil
}

func (r *fakeReportRepo) MonthlyTrends(ctx context.Context, vendorID uuid.UUID, months int) ([]repository.MonthlyTrendResult, error) {
	return nil, nil
}

func (r *fakeReportRepo) TopCustomers(ctx context.Context, vendorID uuid.UUID, limit int) ([]repository.TopCustomerResult, error) {
	return nil, nil
}

func (r *fakeReportRepo) PaymentStats(ctx context.Context, vendorID uuid.UUID) (*repository.PaymentStatsResult, error) {
	return &repository.PaymentStatsResult{}, nil
}

func (r *fakeReportRepo) CustomerBalances(ctx context.Context, vendorID uuid.UUID) ([]repository.CustomerBalanceResult, error) {
	return r.balances, nil
}
