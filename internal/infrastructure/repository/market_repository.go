package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/gamebook/gamebook-api/internal/domain/entity"
	domainRepo "github.com/gamebook/gamebook-api/internal/domain/repository"
)

type marketDetailsRepository struct {
	db *gorm.DB
}

// NewMarketDetailsRepository creates a new market details repository
func NewMarketDetailsRepository(db *gorm.DB) domainRepo.MarketDetailsRepository {
	return &marketDetailsRepository{db: db}
}

func (r *marketDetailsRepository) Upsert(ctx context.Context, details *entity.MarketDetails) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "vendor_id"}, {Name: "customer_id"}, {Name: "company_name"}, {Name: "date"},
		},
		DoUpdates: clause.AssignmentColumns([]string{
			"open_value", "close_value", "jod_value", "game_row_open", "game_row_close", "updated_at",
		}),
	}).Create(details).Error
}

func (r *marketDetailsRepository) GetByTuple(ctx context.Context, customerID uuid.UUID, companyName, date string) (*entity.MarketDetails, error) {
	var details entity.MarketDetails
	err := r.db.WithContext(ctx).
		Scopes(VendorScope(ctx)).
		Where("customer_id = ? AND company_name = ? AND date = ?", customerID, companyName, date).
		First(&details).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &details, err
}

func (r *marketDetailsRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID, date string) ([]entity.MarketDetails, error) {
	var records []entity.MarketDetails
	query := r.db.WithContext(ctx).
		Scopes(VendorScope(ctx)).
		Where("customer_id = ?", customerID)
	if date != "" {
		query = query.Where("date = ?", date)
	}
	err := query.Order("company_name ASC").Find(&records).Error
	return records, err
}

func (r *marketDetailsRepository) ListByDate(ctx context.Context, date string) ([]entity.MarketDetails, error) {
	var records []entity.MarketDetails
	err := r.db.WithContext(ctx).
		Scopes(VendorScope(ctx)).
		Where("date = ?", date).
		Order("company_name ASC").
		Find(&records).Error
	return records, err
}

func (r *marketDetailsRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Scopes(VendorScope(ctx)).
		Delete(&entity.MarketDetails{}, "id = ?", id).Error
}

func (r *marketDetailsRepository) DeleteByTuple(ctx context.Context, customerID uuid.UUID, companyName, date string) error {
	return r.db.WithContext(ctx).
		Scopes(VendorScope(ctx)).
		Where("customer_id = ? AND company_name = ? AND date = ?", customerID, companyName, date).
		Delete(&entity.MarketDetails{}).Error
}

func (r *marketDetailsRepository) DeleteByDate(ctx context.Context, date string) error {
	return r.db.WithContext(ctx).
		Scopes(VendorScope(ctx)).
		Where("date = ?", date).
		Delete(&entity.MarketDetails{}).Error
}

func (r *marketDetailsRepository) DeleteBefore(ctx context.Context, date string) error {
	return r.db.WithContext(ctx).
		Where("date < ?", date).
		Delete(&entity.MarketDetails{}).Error
}

type dailyValuesRepository struct {
	db *gorm.DB
}

// NewDailyValuesRepository creates a new daily global values repository
func NewDailyValuesRepository(db *gorm.DB) domainRepo.DailyValuesRepository {
	return &dailyValuesRepository{db: db}
}

func (r *dailyValuesRepository) Upsert(ctx context.Context, values *entity.DailyGlobalValues) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "vendor_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"open_value", "close_value", "jod_value", "updated_at",
		}),
	}).Create(values).Error
}

func (r *dailyValuesRepository) GetByDate(ctx context.Context, date string) (*entity.DailyGlobalValues, error) {
	var values entity.DailyGlobalValues
	err := r.db.WithContext(ctx).
		Scopes(VendorScope(ctx)).
		Where("date = ?", date).
		First(&values).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &values, err
}

func (r *dailyValuesRepository) DeleteByDate(ctx context.Context, date string) error {
	return r.db.WithContext(ctx).
		Scopes(VendorScope(ctx)).
		Where("date = ?", date).
		Delete(&entity.DailyGlobalValues{}).Error
}

func (r *dailyValuesRepository) DeleteBefore(ctx context.Context, date string) error {
	return r.db.WithContext(ctx).
		Where("date < ?", date).
		Delete(&entity.DailyGlobalValues{}).Error
}
