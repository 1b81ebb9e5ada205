package repository

import (
	"context"

	"github.com/orthoflow/orthoflow/internal/payer/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Create(ctx context.Context, db *gorm.DB, payer *domain.Payer) error {
	return db.WithContext(ctx).Create(payer).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Payer, error) {
	var p domain.Payer
	err := db.WithContext(ctx).Raw(
		`SELECT id, name, created_at FROM payers WHERE id = ?`, id,
	).Scan(&p).Error
	if err != nil {
		return nil, err
	}
	if p.ID == 0 {
		return nil, nil
	}
	return &p, nil
}

func (r *repo) FindAll(ctx context.Context, db *gorm.DB) ([]domain.Payer, error) {
	var items []domain.Payer
	err := db.WithContext(ctx).Raw(
		`SELECT id, name, created_at FROM payers ORDER BY name ASC`,
	).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) UpsertFee(ctx context.Context, db *gorm.DB, fee *domain.FeeSchedule) error {
	return db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "payer_id"}, {Name: "hcpcs_code"}},
		DoUpdates: clause.AssignmentColumns([]string{"rate"}),
	}).Create(fee).Error
}

func (r *repo) FindFees(ctx context.Context, db *gorm.DB, payerID int64) ([]domain.FeeSchedule, error) {
	var items []domain.FeeSchedule
	err := db.WithContext(ctx).Raw(
		`SELECT id, payer_id, hcpcs_code, rate, created_at
		 FROM fee_schedules WHERE payer_id = ? ORDER BY hcpcs_code ASC`,
		payerID,
	).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) FindFeeRate(ctx context.Context, db *gorm.DB, payerID int64, hcpcsCode string) (int64, bool, error) {
	var fee domain.FeeSchedule
	err := db.WithContext(ctx).Raw(
		`SELECT id, rate FROM fee_schedules WHERE payer_id = ? AND hcpcs_code = ?`,
		payerID, hcpcsCode,
	).Scan(&fee).Error
	if err != nil {
		return 0, false, err
	}
	if fee.ID == 0 {
		return 0, false, nil
	}
	return fee.Rate, true, nil
}
