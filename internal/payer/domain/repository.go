package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, db *gorm.DB, payer *Payer) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Payer, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]Payer, error)

	UpsertFee(ctx context.Context, db *gorm.DB, fee *FeeSchedule) error
	FindFees(ctx context.Context, db *gorm.DB, payerID int64) ([]FeeSchedule, error)
	// FindFeeRate returns the contracted rate for one unit of the code,
	// or (0, false) when the payer has no entry for it.
	FindFeeRate(ctx context.Context, db *gorm.DB, payerID int64, hcpcsCode string) (int64, bool, error)
}
