package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, db *gorm.DB, vendor *Vendor) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Vendor, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]Vendor, error)
	CountProducts(ctx context.Context, db *gorm.DB, id int64) (int64, error)
	Delete(ctx context.Context, db *gorm.DB, id int64) error
}
