package domain

import (
	"context"

	"gorm.io/gorm"
)

type ListFilter struct {
	VendorID  int64
	Category  string
	HCPCSCode string
}

type Repository interface {
	Create(ctx context.Context, db *gorm.DB, product *Product) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Product, error)
	List(ctx context.Context, db *gorm.DB, filter ListFilter) ([]Product, error)
	Update(ctx context.Context, db *gorm.DB, product *Product) error
	CountOrderLines(ctx context.Context, db *gorm.DB, id int64) (int64, error)
	Delete(ctx context.Context, db *gorm.DB, id int64) error
}
