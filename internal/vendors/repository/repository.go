package repository

import (
	"context"

	"github.com/orthoflow/orthoflow/internal/vendors/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Create(ctx context.Context, db *gorm.DB, vendor *domain.Vendor) error {
	return db.WithContext(ctx).Create(vendor).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Vendor, error) {
	var v domain.Vendor
	err := db.WithContext(ctx).Raw(
		`SELECT id, name, created_at FROM vendors WHERE id = ?`, id,
	).Scan(&v).Error
	if err != nil {
		return nil, err
	}
	if v.ID == 0 {
		return nil, nil
	}
	return &v, nil
}

func (r *repo) FindAll(ctx context.Context, db *gorm.DB) ([]domain.Vendor, error) {
	var items []domain.Vendor
	err := db.WithContext(ctx).Raw(
		`SELECT id, name, created_at FROM vendors ORDER BY name ASC`,
	).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) CountProducts(ctx context.Context, db *gorm.DB, id int64) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Raw(
		`SELECT COUNT(*) FROM products WHERE vendor_id = ?`, id,
	).Scan(&count).Error
	return count, err
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id int64) error {
	return db.WithContext(ctx).Exec(`DELETE FROM vendors WHERE id = ?`, id).Error
}
