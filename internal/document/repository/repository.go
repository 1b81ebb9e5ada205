package repository

import (
	"context"

	"github.com/orthoflow/orthoflow/internal/document/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, doc *domain.Document) error {
	return db.WithContext(ctx).Create(doc).Error
}

func (r *repo) NextVersion(ctx context.Context, db *gorm.DB, orderID int64, docType domain.Type) (int, error) {
	var max int
	err := db.WithContext(ctx).Raw(
		`SELECT COALESCE(MAX(version), 0) FROM documents WHERE order_id = ? AND type = ?`,
		orderID, docType,
	).Scan(&max).Error
	if err != nil {
		return 0, err
	}
	return max + 1, nil
}

func (r *repo) ListByOrder(ctx context.Context, db *gorm.DB, orderID int64) ([]domain.Document, error) {
	var items []domain.Document
	err := db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at ASC, id ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Document, error) {
	var d domain.Document
	err := db.WithContext(ctx).Raw(
		`SELECT id, order_id, type, file_url, version, created_at FROM documents WHERE id = ?`,
		id,
	).Scan(&d).Error
	if err != nil {
		return nil, err
	}
	if d.ID == 0 {
		return nil, nil
	}
	return &d, nil
}
