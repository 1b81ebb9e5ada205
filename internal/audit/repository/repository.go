package repository

import (
	"context"

	"github.com/orthoflow/orthoflow/internal/audit/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, event *domain.AuditEvent) error {
	return db.WithContext(ctx).Create(event).Error
}

func (r *repo) ListByOrder(ctx context.Context, db *gorm.DB, orderID int64) ([]domain.AuditEvent, error) {
	var items []domain.AuditEvent
	err := db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at ASC, id ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
