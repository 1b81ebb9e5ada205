// Package domain contains the append-only audit trail attached to
// every order. Events are never edited or deleted.
package domain

import (
	"context"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// EventType identifies what happened to an order.
type EventType string

const (
	EventOrderCreated   EventType = "ORDER_CREATED"
	EventOrderUpdated   EventType = "ORDER_UPDATED"
	EventOrderSubmitted EventType = "ORDER_SUBMITTED"
	EventStatusChanged  EventType = "STATUS_CHANGED"
	EventPDFGenerated   EventType = "PDF_GENERATED"
)

// AuditEvent is one fact on an order's timeline.
type AuditEvent struct {
	ID        int64             `json:"id" gorm:"primaryKey"`
	OrderID   int64             `json:"order_id" gorm:"not null;index:ix_audit_events_order_id,priority:1"`
	ActorID   string            `json:"actor_id" gorm:"type:text;not null"`
	EventType EventType         `json:"event_type" gorm:"type:text;not null"`
	Payload   datatypes.JSONMap `json:"payload" gorm:"type:jsonb;not null;default:'{}'"`
	CreatedAt time.Time         `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP;index:ix_audit_events_order_id,priority:2"`
}

// TableName sets the database table name.
func (AuditEvent) TableName() string { return "audit_events" }

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, event *AuditEvent) error
	ListByOrder(ctx context.Context, db *gorm.DB, orderID int64) ([]AuditEvent, error)
}
