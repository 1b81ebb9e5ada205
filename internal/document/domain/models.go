// Package domain contains the versioned document records an order
// accumulates at submission. Rows are immutable; regeneration appends
// a new version, it never rewrites an old one.
package domain

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// Type identifies which legal/financial document a row holds.
type Type string

const (
	TypeEncounter Type = "ENCOUNTER"
	TypeInvoice   Type = "INVOICE"
	TypePOD       Type = "POD"
)

// Types lists every document kind a submission produces.
var Types = []Type{TypeEncounter, TypeInvoice, TypePOD}

// ValidType reports whether t is a known document kind.
func ValidType(t Type) bool {
	switch t {
	case TypeEncounter, TypeInvoice, TypePOD:
		return true
	}
	return false
}

// Document is one rendered file bound to an order. Versions for a
// given (order, type) pair are contiguous starting at 1.
type Document struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	OrderID   int64     `json:"order_id" gorm:"not null;uniqueIndex:ux_documents_order_type_version,priority:1"`
	Type      Type      `json:"type" gorm:"type:text;not null;uniqueIndex:ux_documents_order_type_version,priority:2"`
	FileURL   string    `json:"file_url" gorm:"type:text;not null"`
	Version   int       `json:"version" gorm:"not null;uniqueIndex:ux_documents_order_type_version,priority:3"`
	CreatedAt time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (Document) TableName() string { return "documents" }

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, doc *Document) error
	// NextVersion returns max(version)+1 for the (order, type) pair.
	// Call it inside the same transaction that inserts the row.
	NextVersion(ctx context.Context, db *gorm.DB, orderID int64, docType Type) (int, error)
	ListByOrder(ctx context.Context, db *gorm.DB, orderID int64) ([]Document, error)
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Document, error)
}

var ErrNotFound = errors.New("not_found")
