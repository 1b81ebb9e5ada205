// Package domain contains persistence models for DME vendors.
package domain

import (
	"time"
)

// Vendor represents a durable medical equipment manufacturer.
type Vendor struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (Vendor) TableName() string { return "vendors" }
