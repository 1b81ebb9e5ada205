// Package domain contains persistence models for the product catalog.
package domain

import (
	"time"
)

// Product represents an orderable DME item. Monetary amounts are in cents.
type Product struct {
	ID                      int64     `json:"id" gorm:"primaryKey"`
	VendorID                int64     `json:"vendor_id" gorm:"not null;index"`
	Name                    string    `json:"name" gorm:"type:text;not null"`
	HCPCSCode               string    `json:"hcpcs_code" gorm:"column:hcpcs_code;type:text;not null;index"`
	UnitCost                int64     `json:"unit_cost" gorm:"not null"`
	MSRP                    int64     `json:"msrp" gorm:"column:msrp;not null"`
	Category                string    `json:"category" gorm:"type:text;not null"`
	MeasurementFormRequired bool      `json:"measurement_form_required" gorm:"not null;default:false"`
	CreatedAt               time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt               time.Time `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (Product) TableName() string { return "products" }
