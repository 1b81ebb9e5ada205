// Package domain contains persistence models for insurance payers and
// their fee schedules.
package domain

import (
	"time"
)

// Payer represents an insurance payer.
type Payer struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (Payer) TableName() string { return "payers" }

// FeeSchedule is the contracted rate, in cents, a payer reimburses for
// one unit of a HCPCS code. One row per (payer, code) pair.
type FeeSchedule struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	PayerID   int64     `json:"payer_id" gorm:"not null;uniqueIndex:ux_fee_schedules_payer_hcpcs,priority:1"`
	HCPCSCode string    `json:"hcpcs_code" gorm:"column:hcpcs_code;type:text;not null;uniqueIndex:ux_fee_schedules_payer_hcpcs,priority:2"`
	Rate      int64     `json:"rate" gorm:"not null"`
	CreatedAt time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (FeeSchedule) TableName() string { return "fee_schedules" }
