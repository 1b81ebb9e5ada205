package domain

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type ListFilter struct {
	Status      string
	PatientName string
	OrderID     string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// LineDetail is an order line joined with the catalog fields the
// documents and API responses need.
type LineDetail struct {
	OrderLine
	ProductName string `gorm:"column:product_name"`
	HCPCSCode   string `gorm:"column:hcpcs_code"`
}

// SummaryRow is an order joined with its patient name for list views.
type SummaryRow struct {
	Order
	PatientFirstName string `gorm:"column:patient_first_name"`
	PatientLastName  string `gorm:"column:patient_last_name"`
}

type Repository interface {
	InsertPatient(ctx context.Context, db *gorm.DB, patient *Patient) error
	InsertClinician(ctx context.Context, db *gorm.DB, clinician *Clinician) error
	InsertOrder(ctx context.Context, db *gorm.DB, order *Order) error

	// FindByID loads the order row. With forUpdate set the row is
	// locked for the remainder of the transaction on dialects that
	// support it.
	FindByID(ctx context.Context, db *gorm.DB, id int64, forUpdate bool) (*Order, error)
	FindPatient(ctx context.Context, db *gorm.DB, id int64) (*Patient, error)
	FindClinician(ctx context.Context, db *gorm.DB, id int64) (*Clinician, error)

	UpdateOrder(ctx context.Context, db *gorm.DB, order *Order) error
	UpdatePatient(ctx context.Context, db *gorm.DB, patient *Patient) error
	UpdateClinician(ctx context.Context, db *gorm.DB, clinician *Clinician) error

	// ReplaceLines drops the order's current lines and inserts the
	// given set in order.
	ReplaceLines(ctx context.Context, db *gorm.DB, orderID int64, lines []OrderLine) error
	FindLines(ctx context.Context, db *gorm.DB, orderID int64) ([]LineDetail, error)

	List(ctx context.Context, db *gorm.DB, filter ListFilter) ([]SummaryRow, error)
}
