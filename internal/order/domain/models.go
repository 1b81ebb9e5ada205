// Package domain contains the order aggregate: the order row, its
// patient/clinician records, lines, and lifecycle vocabulary.
package domain

import (
	"time"

	"gorm.io/datatypes"
)

// PayerType says who pays for the order.
type PayerType string

const (
	PayerTypeSelfPay   PayerType = "self_pay"
	PayerTypeInsurance PayerType = "insurance"
)

// Status is the fulfillment state of a submitted order. While an order
// is still a draft the column holds a value but carries no business
// meaning.
type Status string

const (
	StatusPendingApproval  Status = "pending_approval"
	StatusApproved         Status = "approved"
	StatusPaymentConfirmed Status = "payment_confirmed"
	StatusShipped          Status = "shipped"
	StatusDelivered        Status = "delivered"
)

var statusLabels = map[Status]string{
	StatusPendingApproval:  "Pending Approval",
	StatusApproved:         "Approved",
	StatusPaymentConfirmed: "Payment Confirmed",
	StatusShipped:          "Shipped",
	StatusDelivered:        "Delivered",
}

// ValidStatus reports whether s is one of the fixed fulfillment states.
func ValidStatus(s Status) bool {
	_, ok := statusLabels[s]
	return ok
}

// StatusLabel returns the human label for a status, or the raw value
// when it has none.
func StatusLabel(s Status) string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

// Order is the aggregate root. Patient and clinician are created with
// the order and live for as long as it does.
type Order struct {
	ID                 int64             `json:"id" gorm:"primaryKey"`
	PatientID          int64             `json:"patient_id" gorm:"not null"`
	ClinicianID        int64             `json:"clinician_id" gorm:"not null"`
	PayerID            *int64            `json:"payer_id" gorm:"index"`
	PayerType          PayerType         `json:"payer_type" gorm:"type:text;not null;default:'self_pay'"`
	IsDraft            bool              `json:"is_draft" gorm:"not null;default:true"`
	Status             Status            `json:"status" gorm:"type:text;not null;default:'pending_approval';index"`
	InsuranceChecklist datatypes.JSONMap `json:"insurance_checklist" gorm:"type:jsonb"`
	SubmittedAt        *time.Time        `json:"submitted_at"`
	CreatedAt          time.Time         `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP;index"`
	UpdatedAt          time.Time         `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (Order) TableName() string { return "orders" }

// OrderLine is one priced product on an order. Amounts are in cents
// and line_total always equals unit_price times quantity.
type OrderLine struct {
	ID                 int64     `json:"id" gorm:"primaryKey"`
	OrderID            int64     `json:"order_id" gorm:"not null;index"`
	ProductID          int64     `json:"product_id" gorm:"not null;index"`
	Quantity           int64     `json:"quantity" gorm:"not null"`
	UnitCost           int64     `json:"unit_cost" gorm:"not null"`
	UnitPrice          int64     `json:"unit_price" gorm:"not null"`
	LineTotal          int64     `json:"line_total" gorm:"not null"`
	MeasurementFormURL *string   `json:"measurement_form_url" gorm:"type:text"`
	CreatedAt          time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (OrderLine) TableName() string { return "order_lines" }

// Patient is the demographic record owned by one order.
type Patient struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	FirstName string    `json:"first_name" gorm:"type:text;not null"`
	LastName  string    `json:"last_name" gorm:"type:text;not null"`
	Address   string    `json:"address" gorm:"type:text;not null"`
	Phone     string    `json:"phone" gorm:"type:text;not null"`
	Email     string    `json:"email" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (Patient) TableName() string { return "patients" }

// Clinician is the ordering provider record owned by one order.
type Clinician struct {
	ID            int64     `json:"id" gorm:"primaryKey"`
	FirstName     string    `json:"first_name" gorm:"type:text;not null"`
	LastName      string    `json:"last_name" gorm:"type:text;not null"`
	ClinicName    string    `json:"clinic_name" gorm:"type:text;not null"`
	ClinicAddress string    `json:"clinic_address" gorm:"type:text;not null"`
	Phone         string    `json:"phone" gorm:"type:text;not null"`
	Email         string    `json:"email" gorm:"type:text;not null"`
	CreatedAt     time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (Clinician) TableName() string { return "clinicians" }
