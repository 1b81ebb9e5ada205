package domain

import (
	"context"
	"errors"
	"time"
)

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Response, error)
	Get(ctx context.Context, id string) (*Response, error)
	List(ctx context.Context, req ListRequest) ([]Summary, error)
	Edit(ctx context.Context, req EditRequest) (*Response, error)
	Submit(ctx context.Context, id string) (*Response, error)
	ChangeStatus(ctx context.Context, id string, status string) (*Response, error)
	RegenerateDocument(ctx context.Context, id string, docType string) (*Response, error)
}

type PatientInput struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
}

type ClinicianInput struct {
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	ClinicName    string `json:"clinic_name"`
	ClinicAddress string `json:"clinic_address"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
}

type CreateRequest struct {
	Patient   PatientInput   `json:"patient"`
	Clinician ClinicianInput `json:"clinician"`
}

// LineInput is one incoming line on an edit. PriceOverride, when set,
// wins over every pricing rule.
type LineInput struct {
	ProductID          string  `json:"product_id"`
	Quantity           int64   `json:"quantity"`
	PriceOverride      *int64  `json:"price_override"`
	MeasurementFormURL *string `json:"measurement_form_url"`
}

// EditRequest replaces whatever subset of the draft it carries. A
// non-nil Lines slice replaces the full line list.
type EditRequest struct {
	ID                 string          `json:"-"`
	Patient            *PatientInput   `json:"patient"`
	Clinician          *ClinicianInput `json:"clinician"`
	Lines              *[]LineInput    `json:"lines"`
	PayerType          *string         `json:"payer_type"`
	PayerID            *string         `json:"payer_id"`
	InsuranceChecklist map[string]bool `json:"insurance_checklist"`
}

type ListRequest struct {
	Status      string
	PatientName string
	OrderID     string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

type LineResponse struct {
	ID                 string  `json:"id"`
	ProductID          string  `json:"product_id"`
	ProductName        string  `json:"product_name"`
	HCPCSCode          string  `json:"hcpcs_code"`
	Quantity           int64   `json:"quantity"`
	UnitCost           int64   `json:"unit_cost"`
	UnitPrice          int64   `json:"unit_price"`
	LineTotal          int64   `json:"line_total"`
	Margin             int64   `json:"margin"`
	MeasurementFormURL *string `json:"measurement_form_url,omitempty"`
}

type DocumentResponse struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	FileURL   string    `json:"file_url"`
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"created_at"`
}

type AuditEventResponse struct {
	ID        string         `json:"id"`
	EventType string         `json:"event_type"`
	ActorID   string         `json:"actor_id"`
	Payload   map[string]any `json:"payload"`
	CreatedAt time.Time      `json:"created_at"`
}

type Response struct {
	ID                 string               `json:"id"`
	IsDraft            bool                 `json:"is_draft"`
	Status             string               `json:"status"`
	StatusLabel        string               `json:"status_label"`
	PayerType          string               `json:"payer_type"`
	PayerID            *string              `json:"payer_id"`
	PayerName          *string              `json:"payer_name,omitempty"`
	InsuranceChecklist map[string]bool      `json:"insurance_checklist,omitempty"`
	Patient            PatientInput         `json:"patient"`
	Clinician          ClinicianInput       `json:"clinician"`
	Lines              []LineResponse       `json:"lines"`
	Total              int64                `json:"total"`
	Documents          []DocumentResponse   `json:"documents,omitempty"`
	AuditEvents        []AuditEventResponse `json:"audit_events,omitempty"`
	SubmittedAt        *time.Time           `json:"submitted_at"`
	CreatedAt          time.Time            `json:"created_at"`
	UpdatedAt          time.Time            `json:"updated_at"`
}

type Summary struct {
	ID          string     `json:"id"`
	IsDraft     bool       `json:"is_draft"`
	Status      string     `json:"status"`
	StatusLabel string     `json:"status_label"`
	PatientName string     `json:"patient_name"`
	SubmittedAt *time.Time `json:"submitted_at"`
	CreatedAt   time.Time  `json:"created_at"`
}

var (
	ErrInvalidID           = errors.New("invalid_id")
	ErrNotFound            = errors.New("not_found")
	ErrInvalidPatient      = errors.New("invalid_patient")
	ErrInvalidClinician    = errors.New("invalid_clinician")
	ErrInvalidProduct      = errors.New("invalid_product")
	ErrInvalidQuantity     = errors.New("invalid_quantity")
	ErrInvalidPayer        = errors.New("invalid_payer")
	ErrInvalidPayerType    = errors.New("invalid_payer_type")
	ErrInvalidStatus       = errors.New("invalid_status")
	ErrInvalidDocumentType = errors.New("invalid_document_type")
	ErrNotDraft            = errors.New("order_not_draft")
	ErrAlreadySubmitted    = errors.New("order_already_submitted")
	ErrDraftStatusChange   = errors.New("order_still_draft")
	ErrNoLines             = errors.New("order_has_no_lines")
	ErrChecklistIncomplete = errors.New("insurance_checklist_incomplete")
	ErrRendering           = errors.New("document_rendering_failed")
)
