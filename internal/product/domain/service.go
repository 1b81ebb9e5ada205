package domain

import (
	"context"
	"errors"
	"time"
)

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Response, error)
	List(ctx context.Context, req ListRequest) ([]Response, error)
	Get(ctx context.Context, id string) (*Response, error)
	Update(ctx context.Context, req UpdateRequest) (*Response, error)
	Delete(ctx context.Context, id string) error
}

type ListRequest struct {
	VendorID  string
	Category  string
	HCPCSCode string
}

type CreateRequest struct {
	VendorID                string `json:"vendor_id"`
	Name                    string `json:"name"`
	HCPCSCode               string `json:"hcpcs_code"`
	UnitCost                int64  `json:"unit_cost"`
	MSRP                    int64  `json:"msrp"`
	Category                string `json:"category"`
	MeasurementFormRequired bool   `json:"measurement_form_required"`
}

type UpdateRequest struct {
	ID                      string `json:"-"`
	Name                    *string `json:"name"`
	HCPCSCode               *string `json:"hcpcs_code"`
	UnitCost                *int64  `json:"unit_cost"`
	MSRP                    *int64  `json:"msrp"`
	Category                *string `json:"category"`
	MeasurementFormRequired *bool   `json:"measurement_form_required"`
}

type Response struct {
	ID                      string    `json:"id"`
	VendorID                string    `json:"vendor_id"`
	Name                    string    `json:"name"`
	HCPCSCode               string    `json:"hcpcs_code"`
	UnitCost                int64     `json:"unit_cost"`
	MSRP                    int64     `json:"msrp"`
	Category                string    `json:"category"`
	MeasurementFormRequired bool      `json:"measurement_form_required"`
	CreatedAt               time.Time `json:"created_at"`
	UpdatedAt               time.Time `json:"updated_at"`
}

var (
	ErrInvalidVendor = errors.New("invalid_vendor")
	ErrInvalidName   = errors.New("invalid_name")
	ErrInvalidHCPCS  = errors.New("invalid_hcpcs_code")
	ErrInvalidAmount = errors.New("invalid_amount")
	ErrInvalidID     = errors.New("invalid_id")
	ErrNotFound      = errors.New("not_found")
	ErrInUse         = errors.New("product_in_use")
)
