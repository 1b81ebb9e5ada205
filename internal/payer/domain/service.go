package domain

import (
	"context"
	"errors"
	"time"
)

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Response, error)
	List(ctx context.Context) ([]Response, error)
	Get(ctx context.Context, id string) (*Response, error)
	SetFee(ctx context.Context, req SetFeeRequest) (*FeeResponse, error)
	ListFees(ctx context.Context, payerID string) ([]FeeResponse, error)
}

type CreateRequest struct {
	Name string `json:"name"`
}

type SetFeeRequest struct {
	PayerID   string `json:"-"`
	HCPCSCode string `json:"hcpcs_code"`
	Rate      int64  `json:"rate"`
}

type Response struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type FeeResponse struct {
	ID        string    `json:"id"`
	PayerID   string    `json:"payer_id"`
	HCPCSCode string    `json:"hcpcs_code"`
	Rate      int64     `json:"rate"`
	CreatedAt time.Time `json:"created_at"`
}

var (
	ErrInvalidName  = errors.New("invalid_name")
	ErrInvalidID    = errors.New("invalid_id")
	ErrInvalidHCPCS = errors.New("invalid_hcpcs_code")
	ErrInvalidRate  = errors.New("invalid_rate")
	ErrNotFound     = errors.New("not_found")
)
