package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/orthoflow/orthoflow/internal/clock"
	"github.com/orthoflow/orthoflow/internal/payer/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Clock clock.Clock
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	repo  domain.Repository
	genID *snowflake.Node
	clock clock.Clock
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("payer.service"),
		repo:  p.Repo,
		genID: p.GenID,
		clock: p.Clock,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.Response, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.ErrInvalidName
	}

	p := &domain.Payer{
		ID:        s.genID.Generate().Int64(),
		Name:      name,
		CreatedAt: s.clock.Now(),
	}
	if err := s.repo.Create(ctx, s.db, p); err != nil {
		return nil, err
	}
	resp := toResponse(p)
	return &resp, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Response, error) {
	items, err := s.repo.FindAll(ctx, s.db)
	if err != nil {
		return nil, err
	}
	resp := make([]domain.Response, 0, len(items))
	for i := range items {
		resp = append(resp, toResponse(&items[i]))
	}
	return resp, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Response, error) {
	payerID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, domain.ErrInvalidID
	}
	item, err := s.repo.FindByID(ctx, s.db, payerID.Int64())
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	resp := toResponse(item)
	return &resp, nil
}

func (s *Service) SetFee(ctx context.Context, req domain.SetFeeRequest) (*domain.FeeResponse, error) {
	payerID, err := snowflake.ParseString(strings.TrimSpace(req.PayerID))
	if err != nil {
		return nil, domain.ErrInvalidID
	}
	hcpcs := strings.ToUpper(strings.TrimSpace(req.HCPCSCode))
	if hcpcs == "" {
		return nil, domain.ErrInvalidHCPCS
	}
	if req.Rate < 0 {
		return nil, domain.ErrInvalidRate
	}

	payer, err := s.repo.FindByID(ctx, s.db, payerID.Int64())
	if err != nil {
		return nil, err
	}
	if payer == nil {
		return nil, domain.ErrNotFound
	}

	fee := &domain.FeeSchedule{
		ID:        s.genID.Generate().Int64(),
		PayerID:   payer.ID,
		HCPCSCode: hcpcs,
		Rate:      req.Rate,
		CreatedAt: s.clock.Now(),
	}
	if err := s.repo.UpsertFee(ctx, s.db, fee); err != nil {
		return nil, err
	}
	resp := toFeeResponse(fee)
	return &resp, nil
}

func (s *Service) ListFees(ctx context.Context, payerID string) ([]domain.FeeResponse, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(payerID))
	if err != nil {
		return nil, domain.ErrInvalidID
	}
	payer, err := s.repo.FindByID(ctx, s.db, id.Int64())
	if err != nil {
		return nil, err
	}
	if payer == nil {
		return nil, domain.ErrNotFound
	}

	items, err := s.repo.FindFees(ctx, s.db, payer.ID)
	if err != nil {
		return nil, err
	}
	resp := make([]domain.FeeResponse, 0, len(items))
	for i := range items {
		resp = append(resp, toFeeResponse(&items[i]))
	}
	return resp, nil
}

func toResponse(p *domain.Payer) domain.Response {
	return domain.Response{
		ID:        snowflake.ID(p.ID).String(),
		Name:      p.Name,
		CreatedAt: p.CreatedAt,
	}
}

func toFeeResponse(f *domain.FeeSchedule) domain.FeeResponse {
	return domain.FeeResponse{
		ID:        snowflake.ID(f.ID).String(),
		PayerID:   snowflake.ID(f.PayerID).String(),
		HCPCSCode: f.HCPCSCode,
		Rate:      f.Rate,
		CreatedAt: f.CreatedAt,
	}
}
