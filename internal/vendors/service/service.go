package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/orthoflow/orthoflow/internal/clock"
	"github.com/orthoflow/orthoflow/internal/vendors/domain"
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
		log:   p.Log.Named("vendors.service"),
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

	v := &domain.Vendor{
		ID:        s.genID.Generate().Int64(),
		Name:      name,
		CreatedAt: s.clock.Now(),
	}
	if err := s.repo.Create(ctx, s.db, v); err != nil {
		return nil, err
	}
	resp := toResponse(v)
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
	vendorID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, domain.ErrInvalidID
	}
	item, err := s.repo.FindByID(ctx, s.db, vendorID.Int64())
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	resp := toResponse(item)
	return &resp, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	vendorID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return domain.ErrInvalidID
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		item, err := s.repo.FindByID(ctx, tx, vendorID.Int64())
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		count, err := s.repo.CountProducts(ctx, tx, item.ID)
		if err != nil {
			return err
		}
		if count > 0 {
			return domain.ErrHasProducts
		}
		return s.repo.Delete(ctx, tx, item.ID)
	})
}

func toResponse(v *domain.Vendor) domain.Response {
	return domain.Response{
		ID:        snowflake.ID(v.ID).String(),
		Name:      v.Name,
		CreatedAt: v.CreatedAt,
	}
}
