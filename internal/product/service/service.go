package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/orthoflow/orthoflow/internal/clock"
	"github.com/orthoflow/orthoflow/internal/product/domain"
	vendordomain "github.com/orthoflow/orthoflow/internal/vendors/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB      *gorm.DB
	Log     *zap.Logger
	GenID   *snowflake.Node
	Clock   clock.Clock
	Repo    domain.Repository
	Vendors vendordomain.Repository
}

type Service struct {
	db      *gorm.DB
	log     *zap.Logger
	repo    domain.Repository
	vendors vendordomain.Repository
	genID   *snowflake.Node
	clock   clock.Clock
}

func New(p Params) domain.Service {
	return &Service{
		db:      p.DB,
		log:     p.Log.Named("product.service"),
		repo:    p.Repo,
		vendors: p.Vendors,
		genID:   p.GenID,
		clock:   p.Clock,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.Response, error) {
	vendorID, err := snowflake.ParseString(strings.TrimSpace(req.VendorID))
	if err != nil {
		return nil, domain.ErrInvalidVendor
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.ErrInvalidName
	}
	hcpcs := strings.ToUpper(strings.TrimSpace(req.HCPCSCode))
	if hcpcs == "" {
		return nil, domain.ErrInvalidHCPCS
	}
	if req.UnitCost < 0 || req.MSRP < 0 {
		return nil, domain.ErrInvalidAmount
	}

	vendor, err := s.vendors.FindByID(ctx, s.db, vendorID.Int64())
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, domain.ErrInvalidVendor
	}

	now := s.clock.Now()
	p := &domain.Product{
		ID:                      s.genID.Generate().Int64(),
		VendorID:                vendor.ID,
		Name:                    name,
		HCPCSCode:               hcpcs,
		UnitCost:                req.UnitCost,
		MSRP:                    req.MSRP,
		Category:                strings.TrimSpace(req.Category),
		MeasurementFormRequired: req.MeasurementFormRequired,
		CreatedAt:               now,
		UpdatedAt:               now,
	}
	if err := s.repo.Create(ctx, s.db, p); err != nil {
		return nil, err
	}
	resp := toResponse(p)
	return &resp, nil
}

func (s *Service) List(ctx context.Context, req domain.ListRequest) ([]domain.Response, error) {
	filter := domain.ListFilter{
		Category:  strings.TrimSpace(req.Category),
		HCPCSCode: strings.ToUpper(strings.TrimSpace(req.HCPCSCode)),
	}
	if v := strings.TrimSpace(req.VendorID); v != "" {
		vendorID, err := snowflake.ParseString(v)
		if err != nil {
			return nil, domain.ErrInvalidVendor
		}
		filter.VendorID = vendorID.Int64()
	}

	items, err := s.repo.List(ctx, s.db, filter)
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
	productID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, domain.ErrInvalidID
	}
	item, err := s.repo.FindByID(ctx, s.db, productID.Int64())
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	resp := toResponse(item)
	return &resp, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateRequest) (*domain.Response, error) {
	productID, err := snowflake.ParseString(strings.TrimSpace(req.ID))
	if err != nil {
		return nil, domain.ErrInvalidID
	}
	item, err := s.repo.FindByID(ctx, s.db, productID.Int64())
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, domain.ErrInvalidName
		}
		item.Name = name
	}
	if req.HCPCSCode != nil {
		hcpcs := strings.ToUpper(strings.TrimSpace(*req.HCPCSCode))
		if hcpcs == "" {
			return nil, domain.ErrInvalidHCPCS
		}
		item.HCPCSCode = hcpcs
	}
	if req.UnitCost != nil {
		if *req.UnitCost < 0 {
			return nil, domain.ErrInvalidAmount
		}
		item.UnitCost = *req.UnitCost
	}
	if req.MSRP != nil {
		if *req.MSRP < 0 {
			return nil, domain.ErrInvalidAmount
		}
		item.MSRP = *req.MSRP
	}
	if req.Category != nil {
		item.Category = strings.TrimSpace(*req.Category)
	}
	if req.MeasurementFormRequired != nil {
		item.MeasurementFormRequired = *req.MeasurementFormRequired
	}

	item.UpdatedAt = s.clock.Now()
	if err := s.repo.Update(ctx, s.db, item); err != nil {
		return nil, err
	}
	resp := toResponse(item)
	return &resp, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	productID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return domain.ErrInvalidID
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		item, err := s.repo.FindByID(ctx, tx, productID.Int64())
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		count, err := s.repo.CountOrderLines(ctx, tx, item.ID)
		if err != nil {
			return err
		}
		if count > 0 {
			return domain.ErrInUse
		}
		return s.repo.Delete(ctx, tx, item.ID)
	})
}

func toResponse(p *domain.Product) domain.Response {
	return domain.Response{
		ID:                      snowflake.ID(p.ID).String(),
		VendorID:                snowflake.ID(p.VendorID).String(),
		Name:                    p.Name,
		HCPCSCode:               p.HCPCSCode,
		UnitCost:                p.UnitCost,
		MSRP:                    p.MSRP,
		Category:                p.Category,
		MeasurementFormRequired: p.MeasurementFormRequired,
		CreatedAt:               p.CreatedAt,
		UpdatedAt:               p.UpdatedAt,
	}
}
