package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/bwmarrin/snowflake"
	auditdomain "github.com/orthoflow/orthoflow/internal/audit/domain"
	"github.com/orthoflow/orthoflow/internal/clock"
	"github.com/orthoflow/orthoflow/internal/config"
	documentdomain "github.com/orthoflow/orthoflow/internal/document/domain"
	"github.com/orthoflow/orthoflow/internal/document/storage"
	"github.com/orthoflow/orthoflow/internal/observability/metrics"
	"github.com/orthoflow/orthoflow/internal/observability/obsctx"
	"github.com/orthoflow/orthoflow/internal/order/domain"
	"github.com/orthoflow/orthoflow/internal/order/policy"
	payerdomain "github.com/orthoflow/orthoflow/internal/payer/domain"
	"github.com/orthoflow/orthoflow/internal/pricing"
	productdomain "github.com/orthoflow/orthoflow/internal/product/domain"
	"github.com/orthoflow/orthoflow/internal/providers/pdf"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB       *gorm.DB
	Log      *zap.Logger
	GenID    *snowflake.Node
	Clock    clock.Clock
	Cfg      config.Config
	Repo     domain.Repository
	Products productdomain.Repository
	Payers   payerdomain.Repository
	Docs     documentdomain.Repository
	Audit    auditdomain.Repository
	Store    storage.Store
	Renderer pdf.Renderer
	Approval *policy.Approval
	Metrics  *metrics.Metrics
}

type Service struct {
	db       *gorm.DB
	log      *zap.Logger
	genID    *snowflake.Node
	clock    clock.Clock
	cfg      config.Config
	repo     domain.Repository
	products productdomain.Repository
	payers   payerdomain.Repository
	docs     documentdomain.Repository
	audit    auditdomain.Repository
	store    storage.Store
	renderer pdf.Renderer
	approval *policy.Approval
	metrics  *metrics.Metrics
}

func New(p Params) domain.Service {
	return &Service{
		db:       p.DB,
		log:      p.Log.Named("order.service"),
		genID:    p.GenID,
		clock:    p.Clock,
		cfg:      p.Cfg,
		repo:     p.Repo,
		products: p.Products,
		payers:   p.Payers,
		docs:     p.Docs,
		audit:    p.Audit,
		store:    p.Store,
		renderer: p.Renderer,
		approval: p.Approval,
		metrics:  p.Metrics,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.Response, error) {
	patient, err := patientFromInput(req.Patient)
	if err != nil {
		return nil, err
	}
	clinician, err := clinicianFromInput(req.Clinician)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	patient.ID = s.genID.Generate().Int64()
	patient.CreatedAt = now
	clinician.ID = s.genID.Generate().Int64()
	clinician.CreatedAt = now

	order := &domain.Order{
		ID:          s.genID.Generate().Int64(),
		PatientID:   patient.ID,
		ClinicianID: clinician.ID,
		PayerType:   domain.PayerTypeSelfPay,
		IsDraft:     true,
		Status:      domain.StatusPendingApproval,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	var resp *domain.Response
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.repo.InsertPatient(ctx, tx, patient); err != nil {
			return err
		}
		if err := s.repo.InsertClinician(ctx, tx, clinician); err != nil {
			return err
		}
		if err := s.repo.InsertOrder(ctx, tx, order); err != nil {
			return err
		}
		if err := s.appendEvent(ctx, tx, order.ID, auditdomain.EventOrderCreated, datatypes.JSONMap{
			"patient_name": patient.FirstName + " " + patient.LastName,
		}); err != nil {
			return err
		}
		var err error
		resp, err = s.buildResponse(ctx, tx, order)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.metrics.RecordOrderCreated(ctx)
	s.log.Info("order created", zap.String("order_id", resp.ID))
	return resp, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Response, error) {
	orderID, err := parseID(id)
	if err != nil {
		return nil, err
	}
	order, err := s.repo.FindByID(ctx, s.db, orderID, false)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return s.buildResponse(ctx, s.db, order)
}

func (s *Service) List(ctx context.Context, req domain.ListRequest) ([]domain.Summary, error) {
	if req.Status != "" && !domain.ValidStatus(domain.Status(req.Status)) {
		return nil, domain.ErrInvalidStatus
	}

	rows, err := s.repo.List(ctx, s.db, domain.ListFilter{
		Status:      req.Status,
		PatientName: strings.TrimSpace(req.PatientName),
		OrderID:     strings.TrimSpace(req.OrderID),
		CreatedFrom: req.CreatedFrom,
		CreatedTo:   req.CreatedTo,
	})
	if err != nil {
		return nil, err
	}

	out := make([]domain.Summary, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.Summary{
			ID:          snowflake.ID(row.Order.ID).String(),
			IsDraft:     row.Order.IsDraft,
			Status:      string(row.Order.Status),
			StatusLabel: domain.StatusLabel(row.Order.Status),
			PatientName: row.PatientFirstName + " " + row.PatientLastName,
			SubmittedAt: row.Order.SubmittedAt,
			CreatedAt:   row.Order.CreatedAt,
		})
	}
	return out, nil
}

func (s *Service) Edit(ctx context.Context, req domain.EditRequest) (*domain.Response, error) {
	orderID, err := parseID(req.ID)
	if err != nil {
		return nil, err
	}

	var resp *domain.Response
	err = s.db.Transaction(func(tx *gorm.DB) error {
		order, err := s.repo.FindByID(ctx, tx, orderID, true)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
		if !order.IsDraft {
			return domain.ErrNotDraft
		}

		var changed []string

		if req.Patient != nil {
			patient, err := patientFromInput(*req.Patient)
			if err != nil {
				return err
			}
			patient.ID = order.PatientID
			if err := s.repo.UpdatePatient(ctx, tx, patient); err != nil {
				return err
			}
			changed = append(changed, "patient")
		}
		if req.Clinician != nil {
			clinician, err := clinicianFromInput(*req.Clinician)
			if err != nil {
				return err
			}
			clinician.ID = order.ClinicianID
			if err := s.repo.UpdateClinician(ctx, tx, clinician); err != nil {
				return err
			}
			changed = append(changed, "clinician")
		}

		if req.PayerType != nil {
			pt := domain.PayerType(strings.TrimSpace(*req.PayerType))
			if pt != domain.PayerTypeSelfPay && pt != domain.PayerTypeInsurance {
				return domain.ErrInvalidPayerType
			}
			order.PayerType = pt
			if pt == domain.PayerTypeSelfPay {
				order.PayerID = nil
				order.InsuranceChecklist = nil
			}
			changed = append(changed, "payerType")
		}
		if req.PayerID != nil {
			payerID, err := snowflake.ParseString(strings.TrimSpace(*req.PayerID))
			if err != nil {
				return domain.ErrInvalidPayer
			}
			payer, err := s.payers.FindByID(ctx, tx, payerID.Int64())
			if err != nil {
				return err
			}
			if payer == nil {
				return domain.ErrInvalidPayer
			}
			id := payer.ID
			order.PayerID = &id
			changed = append(changed, "payerId")
		}
		if order.PayerType == domain.PayerTypeInsurance && order.PayerID == nil {
			return domain.ErrInvalidPayer
		}
		if req.InsuranceChecklist != nil {
			order.InsuranceChecklist = policy.ChecklistToJSON(req.InsuranceChecklist)
			changed = append(changed, "insuranceChecklist")
		}

		if req.Lines != nil {
			lines, err := s.priceLines(ctx, tx, order, *req.Lines)
			if err != nil {
				return err
			}
			if err := s.repo.ReplaceLines(ctx, tx, order.ID, lines); err != nil {
				return err
			}
			changed = append(changed, "lines")
		}

		order.UpdatedAt = s.clock.Now()
		if err := s.repo.UpdateOrder(ctx, tx, order); err != nil {
			return err
		}

		if err := s.appendEvent(ctx, tx, order.ID, auditdomain.EventOrderUpdated, datatypes.JSONMap{
			"fields": changed,
		}); err != nil {
			return err
		}

		resp, err = s.buildResponse(ctx, tx, order)
		return err
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *Service) Submit(ctx context.Context, id string) (*domain.Response, error) {
	orderID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var (
		resp         *domain.Response
		status       domain.Status
		autoApproved bool
		docCount     int
	)
	err = s.db.Transaction(func(tx *gorm.DB) error {
		order, err := s.repo.FindByID(ctx, tx, orderID, true)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
		if !order.IsDraft {
			return domain.ErrAlreadySubmitted
		}

		lines, err := s.repo.FindLines(ctx, tx, order.ID)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return domain.ErrNoLines
		}
		if !policy.IsChecklistComplete(order.PayerType, policy.ChecklistFromJSON(order.InsuranceChecklist)) {
			return domain.ErrChecklistIncomplete
		}

		requiresApproval := s.approval.RequiresApproval(lines)
		status = domain.StatusApproved
		if requiresApproval {
			status = domain.StatusPendingApproval
		}
		autoApproved = !requiresApproval

		// All three document kinds share the next unused encounter
		// version so their counters stay in lockstep per submission.
		version, err := s.docs.NextVersion(ctx, tx, order.ID, documentdomain.TypeEncounter)
		if err != nil {
			return err
		}

		snap, err := s.buildSnapshot(ctx, tx, order, lines, version)
		if err != nil {
			return err
		}

		rendered, err := s.renderAll(ctx, snap)
		if err != nil {
			return fmt.Errorf("%w: %v", domain.ErrRendering, err)
		}

		docIDs := make([]string, 0, len(documentdomain.Types))
		for _, docType := range documentdomain.Types {
			fileURL, err := s.store.Put(order.ID, docType, version, rendered[docType])
			if err != nil {
				return fmt.Errorf("%w: %v", domain.ErrRendering, err)
			}
			doc := &documentdomain.Document{
				ID:        s.genID.Generate().Int64(),
				OrderID:   order.ID,
				Type:      docType,
				FileURL:   fileURL,
				Version:   version,
				CreatedAt: s.clock.Now(),
			}
			if err := s.docs.Insert(ctx, tx, doc); err != nil {
				return err
			}
			docIDs = append(docIDs, snowflake.ID(doc.ID).String())
		}
		docCount = len(docIDs)

		now := s.clock.Now()
		order.IsDraft = false
		order.SubmittedAt = &now
		order.Status = status
		order.UpdatedAt = now
		if err := s.repo.UpdateOrder(ctx, tx, order); err != nil {
			return err
		}

		if err := s.appendEvent(ctx, tx, order.ID, auditdomain.EventOrderSubmitted, datatypes.JSONMap{
			"document_ids":  docIDs,
			"auto_approved": autoApproved,
			"status":        string(status),
		}); err != nil {
			return err
		}
		if autoApproved {
			if err := s.appendEvent(ctx, tx, order.ID, auditdomain.EventStatusChanged, datatypes.JSONMap{
				"to":       string(domain.StatusApproved),
				"to_label": domain.StatusLabel(domain.StatusApproved),
				"note":     "order auto-approved; no item requires manual approval",
			}); err != nil {
				return err
			}
		}

		resp, err = s.buildResponse(ctx, tx, order)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.metrics.RecordOrderSubmitted(ctx, string(status), autoApproved)
	for _, docType := range documentdomain.Types {
		s.metrics.RecordDocumentGenerated(ctx, string(docType))
	}
	s.log.Info("order submitted",
		zap.String("order_id", resp.ID),
		zap.String("status", string(status)),
		zap.Bool("auto_approved", autoApproved),
		zap.Int("documents", docCount),
	)
	return resp, nil
}

func (s *Service) ChangeStatus(ctx context.Context, id string, status string) (*domain.Response, error) {
	orderID, err := parseID(id)
	if err != nil {
		return nil, err
	}
	target := domain.Status(strings.TrimSpace(status))
	if !domain.ValidStatus(target) {
		return nil, domain.ErrInvalidStatus
	}

	var resp *domain.Response
	err = s.db.Transaction(func(tx *gorm.DB) error {
		order, err := s.repo.FindByID(ctx, tx, orderID, true)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
		if order.IsDraft {
			return domain.ErrDraftStatusChange
		}

		from := order.Status
		order.Status = target
		order.UpdatedAt = s.clock.Now()
		if err := s.repo.UpdateOrder(ctx, tx, order); err != nil {
			return err
		}

		if err := s.appendEvent(ctx, tx, order.ID, auditdomain.EventStatusChanged, datatypes.JSONMap{
			"from":       string(from),
			"from_label": domain.StatusLabel(from),
			"to":         string(target),
			"to_label":   domain.StatusLabel(target),
		}); err != nil {
			return err
		}

		resp, err = s.buildResponse(ctx, tx, order)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.metrics.RecordStatusChange(ctx, string(target))
	return resp, nil
}

func (s *Service) RegenerateDocument(ctx context.Context, id string, docType string) (*domain.Response, error) {
	orderID, err := parseID(id)
	if err != nil {
		return nil, err
	}
	target := documentdomain.Type(strings.ToUpper(strings.TrimSpace(docType)))
	if !documentdomain.ValidType(target) {
		return nil, domain.ErrInvalidDocumentType
	}

	var resp *domain.Response
	err = s.db.Transaction(func(tx *gorm.DB) error {
		order, err := s.repo.FindByID(ctx, tx, orderID, true)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}

		lines, err := s.repo.FindLines(ctx, tx, order.ID)
		if err != nil {
			return err
		}

		version, err := s.docs.NextVersion(ctx, tx, order.ID, target)
		if err != nil {
			return err
		}
		snap, err := s.buildSnapshot(ctx, tx, order, lines, version)
		if err != nil {
			return err
		}

		renderCtx, cancel := context.WithTimeout(ctx, s.cfg.RenderTimeout)
		defer cancel()
		data, err := s.renderer.Render(renderCtx, target, snap)
		if err != nil {
			return fmt.Errorf("%w: %v", domain.ErrRendering, err)
		}

		fileURL, err := s.store.Put(order.ID, target, version, data)
		if err != nil {
			return fmt.Errorf("%w: %v", domain.ErrRendering, err)
		}
		doc := &documentdomain.Document{
			ID:        s.genID.Generate().Int64(),
			OrderID:   order.ID,
			Type:      target,
			FileURL:   fileURL,
			Version:   version,
			CreatedAt: s.clock.Now(),
		}
		if err := s.docs.Insert(ctx, tx, doc); err != nil {
			return err
		}

		if err := s.appendEvent(ctx, tx, order.ID, auditdomain.EventPDFGenerated, datatypes.JSONMap{
			"document_id": snowflake.ID(doc.ID).String(),
			"type":        string(target),
			"version":     version,
		}); err != nil {
			return err
		}

		resp, err = s.buildResponse(ctx, tx, order)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.metrics.RecordDocumentGenerated(ctx, string(target))
	return resp, nil
}

// priceLines resolves products, prices each incoming line, and builds
// the replacement line rows. Totals are always recomputed here, never
// trusted from the caller.
func (s *Service) priceLines(ctx context.Context, tx *gorm.DB, order *domain.Order, inputs []domain.LineInput) ([]domain.OrderLine, error) {
	lines := make([]domain.OrderLine, 0, len(inputs))
	for _, in := range inputs {
		productID, err := snowflake.ParseString(strings.TrimSpace(in.ProductID))
		if err != nil {
			return nil, domain.ErrInvalidProduct
		}
		if in.Quantity < 1 {
			return nil, domain.ErrInvalidQuantity
		}
		product, err := s.products.FindByID(ctx, tx, productID.Int64())
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrInvalidProduct
		}

		var payerRate *int64
		if order.PayerType == domain.PayerTypeInsurance && order.PayerID != nil {
			rate, ok, err := s.payers.FindFeeRate(ctx, tx, *order.PayerID, product.HCPCSCode)
			if err != nil {
				return nil, err
			}
			if ok {
				payerRate = &rate
			}
		}

		quote := pricing.Compute(pricing.Input{
			Quantity:  in.Quantity,
			UnitCost:  product.UnitCost,
			MSRP:      product.MSRP,
			PayerRate: payerRate,
			Override:  in.PriceOverride,
		})

		lines = append(lines, domain.OrderLine{
			ID:                 s.genID.Generate().Int64(),
			OrderID:            order.ID,
			ProductID:          product.ID,
			Quantity:           in.Quantity,
			UnitCost:           product.UnitCost,
			UnitPrice:          quote.UnitPrice,
			LineTotal:          quote.LineTotal,
			MeasurementFormURL: in.MeasurementFormURL,
			CreatedAt:          s.clock.Now(),
		})
	}
	return lines, nil
}

// renderAll runs the three renders concurrently under one deadline.
// Any failure or timeout fails the whole set.
func (s *Service) renderAll(ctx context.Context, snap pdf.Snapshot) (map[documentdomain.Type][]byte, error) {
	renderCtx, cancel := context.WithTimeout(ctx, s.cfg.RenderTimeout)
	defer cancel()

	out := make(map[documentdomain.Type][]byte, len(documentdomain.Types))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(renderCtx)
	for _, docType := range documentdomain.Types {
		docType := docType
		g.Go(func() error {
			data, err := s.renderer.Render(gctx, docType, snap)
			if err != nil {
				return fmt.Errorf("render %s: %w", docType, err)
			}
			mu.Lock()
			out[docType] = data
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) buildSnapshot(ctx context.Context, tx *gorm.DB, order *domain.Order, lines []domain.LineDetail, version int) (pdf.Snapshot, error) {
	patient, err := s.repo.FindPatient(ctx, tx, order.PatientID)
	if err != nil {
		return pdf.Snapshot{}, err
	}
	clinician, err := s.repo.FindClinician(ctx, tx, order.ClinicianID)
	if err != nil {
		return pdf.Snapshot{}, err
	}
	if patient == nil || clinician == nil {
		return pdf.Snapshot{}, domain.ErrNotFound
	}

	payerName := ""
	if order.PayerID != nil {
		payer, err := s.payers.FindByID(ctx, tx, *order.PayerID)
		if err != nil {
			return pdf.Snapshot{}, err
		}
		if payer != nil {
			payerName = payer.Name
		}
	}

	snap := pdf.Snapshot{
		OrderID:    snowflake.ID(order.ID).String(),
		Status:     string(order.Status),
		PayerType:  string(order.PayerType),
		PayerName:  payerName,
		ClinicName: clinician.ClinicName,
		Patient: pdf.Party{
			Name:    patient.FirstName + " " + patient.LastName,
			Address: patient.Address,
			Phone:   patient.Phone,
			Email:   patient.Email,
		},
		Clinician: pdf.Party{
			Name:    clinician.FirstName + " " + clinician.LastName,
			Address: clinician.ClinicAddress,
			Phone:   clinician.Phone,
			Email:   clinician.Email,
		},
		Version:     version,
		GeneratedAt: s.clock.Now(),
	}
	for _, line := range lines {
		snap.Lines = append(snap.Lines, pdf.Line{
			ProductName: line.ProductName,
			HCPCSCode:   line.HCPCSCode,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			LineTotal:   line.LineTotal,
		})
		snap.Total += line.LineTotal
	}
	return snap, nil
}

func (s *Service) buildResponse(ctx context.Context, tx *gorm.DB, order *domain.Order) (*domain.Response, error) {
	patient, err := s.repo.FindPatient(ctx, tx, order.PatientID)
	if err != nil {
		return nil, err
	}
	clinician, err := s.repo.FindClinician(ctx, tx, order.ClinicianID)
	if err != nil {
		return nil, err
	}
	if patient == nil || clinician == nil {
		return nil, domain.ErrNotFound
	}

	lines, err := s.repo.FindLines(ctx, tx, order.ID)
	if err != nil {
		return nil, err
	}
	docs, err := s.docs.ListByOrder(ctx, tx, order.ID)
	if err != nil {
		return nil, err
	}
	events, err := s.audit.ListByOrder(ctx, tx, order.ID)
	if err != nil {
		return nil, err
	}

	resp := &domain.Response{
		ID:          snowflake.ID(order.ID).String(),
		IsDraft:     order.IsDraft,
		Status:      string(order.Status),
		StatusLabel: domain.StatusLabel(order.Status),
		PayerType:   string(order.PayerType),
		Patient: domain.PatientInput{
			FirstName: patient.FirstName,
			LastName:  patient.LastName,
			Address:   patient.Address,
			Phone:     patient.Phone,
			Email:     patient.Email,
		},
		Clinician: domain.ClinicianInput{
			FirstName:     clinician.FirstName,
			LastName:      clinician.LastName,
			ClinicName:    clinician.ClinicName,
			ClinicAddress: clinician.ClinicAddress,
			Phone:         clinician.Phone,
			Email:         clinician.Email,
		},
		SubmittedAt: order.SubmittedAt,
		CreatedAt:   order.CreatedAt,
		UpdatedAt:   order.UpdatedAt,
	}

	if order.PayerID != nil {
		id := snowflake.ID(*order.PayerID).String()
		resp.PayerID = &id
		payer, err := s.payers.FindByID(ctx, tx, *order.PayerID)
		if err != nil {
			return nil, err
		}
		if payer != nil {
			resp.PayerName = &payer.Name
		}
	}
	if order.InsuranceChecklist != nil {
		resp.InsuranceChecklist = policy.ChecklistFromJSON(order.InsuranceChecklist)
	}

	resp.Lines = make([]domain.LineResponse, 0, len(lines))
	for _, line := range lines {
		resp.Lines = append(resp.Lines, domain.LineResponse{
			ID:                 snowflake.ID(line.ID).String(),
			ProductID:          snowflake.ID(line.ProductID).String(),
			ProductName:        line.ProductName,
			HCPCSCode:          line.HCPCSCode,
			Quantity:           line.Quantity,
			UnitCost:           line.UnitCost,
			UnitPrice:          line.UnitPrice,
			LineTotal:          line.LineTotal,
			Margin:             (line.UnitPrice - line.UnitCost) * line.Quantity,
			MeasurementFormURL: line.MeasurementFormURL,
		})
		resp.Total += line.LineTotal
	}

	resp.Documents = make([]domain.DocumentResponse, 0, len(docs))
	for _, doc := range docs {
		resp.Documents = append(resp.Documents, domain.DocumentResponse{
			ID:        snowflake.ID(doc.ID).String(),
			Type:      string(doc.Type),
			FileURL:   doc.FileURL,
			Version:   doc.Version,
			CreatedAt: doc.CreatedAt,
		})
	}

	resp.AuditEvents = make([]domain.AuditEventResponse, 0, len(events))
	for _, ev := range events {
		resp.AuditEvents = append(resp.AuditEvents, domain.AuditEventResponse{
			ID:        snowflake.ID(ev.ID).String(),
			EventType: string(ev.EventType),
			ActorID:   ev.ActorID,
			Payload:   map[string]any(ev.Payload),
			CreatedAt: ev.CreatedAt,
		})
	}

	return resp, nil
}

func (s *Service) appendEvent(ctx context.Context, tx *gorm.DB, orderID int64, eventType auditdomain.EventType, payload datatypes.JSONMap) error {
	actor := obsctx.ActorIDFromContext(ctx)
	if actor == "" {
		actor = "system"
	}
	return s.audit.Insert(ctx, tx, &auditdomain.AuditEvent{
		ID:        s.genID.Generate().Int64(),
		OrderID:   orderID,
		ActorID:   actor,
		EventType: eventType,
		Payload:   payload,
		CreatedAt: s.clock.Now(),
	})
}

func parseID(id string) (int64, error) {
	parsed, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return 0, domain.ErrInvalidID
	}
	return parsed.Int64(), nil
}

func patientFromInput(in domain.PatientInput) (*domain.Patient, error) {
	p := &domain.Patient{
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		Address:   strings.TrimSpace(in.Address),
		Phone:     strings.TrimSpace(in.Phone),
		Email:     strings.TrimSpace(in.Email),
	}
	if p.FirstName == "" || p.LastName == "" || p.Address == "" || p.Phone == "" || p.Email == "" {
		return nil, domain.ErrInvalidPatient
	}
	return p, nil
}

func clinicianFromInput(in domain.ClinicianInput) (*domain.Clinician, error) {
	c := &domain.Clinician{
		FirstName:     strings.TrimSpace(in.FirstName),
		LastName:      strings.TrimSpace(in.LastName),
		ClinicName:    strings.TrimSpace(in.ClinicName),
		ClinicAddress: strings.TrimSpace(in.ClinicAddress),
		Phone:         strings.TrimSpace(in.Phone),
		Email:         strings.TrimSpace(in.Email),
	}
	if c.FirstName == "" || c.LastName == "" || c.ClinicName == "" || c.ClinicAddress == "" || c.Phone == "" || c.Email == "" {
		return nil, domain.ErrInvalidClinician
	}
	return c, nil
}
