package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	auditrepo "github.com/orthoflow/orthoflow/internal/audit/repository"
	"github.com/orthoflow/orthoflow/internal/clock"
	"github.com/orthoflow/orthoflow/internal/config"
	documentdomain "github.com/orthoflow/orthoflow/internal/document/domain"
	docrepo "github.com/orthoflow/orthoflow/internal/document/repository"
	"github.com/orthoflow/orthoflow/internal/document/storage"
	"github.com/orthoflow/orthoflow/internal/order/domain"
	"github.com/orthoflow/orthoflow/internal/order/policy"
	"github.com/orthoflow/orthoflow/internal/order/repository"
	payerrepo "github.com/orthoflow/orthoflow/internal/payer/repository"
	productrepo "github.com/orthoflow/orthoflow/internal/product/repository"
	"github.com/orthoflow/orthoflow/internal/providers/pdf"
	"github.com/orthoflow/orthoflow/internal/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"
)

// Seeded catalog references (ids from the seed data set).
const (
	productWristSplint = "1005" // L3908, msrp 75.00
	productAFO         = "1002" // L1906, msrp 240.00
	productTLSO        = "1008" // L0456, in the approval set
	payerMedicare      = "201"  // fee schedule has L1906=185.00, not L3908
)

type stubRenderer struct {
	err   error
	block bool
}

func (r *stubRenderer) Render(ctx context.Context, docType documentdomain.Type, snap pdf.Snapshot) ([]byte, error) {
	if r.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if r.err != nil {
		return nil, r.err
	}
	return []byte("%PDF-1.4 " + string(docType)), nil
}

type fixture struct {
	svc      domain.Service
	db       *gorm.DB
	clk      *clock.FakeClock
	renderer *stubRenderer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, seed.EnsureSchema(db))
	require.NoError(t, seed.EnsureCatalog(db))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	cfg := config.Config{
		UploadDir:     t.TempDir(),
		UploadBaseURL: "/files",
		RenderTimeout: 2 * time.Second,
	}
	store, err := storage.NewLocalStore(cfg, zaptest.NewLogger(t))
	require.NoError(t, err)

	renderer := &stubRenderer{}
	clk := clock.NewFakeClock(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))

	svc := New(Params{
		DB:       db,
		Log:      zaptest.NewLogger(t),
		GenID:    node,
		Clock:    clk,
		Cfg:      cfg,
		Repo:     repository.Provide(),
		Products: productrepo.Provide(),
		Payers:   payerrepo.Provide(),
		Docs:     docrepo.Provide(),
		Audit:    auditrepo.Provide(),
		Store:    store,
		Renderer: renderer,
		Approval: policy.NewApproval(config.NewStaticApprovalConfigHolder("L0456", "L0120")),
	})

	return &fixture{svc: svc, db: db, clk: clk, renderer: renderer}
}

func validCreateRequest() domain.CreateRequest {
	return domain.CreateRequest{
		Patient: domain.PatientInput{
			FirstName: "Jane",
			LastName:  "Miller",
			Address:   "44 Cedar St, Portland OR",
			Phone:     "503-555-0188",
			Email:     "jane.miller@example.com",
		},
		Clinician: domain.ClinicianInput{
			FirstName:     "Robert",
			LastName:      "Okafor",
			ClinicName:    "Cascade Orthopedics",
			ClinicAddress: "900 Hospital Way, Portland OR",
			Phone:         "503-555-0102",
			Email:         "r.okafor@cascadeortho.example.com",
		},
	}
}

func createDraft(t *testing.T, f *fixture) string {
	t.Helper()
	resp, err := f.svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)
	return resp.ID
}

func editLines(t *testing.T, f *fixture, orderID string, lines []domain.LineInput) *domain.Response {
	t.Helper()
	resp, err := f.svc.Edit(context.Background(), domain.EditRequest{
		ID:    orderID,
		Lines: &lines,
	})
	require.NoError(t, err)
	return resp
}

func eventTypes(resp *domain.Response) []string {
	out := make([]string, 0, len(resp.AuditEvents))
	for _, ev := range resp.AuditEvents {
		out = append(out, ev.EventType)
	}
	return out
}

func fullChecklist() map[string]bool {
	flags := make(map[string]bool, len(policy.ChecklistFlags))
	for _, flag := range policy.ChecklistFlags {
		flags[flag] = true
	}
	return flags
}

func strPtr(v string) *string { return &v }
func int64Ptr(v int64) *int64 { return &v }

func TestCreateOrderStartsAsDraft(t *testing.T) {
	f := newFixture(t)

	resp, err := f.svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	assert.True(t, resp.IsDraft)
	assert.Equal(t, "self_pay", resp.PayerType)
	assert.Nil(t, resp.PayerID)
	assert.Nil(t, resp.SubmittedAt)
	assert.Empty(t, resp.Lines)
	assert.Empty(t, resp.Documents)
	assert.Equal(t, []string{"ORDER_CREATED"}, eventTypes(resp))
}

func TestCreateOrderRequiresAllFields(t *testing.T) {
	f := newFixture(t)

	req := validCreateRequest()
	req.Patient.Email = "  "
	_, err := f.svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrInvalidPatient)

	req = validCreateRequest()
	req.Clinician.ClinicName = ""
	_, err = f.svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrInvalidClinician)
}

func TestEditReplacesLineListWholesale(t *testing.T) {
	f := newFixture(t)
	orderID := createDraft(t, f)

	resp := editLines(t, f, orderID, []domain.LineInput{
		{ProductID: productWristSplint, Quantity: 1},
		{ProductID: productAFO, Quantity: 1},
	})
	require.Len(t, resp.Lines, 2)

	resp = editLines(t, f, orderID, []domain.LineInput{
		{ProductID: productWristSplint, Quantity: 3},
	})
	require.Len(t, resp.Lines, 1)
	assert.Equal(t, int64(3), resp.Lines[0].Quantity)
	assert.Equal(t, int64(7500), resp.Lines[0].UnitPrice)
	assert.Equal(t, int64(22500), resp.Lines[0].LineTotal)
	assert.Equal(t, int64(22500), resp.Total)
}

func TestEditRecordsChangedFields(t *testing.T) {
	f := newFixture(t)
	orderID := createDraft(t, f)

	resp, err := f.svc.Edit(context.Background(), domain.EditRequest{
		ID: orderID,
		Patient: &domain.PatientInput{
			FirstName: "Janet",
			LastName:  "Miller",
			Address:   "44 Cedar St, Portland OR",
			Phone:     "503-555-0188",
			Email:     "janet.miller@example.com",
		},
	})
	require.NoError(t, err)

	last := resp.AuditEvents[len(resp.AuditEvents)-1]
	assert.Equal(t, "ORDER_UPDATED", last.EventType)
	assert.Equal(t, []any{"patient"}, last.Payload["fields"])
	assert.Equal(t, "Janet", resp.Patient.FirstName)
}

func TestEditRejectedAfterSubmit(t *testing.T) {
	f := newFixture(t)
	orderID := createDraft(t, f)
	editLines(t, f, orderID, []domain.LineInput{{ProductID: productWristSplint, Quantity: 1}})

	_, err := f.svc.Submit(context.Background(), orderID)
	require.NoError(t, err)

	lines := []domain.LineInput{{ProductID: productAFO, Quantity: 1}}
	_, err = f.svc.Edit(context.Background(), domain.EditRequest{ID: orderID, Lines: &lines})
	assert.ErrorIs(t, err, domain.ErrNotDraft)
}

func TestEditInsuranceRequiresPayer(t *testing.T) {
	f := newFixture(t)
	orderID := createDraft(t, f)

	_, err := f.svc.Edit(context.Background(), domain.EditRequest{
		ID:        orderID,
		PayerType: strPtr("insurance"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidPayer)

	_, err = f.svc.Edit(context.Background(), domain.EditRequest{
		ID:        orderID,
		PayerType: strPtr("insurance"),
		PayerID:   strPtr(payerMedicare),
	})
	assert.NoError(t, err)
}

func TestInsurancePricingUsesFeeScheduleThenMSRP(t *testing.T) {
	f := newFixture(t)
	orderID := createDraft(t, f)

	resp, err := f.svc.Edit(context.Background(), domain.EditRequest{
		ID:        orderID,
		PayerType: strPtr("insurance"),
		PayerID:   strPtr(payerMedicare),
		Lines: &[]domain.LineInput{
			{ProductID: productAFO, Quantity: 1},         // Medicare covers L1906 at 185.00
			{ProductID: productWristSplint, Quantity: 1}, // no Medicare entry for L3908
		},
	})
	require.NoError(t, err)
	require.Len(t, resp.Lines, 2)

	assert.Equal(t, int64(18500), resp.Lines[0].UnitPrice)
	assert.Equal(t, int64(7500), resp.Lines[1].UnitPrice)
	assert.Equal(t, int64(26000), resp.Total)
}

func TestPriceOverrideWins(t *testing.T) {
	f := newFixture(t)
	orderID := createDraft(t, f)

	resp, err := f.svc.Edit(context.Background(), domain.EditRequest{
		ID:        orderID,
		PayerType: strPtr("insurance"),
		PayerID:   strPtr(payerMedicare),
		Lines: &[]domain.LineInput{
			{ProductID: productAFO, Quantity: 2, PriceOverride: int64Ptr(15000)},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(15000), resp.Lines[0].UnitPrice)
	assert.Equal(t, int64(30000), resp.Lines[0].LineTotal)
}

func TestSubmitRequiresLines(t *testing.T) {
	f := newFixture(t)
	orderID := createDraft(t, f)

	_, err := f.svc.Submit(context.Background(), orderID)
	assert.ErrorIs(t, err, domain.ErrNoLines)
}

func TestSubmitGatesOnChecklist(t *testing.T) {
	f := newFixture(t)
	orderID := createDraft(t, f)

	flags := fullChecklist()
	flags["payerGuidelinesChecked"] = false

	_, err := f.svc.Edit(context.Background(), domain.EditRequest{
		ID:                 orderID,
		PayerType:          strPtr("insurance"),
		PayerID:            strPtr(payerMedicare),
		InsuranceChecklist: flags,
		Lines:              &[]domain.LineInput{{ProductID: productAFO, Quantity: 1}},
	})
	require.NoError(t, err)

	_, err = f.svc.Submit(context.Background(), orderID)
	assert.ErrorIs(t, err, domain.ErrChecklistIncomplete)

	_, err = f.svc.Edit(context.Background(), domain.EditRequest{
		ID:                 orderID,
		InsuranceChecklist: fullChecklist(),
	})
	require.NoError(t, err)

	resp, err := f.svc.Submit(context.Background(), orderID)
	require.NoError(t, err)
	assert.False(t, resp.IsDraft)
}

func TestSubmitSelfPayScenario(t *testing.T) {
	f := newFixture(t)
	orderID := createDraft(t, f)
	editLines(t, f, orderID, []domain.LineInput{{ProductID: productWristSplint, Quantity: 2}})

	resp, err := f.svc.Submit(context.Background(), orderID)
	require.NoError(t, err)

	assert.False(t, resp.IsDraft)
	assert.NotNil(t, resp.SubmittedAt)
	assert.Equal(t, int64(15000), resp.Total)

	require.Len(t, resp.Documents, 3)
	seen := map[string]int{}
	for _, doc := range resp.Documents {
		seen[doc.Type] = doc.Version
		assert.NotEmpty(t, doc.FileURL)
	}
	assert.Equal(t, map[string]int{"ENCOUNTER": 1, "INVOICE": 1, "POD": 1}, seen)
}

func TestSubmitAutoApprovesOutsideApprovalSet(t *testing.T) {
	f := newFixture(t)
	orderID := createDraft(t, f)
	editLines(t, f, orderID, []domain.LineInput{{ProductID: productWristSplint, Quantity: 1}})

	resp, err := f.svc.Submit(context.Background(), orderID)
	require.NoError(t, err)

	assert.Equal(t, "approved", resp.Status)
	assert.Equal(t, "Approved", resp.StatusLabel)

	types := eventTypes(resp)
	assert.Equal(t, []string{"ORDER_CREATED", "ORDER_UPDATED", "ORDER_SUBMITTED", "STATUS_CHANGED"}, types)

	submitted := resp.AuditEvents[2]
	assert.Equal(t, true, submitted.Payload["auto_approved"])
}

func TestSubmitRoutesApprovalSetToPendingApproval(t *testing.T) {
	f := newFixture(t)
	orderID := createDraft(t, f)
	editLines(t, f, orderID, []domain.LineInput{{ProductID: productTLSO, Quantity: 1}})

	resp, err := f.svc.Submit(context.Background(), orderID)
	require.NoError(t, err)

	assert.Equal(t, "pending_approval", resp.Status)
	types := eventTypes(resp)
	assert.Equal(t, []string{"ORDER_CREATED", "ORDER_UPDATED", "ORDER_SUBMITTED"}, types)
}

func TestSubmitNotReentrant(t *testing.T) {
	f := newFixture(t)
	orderID := createDraft(t, f)
	editLines(t, f, orderID, []domain.LineInput{{ProductID: productWristSplint, Quantity: 1}})

	_, err := f.svc.Submit(context.Background(), orderID)
	require.NoError(t, err)

	_, err = f.svc.Submit(context.Background(), orderID)
	assert.ErrorIs(t, err, domain.ErrAlreadySubmitted)
}

func TestRenderFailureAbortsSubmit(t *testing.T) {
	f := newFixture(t)
	orderID := createDraft(t, f)
	editLines(t, f, orderID, []domain.LineInput{{ProductID: productWristSplint, Quantity: 1}})

	f.renderer.err = errors.New("font missing")
	_, err := f.svc.Submit(context.Background(), orderID)
	assert.ErrorIs(t, err, domain.ErrRendering)

	resp, err := f.svc.Get(context.Background(), orderID)
	require.NoError(t, err)
	assert.True(t, resp.IsDraft)
	assert.Empty(t, resp.Documents)

	f.renderer.err = nil
	resp, err = f.svc.Submit(context.Background(), orderID)
	require.NoError(t, err)
	assert.Len(t, resp.Documents, 3)
}

func TestRenderTimeoutAbortsSubmit(t *testing.T) {
	f := newFixture(t)
	orderID := createDraft(t, f)
	editLines(t, f, orderID, []domain.LineInput{{ProductID: productWristSplint, Quantity: 1}})

	svc := f.svc.(*Service)
	svc.cfg.RenderTimeout = 20 * time.Millisecond
	f.renderer.block = true

	_, err := f.svc.Submit(context.Background(), orderID)
	assert.ErrorIs(t, err, domain.ErrRendering)

	resp, err := f.svc.Get(context.Background(), orderID)
	require.NoError(t, err)
	assert.True(t, resp.IsDraft)
}

func TestChangeStatusRejectedOnDraft(t *testing.T) {
	f := newFixture(t)
	orderID := createDraft(t, f)

	_, err := f.svc.ChangeStatus(context.Background(), orderID, "shipped")
	assert.ErrorIs(t, err, domain.ErrDraftStatusChange)
}

func TestChangeStatusRecordsTransition(t *testing.T) {
	f := newFixture(t)
	orderID := createDraft(t, f)
	editLines(t, f, orderID, []domain.LineInput{{ProductID: productWristSplint, Quantity: 1}})
	_, err := f.svc.Submit(context.Background(), orderID)
	require.NoError(t, err)

	_, err = f.svc.ChangeStatus(context.Background(), orderID, "canceled")
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)

	resp, err := f.svc.ChangeStatus(context.Background(), orderID, "shipped")
	require.NoError(t, err)

	assert.Equal(t, "shipped", resp.Status)
	assert.Equal(t, "Shipped", resp.StatusLabel)

	last := resp.AuditEvents[len(resp.AuditEvents)-1]
	assert.Equal(t, "STATUS_CHANGED", last.EventType)
	assert.Equal(t, "approved", last.Payload["from"])
	assert.Equal(t, "shipped", last.Payload["to"])
	assert.Equal(t, "Shipped", last.Payload["to_label"])
}

func TestRegenerateDocumentBumpsOnlyThatType(t *testing.T) {
	f := newFixture(t)
	orderID := createDraft(t, f)
	editLines(t, f, orderID, []domain.LineInput{{ProductID: productWristSplint, Quantity: 1}})
	_, err := f.svc.Submit(context.Background(), orderID)
	require.NoError(t, err)

	resp, err := f.svc.RegenerateDocument(context.Background(), orderID, "INVOICE")
	require.NoError(t, err)

	versions := map[string][]int{}
	for _, doc := range resp.Documents {
		versions[doc.Type] = append(versions[doc.Type], doc.Version)
	}
	assert.Equal(t, []int{1, 2}, versions["INVOICE"])
	assert.Equal(t, []int{1}, versions["ENCOUNTER"])
	assert.Equal(t, []int{1}, versions["POD"])

	last := resp.AuditEvents[len(resp.AuditEvents)-1]
	assert.Equal(t, "PDF_GENERATED", last.EventType)
	assert.Equal(t, "INVOICE", last.Payload["type"])

	_, err = f.svc.RegenerateDocument(context.Background(), orderID, "RECEIPT")
	assert.ErrorIs(t, err, domain.ErrInvalidDocumentType)
}

func TestRegenerateDocumentOnDraft(t *testing.T) {
	f := newFixture(t)
	orderID := createDraft(t, f)
	editLines(t, f, orderID, []domain.LineInput{{ProductID: productWristSplint, Quantity: 1}})

	resp, err := f.svc.RegenerateDocument(context.Background(), orderID, "POD")
	require.NoError(t, err)

	assert.True(t, resp.IsDraft)
	require.Len(t, resp.Documents, 1)
	assert.Equal(t, "POD", resp.Documents[0].Type)
	assert.Equal(t, 1, resp.Documents[0].Version)

	last := resp.AuditEvents[len(resp.AuditEvents)-1]
	assert.Equal(t, "PDF_GENERATED", last.EventType)
}

func TestListFiltersAndOrdering(t *testing.T) {
	f := newFixture(t)

	first := createDraft(t, f)
	f.clk.Advance(time.Minute)

	req := validCreateRequest()
	req.Patient.FirstName = "Zo"
	req.Patient.LastName = "Quist"
	second, err := f.svc.Create(context.Background(), req)
	require.NoError(t, err)

	editLines(t, f, second.ID, []domain.LineInput{{ProductID: productWristSplint, Quantity: 1}})
	_, err = f.svc.Submit(context.Background(), second.ID)
	require.NoError(t, err)

	all, err := f.svc.List(context.Background(), domain.ListRequest{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID)
	assert.Equal(t, first, all[1].ID)

	approved, err := f.svc.List(context.Background(), domain.ListRequest{Status: "approved"})
	require.NoError(t, err)
	require.Len(t, approved, 1)
	assert.Equal(t, second.ID, approved[0].ID)

	byName, err := f.svc.List(context.Background(), domain.ListRequest{PatientName: "Quis"})
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "Zo Quist", byName[0].PatientName)

	_, err = f.svc.List(context.Background(), domain.ListRequest{Status: "bogus"})
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestGetUnknownOrder(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Get(context.Background(), "123456789")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.svc.Get(context.Background(), "not-a-number")
	assert.ErrorIs(t, err, domain.ErrInvalidID)
}
