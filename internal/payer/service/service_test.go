package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/orthoflow/orthoflow/internal/clock"
	"github.com/orthoflow/orthoflow/internal/payer/domain"
	"github.com/orthoflow/orthoflow/internal/payer/repository"
	"github.com/orthoflow/orthoflow/internal/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) domain.Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, seed.EnsureSchema(db))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	return New(Params{
		DB:    db,
		Log:   zaptest.NewLogger(t),
		GenID: node,
		Clock: clock.NewFakeClock(testNow),
		Repo:  repository.Provide(),
	})
}

var testNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func TestCreatePayerValidatesName(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Create(context.Background(), domain.CreateRequest{Name: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidName)

	resp, err := svc.Create(context.Background(), domain.CreateRequest{Name: "Cigna"})
	require.NoError(t, err)
	assert.Equal(t, "Cigna", resp.Name)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, testNow, resp.CreatedAt)
}

func TestSetFeeUpsertsExistingEntry(t *testing.T) {
	svc := newTestService(t)

	payer, err := svc.Create(context.Background(), domain.CreateRequest{Name: "Cigna"})
	require.NoError(t, err)

	_, err = svc.SetFee(context.Background(), domain.SetFeeRequest{
		PayerID:   payer.ID,
		HCPCSCode: "l1906",
		Rate:      18000,
	})
	require.NoError(t, err)

	updated, err := svc.SetFee(context.Background(), domain.SetFeeRequest{
		PayerID:   payer.ID,
		HCPCSCode: "L1906",
		Rate:      19500,
	})
	require.NoError(t, err)
	assert.Equal(t, "L1906", updated.HCPCSCode)
	assert.Equal(t, int64(19500), updated.Rate)

	fees, err := svc.ListFees(context.Background(), payer.ID)
	require.NoError(t, err)
	require.Len(t, fees, 1)
	assert.Equal(t, int64(19500), fees[0].Rate)
}

func TestSetFeeValidation(t *testing.T) {
	svc := newTestService(t)

	payer, err := svc.Create(context.Background(), domain.CreateRequest{Name: "Cigna"})
	require.NoError(t, err)

	_, err = svc.SetFee(context.Background(), domain.SetFeeRequest{PayerID: payer.ID, HCPCSCode: "", Rate: 100})
	assert.ErrorIs(t, err, domain.ErrInvalidHCPCS)

	_, err = svc.SetFee(context.Background(), domain.SetFeeRequest{PayerID: payer.ID, HCPCSCode: "L1906", Rate: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidRate)

	_, err = svc.SetFee(context.Background(), domain.SetFeeRequest{PayerID: "999999", HCPCSCode: "L1906", Rate: 100})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
