package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/orthoflow/orthoflow/internal/clock"
	orderdomain "github.com/orthoflow/orthoflow/internal/order/domain"
	"github.com/orthoflow/orthoflow/internal/product/domain"
	"github.com/orthoflow/orthoflow/internal/product/repository"
	"github.com/orthoflow/orthoflow/internal/seed"
	vendorrepo "github.com/orthoflow/orthoflow/internal/vendors/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (domain.Service, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, seed.EnsureSchema(db))
	require.NoError(t, seed.EnsureCatalog(db))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	svc := New(Params{
		DB:      db,
		Log:     zaptest.NewLogger(t),
		GenID:   node,
		Clock:   clock.NewFakeClock(testNow),
		Repo:    repository.Provide(),
		Vendors: vendorrepo.Provide(),
	})
	return svc, db
}

var testNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func TestCreateProductValidatesVendor(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Create(context.Background(), domain.CreateRequest{
		VendorID:  "424242",
		Name:      "Knee Brace",
		HCPCSCode: "L1833",
		UnitCost:  9000,
		MSRP:      19900,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidVendor)
}

func TestCreateProductNormalizesHCPCS(t *testing.T) {
	svc, _ := newTestService(t)

	resp, err := svc.Create(context.Background(), domain.CreateRequest{
		VendorID:  "101",
		Name:      "Knee Brace",
		HCPCSCode: "  l1833 ",
		UnitCost:  9000,
		MSRP:      19900,
		Category:  "knee",
	})
	require.NoError(t, err)
	assert.Equal(t, "L1833", resp.HCPCSCode)

	byCode, err := svc.List(context.Background(), domain.ListRequest{HCPCSCode: "l1833"})
	require.NoError(t, err)
	require.Len(t, byCode, 1)
	assert.Equal(t, resp.ID, byCode[0].ID)
}

func TestUpdateProductPatchesFields(t *testing.T) {
	svc, _ := newTestService(t)

	msrp := int64(25900)
	resp, err := svc.Update(context.Background(), domain.UpdateRequest{
		ID:   "1002",
		MSRP: &msrp,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(25900), resp.MSRP)
	assert.Equal(t, int64(12000), resp.UnitCost)
	assert.Equal(t, "L1906", resp.HCPCSCode)
	assert.Equal(t, testNow, resp.UpdatedAt)
}

func TestDeleteProductGuardedByOrderLines(t *testing.T) {
	svc, db := newTestService(t)

	line := orderdomain.OrderLine{
		ID:        900001,
		OrderID:   900100,
		ProductID: 1002,
		Quantity:  1,
		UnitCost:  12000,
		UnitPrice: 24000,
		LineTotal: 24000,
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, db.Create(&line).Error)

	err := svc.Delete(context.Background(), "1002")
	assert.ErrorIs(t, err, domain.ErrInUse)

	require.NoError(t, svc.Delete(context.Background(), "1003"))
	_, err = svc.Get(context.Background(), "1003")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
