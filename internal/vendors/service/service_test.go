package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/orthoflow/orthoflow/internal/clock"
	"github.com/orthoflow/orthoflow/internal/seed"
	"github.com/orthoflow/orthoflow/internal/vendors/domain"
	"github.com/orthoflow/orthoflow/internal/vendors/repository"
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
	require.NoError(t, seed.EnsureCatalog(db))

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

func TestCreateVendorValidatesName(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Create(context.Background(), domain.CreateRequest{Name: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidName)

	resp, err := svc.Create(context.Background(), domain.CreateRequest{Name: "  Hanger Clinic  "})
	require.NoError(t, err)
	assert.Equal(t, "Hanger Clinic", resp.Name)
	assert.Equal(t, testNow, resp.CreatedAt)
}

func TestDeleteVendorGuardedByProducts(t *testing.T) {
	svc := newTestService(t)

	// Seeded vendor with catalog products attached.
	err := svc.Delete(context.Background(), "101")
	assert.ErrorIs(t, err, domain.ErrHasProducts)

	empty, err := svc.Create(context.Background(), domain.CreateRequest{Name: "Hanger Clinic"})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(context.Background(), empty.ID))

	_, err = svc.Get(context.Background(), empty.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteVendorUnknown(t *testing.T) {
	svc := newTestService(t)

	err := svc.Delete(context.Background(), "424242")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
