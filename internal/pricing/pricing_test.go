package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func int64Ptr(v int64) *int64 { return &v }

func TestComputeUsesMSRPByDefault(t *testing.T) {
	quote := Compute(Input{Quantity: 1, UnitCost: 3500, MSRP: 7500})

	assert.Equal(t, int64(7500), quote.UnitPrice)
	assert.Equal(t, int64(7500), quote.LineTotal)
	assert.Equal(t, int64(4000), quote.Margin)
}

func TestComputePrefersPayerRateOverMSRP(t *testing.T) {
	quote := Compute(Input{Quantity: 1, UnitCost: 12000, MSRP: 24000, PayerRate: int64Ptr(18500)})

	assert.Equal(t, int64(18500), quote.UnitPrice)
	assert.Equal(t, int64(18500), quote.LineTotal)
	assert.Equal(t, int64(6500), quote.Margin)
}

func TestComputeOverrideWinsOverEverything(t *testing.T) {
	quote := Compute(Input{
		Quantity:  3,
		UnitCost:  12000,
		MSRP:      24000,
		PayerRate: int64Ptr(18500),
		Override:  int64Ptr(20000),
	})

	assert.Equal(t, int64(20000), quote.UnitPrice)
	assert.Equal(t, int64(60000), quote.LineTotal)
	assert.Equal(t, int64(24000), quote.Margin)
}

func TestComputeMultipliesByQuantity(t *testing.T) {
	quote := Compute(Input{Quantity: 2, UnitCost: 3500, MSRP: 7500})

	assert.Equal(t, int64(7500), quote.UnitPrice)
	assert.Equal(t, int64(15000), quote.LineTotal)
	assert.Equal(t, int64(8000), quote.Margin)
}

func TestComputeReportsNegativeMargin(t *testing.T) {
	quote := Compute(Input{Quantity: 2, UnitCost: 12000, MSRP: 24000, Override: int64Ptr(9000)})

	assert.Equal(t, int64(9000), quote.UnitPrice)
	assert.Equal(t, int64(18000), quote.LineTotal)
	assert.Equal(t, int64(-6000), quote.Margin)
}
