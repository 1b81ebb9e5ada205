package policy

import (
	"testing"

	"github.com/orthoflow/orthoflow/internal/order/domain"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func fullChecklist() map[string]bool {
	flags := make(map[string]bool, len(ChecklistFlags))
	for _, flag := range ChecklistFlags {
		flags[flag] = true
	}
	return flags
}

func TestChecklistNotRequiredForSelfPay(t *testing.T) {
	assert.True(t, IsChecklistComplete(domain.PayerTypeSelfPay, nil))
	assert.True(t, IsChecklistComplete(domain.PayerTypeSelfPay, map[string]bool{"activeCoverage": false}))
}

func TestChecklistCompleteWhenAllFlagsTrue(t *testing.T) {
	assert.True(t, IsChecklistComplete(domain.PayerTypeInsurance, fullChecklist()))
}

func TestChecklistIncompleteWhenOneFlagFalse(t *testing.T) {
	for _, flag := range ChecklistFlags {
		flags := fullChecklist()
		flags[flag] = false
		assert.False(t, IsChecklistComplete(domain.PayerTypeInsurance, flags), flag)
	}
}

func TestChecklistMissingFlagCountsAsFalse(t *testing.T) {
	flags := fullChecklist()
	delete(flags, "payerGuidelinesChecked")
	assert.False(t, IsChecklistComplete(domain.PayerTypeInsurance, flags))

	assert.False(t, IsChecklistComplete(domain.PayerTypeInsurance, nil))
}

func TestChecklistFromJSONIgnoresNonBooleans(t *testing.T) {
	raw := datatypes.JSONMap{
		"activeCoverage": true,
		"dmeBenefit":     "yes",
	}
	flags := ChecklistFromJSON(raw)

	assert.True(t, flags["activeCoverage"])
	assert.False(t, flags["dmeBenefit"])
}
