package policy

import (
	"testing"

	"github.com/orthoflow/orthoflow/internal/config"
	"github.com/orthoflow/orthoflow/internal/order/domain"
	"github.com/stretchr/testify/assert"
)

func lineWithCode(code string) domain.LineDetail {
	return domain.LineDetail{HCPCSCode: code}
}

func TestRequiresApprovalWhenCodeInSet(t *testing.T) {
	approval := NewApproval(config.NewStaticApprovalConfigHolder("L0456", "L0120"))

	assert.True(t, approval.RequiresApproval([]domain.LineDetail{lineWithCode("L0456")}))
	assert.True(t, approval.RequiresApproval([]domain.LineDetail{
		lineWithCode("L3908"),
		lineWithCode("L0120"),
	}))
}

func TestNoApprovalWhenNoCodeInSet(t *testing.T) {
	approval := NewApproval(config.NewStaticApprovalConfigHolder("L0456", "L0120"))

	assert.False(t, approval.RequiresApproval(nil))
	assert.False(t, approval.RequiresApproval([]domain.LineDetail{lineWithCode("L3908")}))
}

func TestApprovalMatchIsCaseInsensitive(t *testing.T) {
	approval := NewApproval(config.NewStaticApprovalConfigHolder("l0456"))

	assert.True(t, approval.RequiresApproval([]domain.LineDetail{lineWithCode("L0456")}))
}
