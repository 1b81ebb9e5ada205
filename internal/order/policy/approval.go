package policy

import (
	"strings"

	"github.com/orthoflow/orthoflow/internal/config"
	"github.com/orthoflow/orthoflow/internal/order/domain"
)

// Approval routes submitted orders into manual review when any line
// carries a HCPCS code from the configured approval set.
type Approval struct {
	holder *config.ApprovalConfigHolder
}

func NewApproval(holder *config.ApprovalConfigHolder) *Approval {
	return &Approval{holder: holder}
}

// RequiresApproval reports whether at least one line's HCPCS code is in
// the approval-required set.
func (a *Approval) RequiresApproval(lines []domain.LineDetail) bool {
	codes := a.holder.Get().HCPCSCodes
	set := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		set[strings.ToUpper(code)] = struct{}{}
	}
	for _, line := range lines {
		if _, ok := set[strings.ToUpper(line.HCPCSCode)]; ok {
			return true
		}
	}
	return false
}
