// Package policy holds the pure decision rules consulted at
// submission time: checklist completeness and approval routing.
package policy

import (
	"github.com/orthoflow/orthoflow/internal/order/domain"
	"gorm.io/datatypes"
)

// ChecklistFlags are the seven insurance-verification items that must
// all be confirmed before an insurance order can be submitted.
var ChecklistFlags = []string{
	"activeCoverage",
	"dmeBenefit",
	"hcpcsCoveragePolicy",
	"priorAuthTriggers",
	"deductibleCoinsurance",
	"documentationRequirements",
	"payerGuidelinesChecked",
}

// IsChecklistComplete reports whether the order may pass the
// insurance-verification gate. Self-pay orders always pass. Insurance
// orders pass only when every flag is present and true; a missing flag
// counts as false.
func IsChecklistComplete(payerType domain.PayerType, checklist map[string]bool) bool {
	if payerType != domain.PayerTypeInsurance {
		return true
	}
	for _, flag := range ChecklistFlags {
		if !checklist[flag] {
			return false
		}
	}
	return true
}

// ChecklistFromJSON converts the stored JSON column into the flag map
// the validator consumes. Non-boolean values count as false.
func ChecklistFromJSON(raw datatypes.JSONMap) map[string]bool {
	if raw == nil {
		return nil
	}
	out := make(map[string]bool, len(raw))
	for k, v := range raw {
		b, _ := v.(bool)
		out[k] = b
	}
	return out
}

// ChecklistToJSON converts an incoming flag map into the stored JSON
// column shape.
func ChecklistToJSON(flags map[string]bool) datatypes.JSONMap {
	if flags == nil {
		return nil
	}
	out := make(datatypes.JSONMap, len(flags))
	for k, v := range flags {
		out[k] = v
	}
	return out
}
