package service

import (
	"github.com/shopspring/decimal"

	"studyhall_backend/internals/features/admissions/model"
)

// ComputeDue recomputes the outstanding balance from the three source
// figures. The client-sent due amount is never trusted.
func ComputeDue(totalFee, discount, amountPaid decimal.Decimal) decimal.Decimal {
	return totalFee.Sub(discount).Sub(amountPaid)
}

// CanTransition enforces status monotonicity: pending may move to approved or
// rejected; approved and rejected are terminal.
func CanTransition(from, to string) bool {
	if from != model.StatusPending {
		return false
	}
	return to == model.StatusApproved || to == model.StatusRejected
}
