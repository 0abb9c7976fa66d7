package dto

import (
	helper "studyhall_backend/internals/helpers"
)

// CollectFeeRequest records one fee-collection entry against a student. The
// amount reduces the student's due; cash/online is the split for the till.
type CollectFeeRequest struct {
	StudentID string       `json:"student_id" validate:"required,uuid4"`
	Amount    helper.Money `json:"amount"`
	Cash      helper.Money `json:"cash"`
	Online    helper.Money `json:"online"`
	MonthTag  string       `json:"month_tag" validate:"omitempty,len=7"` // "2026-08"
	Note      *string      `json:"note,omitempty"`
}
