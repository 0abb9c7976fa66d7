package dto

import (
	helper "studyhall_backend/internals/helpers"
)

type ExpenseRequest struct {
	Title    string       `json:"title" validate:"required,max=150"`
	Category string       `json:"category" validate:"omitempty,max=50"`
	Amount   helper.Money `json:"amount"`
	SpentAt  string       `json:"spent_at" validate:"required"` // "2006-01-02"
	Note     *string      `json:"note,omitempty"`
}
