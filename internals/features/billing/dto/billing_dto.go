package dto

import (
	helper "studyhall_backend/internals/helpers"
)

type PlanRequest struct {
	Name         string       `json:"name" validate:"required,max=100"`
	Price        helper.Money `json:"price"`
	DurationDays int          `json:"duration_days" validate:"required,min=1"`
	IsActive     *bool        `json:"is_active,omitempty"`
}

type CheckoutRequest struct {
	PlanID string `json:"plan_id" validate:"required,uuid4"`
}

type CheckoutResponse struct {
	OrderID     string `json:"order_id"`
	SnapToken   string `json:"snap_token"`
	RedirectURL string `json:"redirect_url"`
}

// ConfirmRequest mirrors the gateway's notification payload fields we act on.
type ConfirmRequest struct {
	OrderID           string `json:"order_id" validate:"required"`
	TransactionStatus string `json:"transaction_status" validate:"required"`
}
