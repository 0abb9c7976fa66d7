package dto

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"studyhall_backend/internals/features/admissions/model"
	"studyhall_backend/internals/features/admissions/service"
	helper "studyhall_backend/internals/helpers"
)

/* =========================================================
   REQUEST DTO — public intake (unauthenticated)
   Notes:
   - due_amount from the client is ignored; it is recomputed
     as total_fee - discount - amount_paid.
   - money fields accept number or numeric string (helper.Money);
     absent/empty means 0, garbage is a 400.
========================================================= */

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Phone    string `json:"phone" validate:"required,min=6,max=20"`
	BranchID string `json:"branch_id" validate:"required,uuid4"`

	Email   *string `json:"email,omitempty" validate:"omitempty,email"`
	Address *string `json:"address,omitempty"`

	MembershipStart *string  `json:"membership_start,omitempty"` // "2006-01-02"
	MembershipEnd   *string  `json:"membership_end,omitempty"`
	ShiftIDs        []string `json:"shift_ids,omitempty" validate:"omitempty,dive,uuid4"`
	SeatID          *string  `json:"seat_id,omitempty" validate:"omitempty,uuid4"`
	LockerID        *string  `json:"locker_id,omitempty" validate:"omitempty,uuid4"`

	TotalFee      helper.Money `json:"total_fee"`
	AmountPaid    helper.Money `json:"amount_paid"`
	Discount      helper.Money `json:"discount"`
	Cash          helper.Money `json:"cash"`
	Online        helper.Money `json:"online"`
	SecurityMoney helper.Money `json:"security_money"`

	Remark             *string `json:"remark,omitempty"`
	ProfileImageURL    *string `json:"profile_image_url,omitempty"`
	RegistrationNumber *string `json:"registration_number,omitempty"`
	FatherName         *string `json:"father_name,omitempty"`
	AadharNumber       *string `json:"aadhar_number,omitempty"`
	AadhaarFrontURL    *string `json:"aadhaar_front_url,omitempty"`
	AadhaarBackURL     *string `json:"aadhaar_back_url,omitempty"`
}

// ToModel builds the pending request row. Assumes validation already ran, so
// uuid/date parse failures are reported as 400s by the caller.
func (r RegisterRequest) ToModel(libraryID uuid.UUID) (model.AdmissionRequestModel, error) {
	branchID, err := uuid.Parse(strings.TrimSpace(r.BranchID))
	if err != nil {
		return model.AdmissionRequestModel{}, fiber.NewError(fiber.StatusBadRequest, "invalid branch_id")
	}

	m := model.AdmissionRequestModel{
		AdmissionRequestLibraryID: libraryID,
		AdmissionRequestName:      strings.TrimSpace(r.Name),
		AdmissionRequestPhone:     strings.TrimSpace(r.Phone),
		AdmissionRequestEmail:     trimPtr(r.Email),
		AdmissionRequestAddress:   trimPtr(r.Address),
		AdmissionRequestBranchID:  branchID,

		AdmissionRequestTotalFee:      r.TotalFee.Decimal,
		AdmissionRequestAmountPaid:    r.AmountPaid.Decimal,
		AdmissionRequestDiscount:      r.Discount.Decimal,
		AdmissionRequestDueAmount:     service.ComputeDue(r.TotalFee.Decimal, r.Discount.Decimal, r.AmountPaid.Decimal),
		AdmissionRequestCash:          r.Cash.Decimal,
		AdmissionRequestOnline:        r.Online.Decimal,
		AdmissionRequestSecurityMoney: r.SecurityMoney.Decimal,

		AdmissionRequestRemark:             trimPtr(r.Remark),
		AdmissionRequestProfileImageURL:    trimPtr(r.ProfileImageURL),
		AdmissionRequestRegistrationNumber: trimPtr(r.RegistrationNumber),
		AdmissionRequestFatherName:         trimPtr(r.FatherName),
		AdmissionRequestAadharNumber:       trimPtr(r.AadharNumber),
		AdmissionRequestAadhaarFrontURL:    trimPtr(r.AadhaarFrontURL),
		AdmissionRequestAadhaarBackURL:     trimPtr(r.AadhaarBackURL),

		AdmissionRequestStatus: model.StatusPending,
	}

	if r.SeatID != nil {
		id, err := uuid.Parse(strings.TrimSpace(*r.SeatID))
		if err != nil {
			return m, fiber.NewError(fiber.StatusBadRequest, "invalid seat_id")
		}
		m.AdmissionRequestSeatID = &id
	}
	if r.LockerID != nil {
		id, err := uuid.Parse(strings.TrimSpace(*r.LockerID))
		if err != nil {
			return m, fiber.NewError(fiber.StatusBadRequest, "invalid locker_id")
		}
		m.AdmissionRequestLockerID = &id
	}

	if len(r.ShiftIDs) > 0 {
		ids := make([]uuid.UUID, 0, len(r.ShiftIDs))
		for _, s := range r.ShiftIDs {
			id, err := uuid.Parse(strings.TrimSpace(s))
			if err != nil {
				return m, fiber.NewError(fiber.StatusBadRequest, "invalid shift id in shift_ids")
			}
			ids = append(ids, id)
		}
		raw, err := json.Marshal(ids)
		if err != nil {
			return m, err
		}
		m.AdmissionRequestShiftIDs = datatypes.JSON(raw)
	}

	if m.AdmissionRequestMembershipStart, err = parseDatePtr(r.MembershipStart, "membership_start"); err != nil {
		return m, err
	}
	if m.AdmissionRequestMembershipEnd, err = parseDatePtr(r.MembershipEnd, "membership_end"); err != nil {
		return m, err
	}

	return m, nil
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func parseDatePtr(s *string, field string) (*time.Time, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", strings.TrimSpace(*s))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "invalid "+field+" (expected YYYY-MM-DD)")
	}
	return &t, nil
}

/* =========================================================
   RESPONSE DTOs
========================================================= */

type RegisterResponse struct {
	RequestID   uuid.UUID `json:"request_id"`
	SubmittedAt time.Time `json:"submitted_at"`
	Status      string    `json:"status"`
	Note        string    `json:"note"`
}

type StatusLibrary struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

type StatusRequest struct {
	ID              uuid.UUID  `json:"id"`
	Name            string     `json:"name"`
	Status          string     `json:"status"`
	SubmittedAt     time.Time  `json:"submitted_at"`
	LastUpdated     time.Time  `json:"last_updated"`
	ProcessedAt     *time.Time `json:"processed_at,omitempty"`
	RejectionReason *string    `json:"rejection_reason,omitempty"`
}

type StatusResponse struct {
	Library StatusLibrary `json:"library"`
	Request StatusRequest `json:"request"`
}

func ToStatusResponse(libName, libCode string, m model.AdmissionRequestModel) StatusResponse {
	return StatusResponse{
		Library: StatusLibrary{Name: libName, Code: libCode},
		Request: StatusRequest{
			ID:              m.AdmissionRequestID,
			Name:            m.AdmissionRequestName,
			Status:          m.AdmissionRequestStatus,
			SubmittedAt:     m.AdmissionRequestCreatedAt,
			LastUpdated:     m.AdmissionRequestUpdatedAt,
			ProcessedAt:     m.AdmissionRequestProcessedAt,
			RejectionReason: m.AdmissionRequestRejectionReason,
		},
	}
}

/* =========================================================
   Admin review DTOs
========================================================= */

type RejectRequest struct {
	Reason string `json:"reason" validate:"required,max=500"`
}

// ApproveRequest allows the reviewer to override the registration number at
// approval time (the front desk often assigns it from their paper ledger).
type ApproveRequest struct {
	RegistrationNumber *string `json:"registration_number,omitempty"`
}
