package dto

import (
	"time"

	"studyhall_backend/internals/features/students/model"
	"studyhall_backend/internals/features/students/service"
	helper "studyhall_backend/internals/helpers"
)

// StudentResponse is the model plus the derived membership/financial flags.
// The flags are never stored; they are computed per read so they can flip
// overnight without any writer touching the row.
type StudentResponse struct {
	model.StudentModel
	MembershipStatus string `json:"membership_status"`
	HasDueAmount     bool   `json:"has_due_amount"`
}

func ToStudentResponse(m model.StudentModel, now time.Time) StudentResponse {
	st := service.DeriveStatus(m.StudentMembershipEnd, m.StudentDueAmount, now)
	return StudentResponse{
		StudentModel:     m,
		MembershipStatus: st.MembershipStatus,
		HasDueAmount:     st.HasDueAmount,
	}
}

func ToStudentResponses(rows []model.StudentModel, now time.Time) []StudentResponse {
	out := make([]StudentResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, ToStudentResponse(m, now))
	}
	return out
}

// CreateStudentRequest is the direct admin create, bypassing the public
// intake (walk-ins the desk enrolls on the spot).
type CreateStudentRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Phone    string `json:"phone" validate:"required,min=6,max=20"`
	BranchID string `json:"branch_id" validate:"required,uuid4"`

	Email           *string `json:"email,omitempty" validate:"omitempty,email"`
	Address         *string `json:"address,omitempty"`
	MembershipStart *string `json:"membership_start,omitempty"` // "2006-01-02"
	MembershipEnd   *string `json:"membership_end,omitempty"`
	SeatID          *string `json:"seat_id,omitempty" validate:"omitempty,uuid4"`

	TotalFee   helper.Money `json:"total_fee"`
	AmountPaid helper.Money `json:"amount_paid"`
	Discount   helper.Money `json:"discount"`

	RegistrationNumber *string `json:"registration_number,omitempty"`
	FatherName         *string `json:"father_name,omitempty"`
}

type UpdateStudentRequest struct {
	Name            *string `json:"name,omitempty" validate:"omitempty,max=100"`
	Email           *string `json:"email,omitempty" validate:"omitempty,email"`
	Address         *string `json:"address,omitempty"`
	MembershipStart *string `json:"membership_start,omitempty"` // "2006-01-02"
	MembershipEnd   *string `json:"membership_end,omitempty"`
	SeatID          *string `json:"seat_id,omitempty" validate:"omitempty,uuid4"`
	FatherName      *string `json:"father_name,omitempty" validate:"omitempty,max=100"`
	ProfileImageURL *string `json:"profile_image_url,omitempty"`
}
