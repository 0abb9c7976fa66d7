package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// StudentModel is the terminal artifact of an approved admission request.
// Phone is unique per library among non-deleted rows (partial index in
// migrate.go).
type StudentModel struct {
	StudentID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"student_id"`
	StudentLibraryID uuid.UUID `gorm:"type:uuid;not null;index" json:"student_library_id"`

	StudentName    string  `gorm:"type:varchar(100);not null" json:"student_name"`
	StudentEmail   *string `gorm:"type:varchar(100)" json:"student_email,omitempty"`
	StudentPhone   string  `gorm:"type:varchar(20);not null;index" json:"student_phone"`
	StudentAddress *string `gorm:"type:text" json:"student_address,omitempty"`

	StudentBranchID        uuid.UUID      `gorm:"type:uuid;not null" json:"student_branch_id"`
	StudentSeatID          *uuid.UUID     `gorm:"type:uuid" json:"student_seat_id,omitempty"`
	StudentLockerID        *uuid.UUID     `gorm:"type:uuid" json:"student_locker_id,omitempty"`
	StudentShiftIDs        datatypes.JSON `gorm:"type:jsonb" json:"student_shift_ids,omitempty"`
	StudentMembershipStart *time.Time     `json:"student_membership_start,omitempty"`
	StudentMembershipEnd   *time.Time     `json:"student_membership_end,omitempty"`

	StudentTotalFee      decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"student_total_fee"`
	StudentAmountPaid    decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"student_amount_paid"`
	StudentDiscount      decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"student_discount"`
	StudentDueAmount     decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"student_due_amount"`
	StudentSecurityMoney decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"student_security_money"`

	StudentRegistrationNumber *string `gorm:"type:varchar(50)" json:"student_registration_number,omitempty"`
	StudentFatherName         *string `gorm:"type:varchar(100)" json:"student_father_name,omitempty"`
	StudentAadharNumber       *string `gorm:"type:varchar(20)" json:"student_aadhar_number,omitempty"`
	StudentProfileImageURL    *string `gorm:"type:text" json:"student_profile_image_url,omitempty"`

	StudentAdmissionRequestID *uuid.UUID `gorm:"type:uuid" json:"student_admission_request_id,omitempty"`

	StudentCreatedAt time.Time      `gorm:"autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt time.Time      `gorm:"autoUpdateTime" json:"student_updated_at"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index" json:"student_deleted_at,omitempty"`
}

func (StudentModel) TableName() string {
	return "students"
}
