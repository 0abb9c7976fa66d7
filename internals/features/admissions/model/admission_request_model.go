package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// AdmissionRequestModel is the raw intake row a prospective student submits
// through the public registration form. Rows are never deleted — approved and
// rejected requests stay behind as the audit trail.
//
// A partial unique index (library_id, phone) WHERE status='pending' backs the
// one-pending-request-per-phone rule at the storage layer (see migrate.go).
type AdmissionRequestModel struct {
	AdmissionRequestID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"admission_request_id"`
	AdmissionRequestLibraryID uuid.UUID `gorm:"type:uuid;not null;index" json:"admission_request_library_id"`

	AdmissionRequestName    string  `gorm:"type:varchar(100);not null" json:"admission_request_name"`
	AdmissionRequestEmail   *string `gorm:"type:varchar(100)" json:"admission_request_email,omitempty"`
	AdmissionRequestPhone   string  `gorm:"type:varchar(20);not null;index" json:"admission_request_phone"`
	AdmissionRequestAddress *string `gorm:"type:text" json:"admission_request_address,omitempty"`

	AdmissionRequestBranchID        uuid.UUID  `gorm:"type:uuid;not null" json:"admission_request_branch_id"`
	AdmissionRequestSeatID          *uuid.UUID `gorm:"type:uuid" json:"admission_request_seat_id,omitempty"`
	AdmissionRequestLockerID        *uuid.UUID `gorm:"type:uuid" json:"admission_request_locker_id,omitempty"`
	AdmissionRequestShiftIDs        datatypes.JSON `gorm:"type:jsonb" json:"admission_request_shift_ids,omitempty"`
	AdmissionRequestMembershipStart *time.Time `json:"admission_request_membership_start,omitempty"`
	AdmissionRequestMembershipEnd   *time.Time `json:"admission_request_membership_end,omitempty"`

	// Money columns. Due is always recomputed server-side as
	// total - discount - paid; the client-sent figure is ignored.
	AdmissionRequestTotalFee      decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"admission_request_total_fee"`
	AdmissionRequestAmountPaid    decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"admission_request_amount_paid"`
	AdmissionRequestDiscount      decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"admission_request_discount"`
	AdmissionRequestDueAmount     decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"admission_request_due_amount"`
	AdmissionRequestCash          decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"admission_request_cash"`
	AdmissionRequestOnline        decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"admission_request_online"`
	AdmissionRequestSecurityMoney decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"admission_request_security_money"`

	AdmissionRequestRemark             *string `gorm:"type:text" json:"admission_request_remark,omitempty"`
	AdmissionRequestProfileImageURL    *string `gorm:"type:text" json:"admission_request_profile_image_url,omitempty"`
	AdmissionRequestRegistrationNumber *string `gorm:"type:varchar(50)" json:"admission_request_registration_number,omitempty"`
	AdmissionRequestFatherName         *string `gorm:"type:varchar(100)" json:"admission_request_father_name,omitempty"`
	AdmissionRequestAadharNumber       *string `gorm:"type:varchar(20)" json:"admission_request_aadhar_number,omitempty"`
	AdmissionRequestAadhaarFrontURL    *string `gorm:"type:text" json:"admission_request_aadhaar_front_url,omitempty"`
	AdmissionRequestAadhaarBackURL     *string `gorm:"type:text" json:"admission_request_aadhaar_back_url,omitempty"`

	AdmissionRequestStatus          string     `gorm:"type:varchar(10);not null;default:'pending';index" json:"admission_request_status"`
	AdmissionRequestRejectionReason *string    `gorm:"type:text" json:"admission_request_rejection_reason,omitempty"`
	AdmissionRequestProcessedAt     *time.Time `json:"admission_request_processed_at,omitempty"`
	AdmissionRequestProcessedBy     *uuid.UUID `gorm:"type:uuid" json:"admission_request_processed_by,omitempty"`

	AdmissionRequestCreatedAt time.Time `gorm:"autoCreateTime" json:"admission_request_created_at"`
	AdmissionRequestUpdatedAt time.Time `gorm:"autoUpdateTime" json:"admission_request_updated_at"`
}

func (AdmissionRequestModel) TableName() string {
	return "admission_requests"
}
