package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	SourceAdmission  = "admission"
	SourceCollection = "collection"
)

// PaymentRecordModel is the append-only fee ledger. A row is written when an
// admission is approved (the intake's amount_paid) and on every later
// fee-collection entry.
type PaymentRecordModel struct {
	PaymentRecordID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"payment_record_id"`
	PaymentRecordLibraryID uuid.UUID `gorm:"type:uuid;not null;index" json:"payment_record_library_id"`
	PaymentRecordStudentID uuid.UUID `gorm:"type:uuid;not null;index" json:"payment_record_student_id"`

	PaymentRecordAmount decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"payment_record_amount"`
	PaymentRecordCash   decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"payment_record_cash"`
	PaymentRecordOnline decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"payment_record_online"`

	PaymentRecordSource   string     `gorm:"type:varchar(20);not null" json:"payment_record_source"`
	PaymentRecordMonthTag string     `gorm:"type:varchar(7)" json:"payment_record_month_tag"` // "2026-08"
	PaymentRecordNote     *string    `gorm:"type:text" json:"payment_record_note,omitempty"`
	PaymentRecordCreatedBy *uuid.UUID `gorm:"type:uuid" json:"payment_record_created_by,omitempty"`

	PaymentRecordCreatedAt time.Time `gorm:"autoCreateTime" json:"payment_record_created_at"`
}

func (PaymentRecordModel) TableName() string {
	return "payment_records"
}
