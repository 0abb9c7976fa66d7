package model

import (
	"time"

	"github.com/google/uuid"
)

// LibraryModel is the tenant. Every domain row in the system carries the
// library id; the uppercase code is the public handle printed on QR posters
// and registration links.
type LibraryModel struct {
	LibraryID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"library_id"`
	LibraryName      string    `gorm:"type:varchar(100);not null" json:"library_name"`
	LibraryOwnerName string    `gorm:"type:varchar(100)" json:"library_owner_name"`
	LibraryCode      string    `gorm:"type:varchar(20);uniqueIndex;not null" json:"library_code"`
	LibraryTimezone  string    `gorm:"type:varchar(40);not null;default:'Asia/Kolkata'" json:"library_timezone"`
	LibraryAddress   string    `gorm:"type:text" json:"library_address"`
	LibraryPhone     string    `gorm:"type:varchar(20)" json:"library_phone"`
	LibraryIsActive  bool      `gorm:"not null;default:true" json:"library_is_active"`
	LibraryCreatedAt time.Time `gorm:"autoCreateTime" json:"library_created_at"`
	LibraryUpdatedAt time.Time `gorm:"autoUpdateTime" json:"library_updated_at"`
}

func (LibraryModel) TableName() string {
	return "libraries"
}

// Location resolves the library's IANA timezone, falling back to UTC when the
// stored name is bad. Attendance day bucketing depends on this.
func (m LibraryModel) Location() *time.Location {
	loc, err := time.LoadLocation(m.LibraryTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
