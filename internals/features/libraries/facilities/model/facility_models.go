package model

import (
	"time"

	"github.com/google/uuid"
)

type BranchModel struct {
	BranchID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"branch_id"`
	BranchLibraryID uuid.UUID `gorm:"type:uuid;not null;index" json:"branch_library_id"`
	BranchName      string    `gorm:"type:varchar(100);not null" json:"branch_name"`
	BranchAddress   string    `gorm:"type:text" json:"branch_address"`
	BranchCreatedAt time.Time `gorm:"autoCreateTime" json:"branch_created_at"`
	BranchUpdatedAt time.Time `gorm:"autoUpdateTime" json:"branch_updated_at"`
}

func (BranchModel) TableName() string { return "branches" }

// ShiftModel holds a bookable time slot; times are local wall-clock strings
// ("06:00", "22:00") — the library's timezone gives them meaning.
type ShiftModel struct {
	ShiftID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"shift_id"`
	ShiftLibraryID uuid.UUID `gorm:"type:uuid;not null;index" json:"shift_library_id"`
	ShiftName      string    `gorm:"type:varchar(100);not null" json:"shift_name"`
	ShiftStartTime string    `gorm:"type:varchar(5);not null" json:"shift_start_time"`
	ShiftEndTime   string    `gorm:"type:varchar(5);not null" json:"shift_end_time"`
	ShiftCreatedAt time.Time `gorm:"autoCreateTime" json:"shift_created_at"`
	ShiftUpdatedAt time.Time `gorm:"autoUpdateTime" json:"shift_updated_at"`
}

func (ShiftModel) TableName() string { return "shifts" }

type SeatModel struct {
	SeatID        uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"seat_id"`
	SeatLibraryID uuid.UUID  `gorm:"type:uuid;not null;index" json:"seat_library_id"`
	SeatBranchID  *uuid.UUID `gorm:"type:uuid;index" json:"seat_branch_id,omitempty"`
	SeatNumber    string     `gorm:"type:varchar(20);not null" json:"seat_number"`
	SeatCreatedAt time.Time  `gorm:"autoCreateTime" json:"seat_created_at"`
	SeatUpdatedAt time.Time  `gorm:"autoUpdateTime" json:"seat_updated_at"`
}

func (SeatModel) TableName() string { return "seats" }

type LockerModel struct {
	LockerID         uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"locker_id"`
	LockerLibraryID  uuid.UUID  `gorm:"type:uuid;not null;index" json:"locker_library_id"`
	LockerNumber     string     `gorm:"type:varchar(20);not null" json:"locker_number"`
	LockerIsAssigned bool       `gorm:"not null;default:false;index" json:"locker_is_assigned"`
	LockerStudentID  *uuid.UUID `gorm:"type:uuid" json:"locker_student_id,omitempty"`
	LockerCreatedAt  time.Time  `gorm:"autoCreateTime" json:"locker_created_at"`
	LockerUpdatedAt  time.Time  `gorm:"autoUpdateTime" json:"locker_updated_at"`
}

func (LockerModel) TableName() string { return "lockers" }
