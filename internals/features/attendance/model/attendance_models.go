package model

import (
	"time"

	"github.com/google/uuid"
)

// AttendanceScanEventModel is one QR read, append-only. Direction is not
// stored: it is derived from the parity of the same-day scan count at insert
// time, and the full history stays queryable for audits.
type AttendanceScanEventModel struct {
	AttendanceScanID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"attendance_scan_id"`
	AttendanceScanLibraryID uuid.UUID `gorm:"type:uuid;not null;index" json:"attendance_scan_library_id"`
	AttendanceScanStudentID uuid.UUID `gorm:"type:uuid;not null;index:idx_attendance_scan_student_day" json:"attendance_scan_student_id"`

	// DayKey is the library-local calendar day ("2006-01-02"); a scan just
	// after midnight lands on the new local day, not the UTC one.
	AttendanceScanDayKey    string    `gorm:"type:varchar(10);not null;index:idx_attendance_scan_student_day" json:"attendance_scan_day_key"`
	AttendanceScanScannedAt time.Time `gorm:"not null" json:"attendance_scan_scanned_at"`

	AttendanceScanCreatedAt time.Time `gorm:"autoCreateTime" json:"attendance_scan_created_at"`
}

func (AttendanceScanEventModel) TableName() string {
	return "attendance_scan_events"
}

// DailyAttendanceModel is the per-student per-day summary the register reads.
// FirstIn is set by the day's first scan and never moves; LastOut follows the
// most recent check-out; TotalMinutes accumulates completed in/out sessions.
type DailyAttendanceModel struct {
	DailyAttendanceID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"daily_attendance_id"`
	DailyAttendanceLibraryID uuid.UUID `gorm:"type:uuid;not null;index" json:"daily_attendance_library_id"`
	DailyAttendanceStudentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_daily_attendance_student_day" json:"daily_attendance_student_id"`
	DailyAttendanceDayKey    string    `gorm:"type:varchar(10);not null;uniqueIndex:uq_daily_attendance_student_day" json:"daily_attendance_day_key"`

	DailyAttendanceFirstIn      time.Time  `gorm:"not null" json:"daily_attendance_first_in"`
	DailyAttendanceLastOut      *time.Time `json:"daily_attendance_last_out,omitempty"`
	DailyAttendanceScanCount    int        `gorm:"not null;default:0" json:"daily_attendance_scan_count"`
	DailyAttendanceTotalMinutes int        `gorm:"not null;default:0" json:"daily_attendance_total_minutes"`
	DailyAttendanceCheckedIn    bool       `gorm:"not null;default:false" json:"daily_attendance_checked_in"`

	DailyAttendanceCreatedAt time.Time `gorm:"autoCreateTime" json:"daily_attendance_created_at"`
	DailyAttendanceUpdatedAt time.Time `gorm:"autoUpdateTime" json:"daily_attendance_updated_at"`
}

func (DailyAttendanceModel) TableName() string {
	return "daily_attendance"
}
