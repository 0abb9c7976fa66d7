package dto

import (
	"time"

	"github.com/google/uuid"
)

// QRPayload is the JSON encoded into the poster QR the library prints. The
// student app scans it and posts it back verbatim.
type QRPayload struct {
	Type        string `json:"type" validate:"required,eq=attendance"`
	LibraryID   string `json:"library_id" validate:"required,uuid4"`
	LibraryCode string `json:"library_code"`
	LibraryName string `json:"library_name"`
}

type ScanResponse struct {
	Direction    string     `json:"direction"` // in|out
	DayKey       string     `json:"day_key"`
	ScannedAt    time.Time  `json:"scanned_at"`
	FirstIn      time.Time  `json:"first_in"`
	LastOut      *time.Time `json:"last_out,omitempty"`
	TotalMinutes int        `json:"total_minutes"`
	CheckedIn    bool       `json:"checked_in"`
}

type RegisterRow struct {
	StudentID          uuid.UUID  `json:"student_id"`
	StudentName        string     `json:"student_name"`
	RegistrationNumber *string    `json:"registration_number,omitempty"`
	FirstIn            time.Time  `json:"first_in"`
	LastOut            *time.Time `json:"last_out,omitempty"`
	TotalMinutes       int        `json:"total_minutes"`
	CheckedIn          bool       `json:"checked_in"`
}
