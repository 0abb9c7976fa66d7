package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"studyhall_backend/internals/features/attendance/dto"
	"studyhall_backend/internals/features/attendance/model"
	"studyhall_backend/internals/features/attendance/service"
	libraryModel "studyhall_backend/internals/features/libraries/library/model"
	studentModel "studyhall_backend/internals/features/students/model"
	helper "studyhall_backend/internals/helpers"
)

// ScanController is the student-side QR surface. A scan is a toggle: the
// parity of the student's same-day scan count decides whether it lands as a
// check-in or a check-out.
type ScanController struct {
	DB *gorm.DB
}

func NewScanController(db *gorm.DB) *ScanController {
	return &ScanController{DB: db}
}

// Scan handles POST /api/s/attendance/scan.
//
// The QR belongs to a library; the token belongs to a student. They must
// agree — a student scanning some other library's poster gets a 403, not an
// attendance row in the wrong tenant.
func (ctl *ScanController) Scan(c *fiber.Ctx) error {
	studentID, err := helper.GetStudentIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var payload dto.QRPayload
	if err := c.BodyParser(&payload); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid QR payload")
	}
	if fieldErrs := helper.ValidateStruct(payload); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}
	qrLibraryID, err := uuid.Parse(payload.LibraryID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid QR payload")
	}

	var student studentModel.StudentModel
	err = ctl.DB.Where("student_id = ?", studentID).First(&student).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "student not found")
	}
	if err != nil {
		return helper.JsonInternal(c, err)
	}
	if student.StudentLibraryID != qrLibraryID {
		return helper.JsonError(c, fiber.StatusForbidden,
			"this QR code belongs to a different library")
	}

	var lib libraryModel.LibraryModel
	if err := ctl.DB.Where("library_id = ?", student.StudentLibraryID).
		First(&lib).Error; err != nil {
		return helper.JsonInternal(c, err)
	}

	if service.IsDuplicateScan(c.Context(), studentID) {
		return helper.JsonError(c, fiber.StatusTooManyRequests,
			"scan already recorded, please wait a moment")
	}

	now := time.Now()
	dayKey := service.DayKey(now, lib.Location())

	var (
		direction service.Direction
		summary   model.DailyAttendanceModel
	)

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		// Lock the day summary row (creating it on the first scan) so two
		// concurrent scans serialize and the parity toggle stays correct.
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("daily_attendance_student_id = ? AND daily_attendance_day_key = ?", studentID, dayKey).
			First(&summary).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			summary = model.DailyAttendanceModel{
				DailyAttendanceLibraryID: student.StudentLibraryID,
				DailyAttendanceStudentID: studentID,
				DailyAttendanceDayKey:    dayKey,
			}
		case err != nil:
			return err
		}

		// The open session (if any) started at the day's most recent scan.
		var sessionStart time.Time
		if summary.DailyAttendanceCheckedIn {
			var last model.AttendanceScanEventModel
			err := tx.Where("attendance_scan_student_id = ? AND attendance_scan_day_key = ?", studentID, dayKey).
				Order("attendance_scan_scanned_at DESC").
				First(&last).Error
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			if err == nil {
				sessionStart = last.AttendanceScanScannedAt
			}
		}

		direction, _ = service.ApplyScan(&summary, now, sessionStart)

		event := model.AttendanceScanEventModel{
			AttendanceScanLibraryID: student.StudentLibraryID,
			AttendanceScanStudentID: studentID,
			AttendanceScanDayKey:    dayKey,
			AttendanceScanScannedAt: now,
		}
		if err := tx.Create(&event).Error; err != nil {
			return err
		}
		return tx.Save(&summary).Error
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonOK(c, "attendance recorded", dto.ScanResponse{
		Direction:    string(direction),
		DayKey:       dayKey,
		ScannedAt:    now,
		FirstIn:      summary.DailyAttendanceFirstIn,
		LastOut:      summary.DailyAttendanceLastOut,
		TotalMinutes: summary.DailyAttendanceTotalMinutes,
		CheckedIn:    summary.DailyAttendanceCheckedIn,
	})
}

// History handles GET /api/s/attendance?month=2026-08 — the student's own day
// summaries, newest first.
func (ctl *ScanController) History(c *fiber.Ctx) error {
	studentID, err := helper.GetStudentIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	q := ctl.DB.Where("daily_attendance_student_id = ?", studentID)
	if month := c.Query("month"); month != "" {
		if _, err := time.Parse("2006-01", month); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid month (expected YYYY-MM)")
		}
		q = q.Where("daily_attendance_day_key LIKE ?", month+"%")
	}

	var rows []model.DailyAttendanceModel
	if err := q.Order("daily_attendance_day_key DESC").Find(&rows).Error; err != nil {
		return helper.JsonInternal(c, err)
	}
	return helper.JsonOK(c, "attendance", rows)
}
