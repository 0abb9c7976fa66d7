package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"studyhall_backend/internals/features/attendance/dto"
	"studyhall_backend/internals/features/attendance/model"
	"studyhall_backend/internals/features/attendance/service"
	libraryModel "studyhall_backend/internals/features/libraries/library/model"
	studentModel "studyhall_backend/internals/features/students/model"
	helper "studyhall_backend/internals/helpers"
)

// AttendanceAdminController serves the front desk: the daily register and the
// QR payload the library prints on its poster.
type AttendanceAdminController struct {
	DB *gorm.DB
}

func NewAttendanceAdminController(db *gorm.DB) *AttendanceAdminController {
	return &AttendanceAdminController{DB: db}
}

// QRPayload handles GET /api/a/attendance/qr — the JSON the poster encodes.
// It is stable per library, so the poster never needs reprinting.
func (ctl *AttendanceAdminController) QRPayload(c *fiber.Ctx) error {
	tenant, err := helper.GetTenant(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var lib libraryModel.LibraryModel
	err = ctl.DB.Where("library_id = ?", tenant.LibraryID()).First(&lib).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "library not found")
	}
	if err != nil {
		return helper.JsonInternal(c, err)
	}

	return helper.JsonOK(c, "ok", dto.QRPayload{
		Type:        "attendance",
		LibraryID:   lib.LibraryID.String(),
		LibraryCode: lib.LibraryCode,
		LibraryName: lib.LibraryName,
	})
}

// Register handles GET /api/a/attendance/register?date=2026-08-31 — every
// student who scanned on that library-local day, joined with their names.
// Defaults to today in the library's timezone.
func (ctl *AttendanceAdminController) Register(c *fiber.Ctx) error {
	tenant, err := helper.GetTenant(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var lib libraryModel.LibraryModel
	if err := ctl.DB.Where("library_id = ?", tenant.LibraryID()).
		First(&lib).Error; err != nil {
		return helper.JsonInternal(c, err)
	}

	dayKey := c.Query("date")
	if dayKey == "" {
		dayKey = service.DayKey(time.Now(), lib.Location())
	} else if _, err := time.Parse("2006-01-02", dayKey); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid date (expected YYYY-MM-DD)")
	}

	var summaries []model.DailyAttendanceModel
	if err := ctl.DB.Scopes(tenant.Scope("daily_attendance_library_id")).
		Where("daily_attendance_day_key = ?", dayKey).
		Order("daily_attendance_first_in ASC").
		Find(&summaries).Error; err != nil {
		return helper.JsonInternal(c, err)
	}

	rows := make([]dto.RegisterRow, 0, len(summaries))
	if len(summaries) > 0 {
		ids := make([]any, 0, len(summaries))
		for _, s := range summaries {
			ids = append(ids, s.DailyAttendanceStudentID)
		}
		var students []studentModel.StudentModel
		if err := ctl.DB.Unscoped().
			Where("student_id IN ?", ids).
			Find(&students).Error; err != nil {
			return helper.JsonInternal(c, err)
		}
		names := make(map[string]studentModel.StudentModel, len(students))
		for _, s := range students {
			names[s.StudentID.String()] = s
		}
		for _, s := range summaries {
			row := dto.RegisterRow{
				StudentID:    s.DailyAttendanceStudentID,
				FirstIn:      s.DailyAttendanceFirstIn,
				LastOut:      s.DailyAttendanceLastOut,
				TotalMinutes: s.DailyAttendanceTotalMinutes,
				CheckedIn:    s.DailyAttendanceCheckedIn,
			}
			if st, ok := names[s.DailyAttendanceStudentID.String()]; ok {
				row.StudentName = st.StudentName
				row.RegistrationNumber = st.StudentRegistrationNumber
			}
			rows = append(rows, row)
		}
	}

	return helper.JsonOK(c, "attendance register", fiber.Map{
		"date":    dayKey,
		"present": len(rows),
		"rows":    rows,
	})
}
