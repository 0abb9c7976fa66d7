package database

import (
	"log"

	admissionModel "studyhall_backend/internals/features/admissions/model"
	announcementModel "studyhall_backend/internals/features/announcements/model"
	attendanceModel "studyhall_backend/internals/features/attendance/model"
	billingModel "studyhall_backend/internals/features/billing/model"
	expenseModel "studyhall_backend/internals/features/finance/expenses/model"
	paymentModel "studyhall_backend/internals/features/finance/payments/model"
	facilityModel "studyhall_backend/internals/features/libraries/facilities/model"
	libraryModel "studyhall_backend/internals/features/libraries/library/model"
	studentModel "studyhall_backend/internals/features/students/model"
	userModel "studyhall_backend/internals/features/users/model"
)

// Migrate runs AutoMigrate for every table plus the partial unique indexes
// GORM tags cannot express. The pending-phone index is the duplicate gate for
// public registration: a second pending request for the same phone+library is
// refused by the database itself, not just by the pre-insert check.
func Migrate() {
	if err := DB.AutoMigrate(
		&libraryModel.LibraryModel{},
		&facilityModel.BranchModel{},
		&facilityModel.ShiftModel{},
		&facilityModel.SeatModel{},
		&facilityModel.LockerModel{},
		&admissionModel.AdmissionRequestModel{},
		&studentModel.StudentModel{},
		&attendanceModel.AttendanceScanEventModel{},
		&attendanceModel.DailyAttendanceModel{},
		&paymentModel.PaymentRecordModel{},
		&expenseModel.ExpenseModel{},
		&announcementModel.AnnouncementModel{},
		&billingModel.SubscriptionPlanModel{},
		&billingModel.LibrarySubscriptionModel{},
		&userModel.UserModel{},
	); err != nil {
		log.Fatalf("auto-migrate failed: %v", err)
	}

	partials := []string{
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_admission_requests_pending_phone
			ON admission_requests (admission_request_library_id, admission_request_phone)
			WHERE admission_request_status = 'pending'`,
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_students_phone_alive
			ON students (student_library_id, student_phone)
			WHERE student_deleted_at IS NULL`,
	}
	for _, stmt := range partials {
		if err := DB.Exec(stmt).Error; err != nil {
			log.Fatalf("index migrate failed: %v", err)
		}
	}
}
