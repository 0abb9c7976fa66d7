package constants

const (
	RoleOwner   = "owner"   // platform operator, cross-library
	RoleAdmin   = "admin"   // library admin
	RoleStudent = "student" // member with a QR-scan session
)

// Locals keys hydrated by the auth middleware.
const (
	LocUserID    = "user_id"
	LocStudentID = "student_id"
	LocLibraryID = "library_id"
	LocRole      = "role"
)
