package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"studyhall_backend/internals/features/admissions/dto"
	"studyhall_backend/internals/features/admissions/model"
	libraryModel "studyhall_backend/internals/features/libraries/library/model"
	studentModel "studyhall_backend/internals/features/students/model"
	helper "studyhall_backend/internals/helpers"
)

// PublicRegistrationController serves the unauthenticated intake surface:
// submit a registration request and poll its status by phone. The library
// code in the path is the only scoping input, so everything is keyed off it.
type PublicRegistrationController struct {
	DB *gorm.DB
}

func NewPublicRegistrationController(db *gorm.DB) *PublicRegistrationController {
	return &PublicRegistrationController{DB: db}
}

func (ctl *PublicRegistrationController) findActiveLibrary(code string) (libraryModel.LibraryModel, error) {
	var lib libraryModel.LibraryModel
	err := ctl.DB.
		Where("library_code = ? AND library_is_active = TRUE", helper.NormalizeLibraryCode(code)).
		First(&lib).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return lib, fiber.NewError(fiber.StatusNotFound, "library not found")
	}
	return lib, err
}

// Register handles POST /library/:libraryCode/register.
//
// The duplicate gate is two-layered: a pre-check inside the transaction for a
// friendly message, and the partial unique index on (library_id, phone)
// WHERE status='pending' as the authority under concurrent submits. Both
// answer 400 — the public form treats a duplicate like any other bad input.
func (ctl *PublicRegistrationController) Register(c *fiber.Ctx) error {
	lib, err := ctl.findActiveLibrary(c.Params("libraryCode"))
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	row, err := req.ToModel(lib.LibraryID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&model.AdmissionRequestModel{}).
			Where("admission_request_library_id = ? AND admission_request_phone = ? AND admission_request_status = ?",
				lib.LibraryID, row.AdmissionRequestPhone, model.StatusPending).
			Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return fiber.NewError(fiber.StatusBadRequest,
				"a registration request for this phone number is already pending review")
		}

		if err := tx.Model(&studentModel.StudentModel{}).
			Where("student_library_id = ? AND student_phone = ? AND student_deleted_at IS NULL",
				lib.LibraryID, row.AdmissionRequestPhone).
			Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return fiber.NewError(fiber.StatusBadRequest,
				"this phone number already belongs to an enrolled student")
		}

		return tx.Create(&row).Error
	})
	if err != nil {
		if helper.IsUniqueViolation(err, "uq_admission_requests_pending_phone") {
			return helper.JsonError(c, fiber.StatusBadRequest,
				"a registration request for this phone number is already pending review")
		}
		return helper.FromFiberError(c, err)
	}

	return helper.JsonCreated(c, "registration submitted", dto.RegisterResponse{
		RequestID:   row.AdmissionRequestID,
		SubmittedAt: row.AdmissionRequestCreatedAt,
		Status:      row.AdmissionRequestStatus,
		Note:        "your request is pending review by " + lib.LibraryName,
	})
}

// Status handles GET /library/:libraryCode/status/:phone — the most recent
// request for that phone, whatever its state.
func (ctl *PublicRegistrationController) Status(c *fiber.Ctx) error {
	lib, err := ctl.findActiveLibrary(c.Params("libraryCode"))
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	phone := strings.TrimSpace(c.Params("phone"))
	if phone == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "phone is required")
	}

	var row model.AdmissionRequestModel
	err = ctl.DB.
		Where("admission_request_library_id = ? AND admission_request_phone = ?", lib.LibraryID, phone).
		Order("admission_request_created_at DESC").
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "no registration request found for this phone number")
	}
	if err != nil {
		return helper.JsonInternal(c, err)
	}

	return helper.JsonOK(c, "ok", dto.ToStatusResponse(lib.LibraryName, lib.LibraryCode, row))
}
