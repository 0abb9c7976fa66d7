package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"studyhall_backend/internals/features/admissions/dto"
	"studyhall_backend/internals/features/admissions/model"
	"studyhall_backend/internals/features/admissions/service"
	paymentModel "studyhall_backend/internals/features/finance/payments/model"
	facilityModel "studyhall_backend/internals/features/libraries/facilities/model"
	studentModel "studyhall_backend/internals/features/students/model"
	helper "studyhall_backend/internals/helpers"
)

// AdmissionAdminController is the review desk: list the queue, inspect one
// request, then approve (materialize a student) or reject it.
type AdmissionAdminController struct {
	DB *gorm.DB
}

func NewAdmissionAdminController(db *gorm.DB) *AdmissionAdminController {
	return &AdmissionAdminController{DB: db}
}

var admissionSortable = map[string]string{
	"created_at": "admission_request_created_at",
	"name":       "admission_request_name",
	"status":     "admission_request_status",
}

// List handles GET /api/a/admissions?status=&q=&page=&per_page=
func (ctl *AdmissionAdminController) List(c *fiber.Ctx) error {
	tenant, err := helper.GetTenant(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)
	order, err := p.SafeOrderClause(admissionSortable, "created_at")
	if err != nil {
		return helper.JsonInternal(c, err)
	}

	q := ctl.DB.Model(&model.AdmissionRequestModel{}).
		Scopes(tenant.Scope("admission_request_library_id"))

	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("admission_request_status = ?", status)
	}
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		pat := "%" + search + "%"
		q = q.Where("admission_request_name ILIKE ? OR admission_request_phone ILIKE ?", pat, pat)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonInternal(c, err)
	}

	var rows []model.AdmissionRequestModel
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&rows).Error; err != nil {
		return helper.JsonInternal(c, err)
	}

	return helper.JsonList(c, "admission requests", rows, helper.BuildMeta(total, p))
}

// GetByID handles GET /api/a/admissions/:id
func (ctl *AdmissionAdminController) GetByID(c *fiber.Ctx) error {
	tenant, err := helper.GetTenant(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid admission request id")
	}

	var row model.AdmissionRequestModel
	err = ctl.DB.Scopes(tenant.Scope("admission_request_library_id")).
		Where("admission_request_id = ?", id).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "admission request not found")
	}
	if err != nil {
		return helper.JsonInternal(c, err)
	}
	return helper.JsonOK(c, "ok", row)
}

// Approve handles POST /api/a/admissions/:id/approve.
//
// One transaction: lock the request, verify it is still pending, create the
// student carrying over every intake field, claim the locker if one was
// requested, write the admission payment into the ledger, then flip the
// request to approved. Any failure rolls the whole thing back.
func (ctl *AdmissionAdminController) Approve(c *fiber.Ctx) error {
	tenant, err := helper.GetTenant(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	adminID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid admission request id")
	}

	var body dto.ApproveRequest
	// Body is optional; ignore parse errors on an empty payload.
	_ = c.BodyParser(&body)

	var created studentModel.StudentModel

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		var req model.AdmissionRequestModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Scopes(tenant.Scope("admission_request_library_id")).
			Where("admission_request_id = ?", id).
			First(&req).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "admission request not found")
		}
		if err != nil {
			return err
		}

		if !service.CanTransition(req.AdmissionRequestStatus, model.StatusApproved) {
			return fiber.NewError(fiber.StatusConflict,
				"request is already "+req.AdmissionRequestStatus)
		}

		var n int64
		if err := tx.Model(&studentModel.StudentModel{}).
			Where("student_library_id = ? AND student_phone = ? AND student_deleted_at IS NULL",
				tenant.LibraryID(), req.AdmissionRequestPhone).
			Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return fiber.NewError(fiber.StatusConflict,
				"an active student with this phone number already exists")
		}

		regNo := req.AdmissionRequestRegistrationNumber
		if body.RegistrationNumber != nil && strings.TrimSpace(*body.RegistrationNumber) != "" {
			v := strings.TrimSpace(*body.RegistrationNumber)
			regNo = &v
		}

		created = studentModel.StudentModel{
			StudentLibraryID: tenant.LibraryID(),
			StudentName:      req.AdmissionRequestName,
			StudentEmail:     req.AdmissionRequestEmail,
			StudentPhone:     req.AdmissionRequestPhone,
			StudentAddress:   req.AdmissionRequestAddress,

			StudentBranchID:        req.AdmissionRequestBranchID,
			StudentSeatID:          req.AdmissionRequestSeatID,
			StudentLockerID:        req.AdmissionRequestLockerID,
			StudentShiftIDs:        req.AdmissionRequestShiftIDs,
			StudentMembershipStart: req.AdmissionRequestMembershipStart,
			StudentMembershipEnd:   req.AdmissionRequestMembershipEnd,

			StudentTotalFee:      req.AdmissionRequestTotalFee,
			StudentAmountPaid:    req.AdmissionRequestAmountPaid,
			StudentDiscount:      req.AdmissionRequestDiscount,
			StudentDueAmount: service.ComputeDue(
				req.AdmissionRequestTotalFee, req.AdmissionRequestDiscount, req.AdmissionRequestAmountPaid),
			StudentSecurityMoney: req.AdmissionRequestSecurityMoney,

			StudentRegistrationNumber: regNo,
			StudentFatherName:         req.AdmissionRequestFatherName,
			StudentAadharNumber:       req.AdmissionRequestAadharNumber,
			StudentProfileImageURL:    req.AdmissionRequestProfileImageURL,
			StudentAdmissionRequestID: &req.AdmissionRequestID,
		}
		if err := tx.Create(&created).Error; err != nil {
			return err
		}

		if req.AdmissionRequestLockerID != nil {
			res := tx.Model(&facilityModel.LockerModel{}).
				Where("locker_id = ? AND locker_library_id = ? AND locker_is_assigned = FALSE",
					*req.AdmissionRequestLockerID, tenant.LibraryID()).
				Updates(map[string]any{
					"locker_is_assigned": true,
					"locker_student_id":  created.StudentID,
				})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return fiber.NewError(fiber.StatusConflict, "requested locker is no longer available")
			}
		}

		if req.AdmissionRequestAmountPaid.IsPositive() {
			pay := paymentModel.PaymentRecordModel{
				PaymentRecordLibraryID: tenant.LibraryID(),
				PaymentRecordStudentID: created.StudentID,
				PaymentRecordAmount:    req.AdmissionRequestAmountPaid,
				PaymentRecordCash:      req.AdmissionRequestCash,
				PaymentRecordOnline:    req.AdmissionRequestOnline,
				PaymentRecordSource:    paymentModel.SourceAdmission,
				PaymentRecordMonthTag:  time.Now().Format("2006-01"),
				PaymentRecordCreatedBy: &adminID,
			}
			if err := tx.Create(&pay).Error; err != nil {
				return err
			}
		}

		now := time.Now()
		return tx.Model(&model.AdmissionRequestModel{}).
			Where("admission_request_id = ?", req.AdmissionRequestID).
			Updates(map[string]any{
				"admission_request_status":       model.StatusApproved,
				"admission_request_processed_at": now,
				"admission_request_processed_by": adminID,
			}).Error
	})
	if err != nil {
		if helper.IsUniqueViolation(err, "uq_students_phone_alive") {
			return helper.JsonError(c, fiber.StatusConflict,
				"an active student with this phone number already exists")
		}
		return helper.FromFiberError(c, err)
	}

	return helper.JsonCreated(c, "admission approved", created)
}

// Reject handles POST /api/a/admissions/:id/reject. The row is kept with its
// reason; the same phone may re-apply afterwards.
func (ctl *AdmissionAdminController) Reject(c *fiber.Ctx) error {
	tenant, err := helper.GetTenant(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	adminID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid admission request id")
	}

	var body dto.RejectRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if fieldErrs := helper.ValidateStruct(body); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	var row model.AdmissionRequestModel
	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Scopes(tenant.Scope("admission_request_library_id")).
			Where("admission_request_id = ?", id).
			First(&row).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "admission request not found")
		}
		if err != nil {
			return err
		}
		if !service.CanTransition(row.AdmissionRequestStatus, model.StatusRejected) {
			return fiber.NewError(fiber.StatusConflict,
				"request is already "+row.AdmissionRequestStatus)
		}

		now := time.Now()
		reason := strings.TrimSpace(body.Reason)
		row.AdmissionRequestStatus = model.StatusRejected
		row.AdmissionRequestRejectionReason = &reason
		row.AdmissionRequestProcessedAt = &now
		row.AdmissionRequestProcessedBy = &adminID

		return tx.Model(&model.AdmissionRequestModel{}).
			Where("admission_request_id = ?", row.AdmissionRequestID).
			Updates(map[string]any{
				"admission_request_status":           model.StatusRejected,
				"admission_request_rejection_reason": reason,
				"admission_request_processed_at":     now,
				"admission_request_processed_by":     adminID,
			}).Error
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonUpdated(c, "admission rejected", row)
}
