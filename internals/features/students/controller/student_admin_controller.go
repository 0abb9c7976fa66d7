package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"studyhall_backend/internals/features/students/dto"
	"studyhall_backend/internals/features/students/model"
	"studyhall_backend/internals/features/students/service"
	helper "studyhall_backend/internals/helpers"
)

type StudentAdminController struct {
	DB *gorm.DB
}

func NewStudentAdminController(db *gorm.DB) *StudentAdminController {
	return &StudentAdminController{DB: db}
}

var studentSortable = map[string]string{
	"created_at":     "student_created_at",
	"name":           "student_name",
	"membership_end": "student_membership_end",
	"due_amount":     "student_due_amount",
}

// List handles GET /api/a/students?q=&status=&due=&page=.
// status=expired/active and due=true are post-filters on the derived flags,
// so the strict date comparison lives in exactly one place (the deriver).
func (ctl *StudentAdminController) List(c *fiber.Ctx) error {
	tenant, err := helper.GetTenant(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)
	order, err := p.SafeOrderClause(studentSortable, "created_at")
	if err != nil {
		return helper.JsonInternal(c, err)
	}

	q := ctl.DB.Model(&model.StudentModel{}).
		Scopes(tenant.Scope("student_library_id"))
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		pat := "%" + search + "%"
		q = q.Where("student_name ILIKE ? OR student_phone ILIKE ? OR student_registration_number ILIKE ?",
			pat, pat, pat)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonInternal(c, err)
	}

	var rows []model.StudentModel
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&rows).Error; err != nil {
		return helper.JsonInternal(c, err)
	}

	now := time.Now()
	out := dto.ToStudentResponses(rows, now)

	if status := strings.TrimSpace(c.Query("status")); status != "" {
		filtered := out[:0]
		for _, s := range out {
			if s.MembershipStatus == status {
				filtered = append(filtered, s)
			}
		}
		out = filtered
	}
	if c.Query("due") == "true" {
		filtered := out[:0]
		for _, s := range out {
			if s.HasDueAmount {
				filtered = append(filtered, s)
			}
		}
		out = filtered
	}

	return helper.JsonList(c, "students", out, helper.BuildMeta(total, p))
}

// Create handles POST /api/a/students — direct enrollment without the public
// intake. The partial unique index on active phones is the duplicate gate.
func (ctl *StudentAdminController) Create(c *fiber.Ctx) error {
	tenant, err := helper.GetTenant(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}
	branchID, err := uuid.Parse(req.BranchID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid branch_id")
	}

	row := model.StudentModel{
		StudentLibraryID: tenant.LibraryID(),
		StudentName:      strings.TrimSpace(req.Name),
		StudentPhone:     strings.TrimSpace(req.Phone),
		StudentBranchID:  branchID,

		StudentTotalFee:   req.TotalFee.Decimal,
		StudentAmountPaid: req.AmountPaid.Decimal,
		StudentDiscount:   req.Discount.Decimal,
		StudentDueAmount:  req.TotalFee.Sub(req.Discount.Decimal).Sub(req.AmountPaid.Decimal),
	}
	if req.Email != nil {
		v := strings.TrimSpace(*req.Email)
		row.StudentEmail = &v
	}
	if req.Address != nil {
		row.StudentAddress = req.Address
	}
	if req.RegistrationNumber != nil {
		v := strings.TrimSpace(*req.RegistrationNumber)
		row.StudentRegistrationNumber = &v
	}
	if req.FatherName != nil {
		row.StudentFatherName = req.FatherName
	}
	if req.SeatID != nil {
		id, err := uuid.Parse(strings.TrimSpace(*req.SeatID))
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid seat_id")
		}
		row.StudentSeatID = &id
	}
	if req.MembershipStart != nil {
		t, err := time.Parse("2006-01-02", strings.TrimSpace(*req.MembershipStart))
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid membership_start (expected YYYY-MM-DD)")
		}
		row.StudentMembershipStart = &t
	}
	if req.MembershipEnd != nil {
		t, err := time.Parse("2006-01-02", strings.TrimSpace(*req.MembershipEnd))
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid membership_end (expected YYYY-MM-DD)")
		}
		row.StudentMembershipEnd = &t
	}

	if err := ctl.DB.Create(&row).Error; err != nil {
		if helper.IsUniqueViolation(err, "uq_students_phone_alive") {
			return helper.JsonError(c, fiber.StatusConflict,
				"an active student with this phone number already exists")
		}
		return helper.JsonInternal(c, err)
	}
	return helper.JsonCreated(c, "student created", dto.ToStudentResponse(row, time.Now()))
}

// GetByID handles GET /api/a/students/:id
func (ctl *StudentAdminController) GetByID(c *fiber.Ctx) error {
	tenant, err := helper.GetTenant(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid student id")
	}

	var row model.StudentModel
	err = ctl.DB.Scopes(tenant.Scope("student_library_id")).
		Where("student_id = ?", id).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "student not found")
	}
	if err != nil {
		return helper.JsonInternal(c, err)
	}
	return helper.JsonOK(c, "ok", dto.ToStudentResponse(row, time.Now()))
}

// Update handles PATCH /api/a/students/:id — profile and membership window
// edits. Money fields are deliberately not editable here; they only move
// through the payment ledger.
func (ctl *StudentAdminController) Update(c *fiber.Ctx) error {
	tenant, err := helper.GetTenant(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid student id")
	}

	var req dto.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["student_name"] = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		updates["student_email"] = strings.TrimSpace(*req.Email)
	}
	if req.Address != nil {
		updates["student_address"] = strings.TrimSpace(*req.Address)
	}
	if req.FatherName != nil {
		updates["student_father_name"] = strings.TrimSpace(*req.FatherName)
	}
	if req.ProfileImageURL != nil {
		updates["student_profile_image_url"] = strings.TrimSpace(*req.ProfileImageURL)
	}
	if req.SeatID != nil {
		seatID, err := uuid.Parse(strings.TrimSpace(*req.SeatID))
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid seat_id")
		}
		updates["student_seat_id"] = seatID
	}
	if req.MembershipStart != nil {
		t, err := time.Parse("2006-01-02", strings.TrimSpace(*req.MembershipStart))
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid membership_start (expected YYYY-MM-DD)")
		}
		updates["student_membership_start"] = t
	}
	if req.MembershipEnd != nil {
		t, err := time.Parse("2006-01-02", strings.TrimSpace(*req.MembershipEnd))
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid membership_end (expected YYYY-MM-DD)")
		}
		updates["student_membership_end"] = t
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "no fields to update")
	}

	res := ctl.DB.Model(&model.StudentModel{}).
		Scopes(tenant.Scope("student_library_id")).
		Where("student_id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return helper.JsonInternal(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "student not found")
	}

	var row model.StudentModel
	if err := ctl.DB.Scopes(tenant.Scope("student_library_id")).
		Where("student_id = ?", id).First(&row).Error; err != nil {
		return helper.JsonInternal(c, err)
	}
	return helper.JsonUpdated(c, "student updated", dto.ToStudentResponse(row, time.Now()))
}

// Delete handles DELETE /api/a/students/:id — soft delete, which frees the
// phone number for a fresh registration via the partial unique index.
func (ctl *StudentAdminController) Delete(c *fiber.Ctx) error {
	tenant, err := helper.GetTenant(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid student id")
	}
	res := ctl.DB.Scopes(tenant.Scope("student_library_id")).
		Where("student_id = ?", id).
		Delete(&model.StudentModel{})
	if res.Error != nil {
		return helper.JsonInternal(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "student not found")
	}
	return helper.JsonDeleted(c, "student deleted", fiber.Map{"student_id": id})
}

// Overview handles GET /api/a/students/overview — the dashboard counters.
func (ctl *StudentAdminController) Overview(c *fiber.Ctx) error {
	tenant, err := helper.GetTenant(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var rows []model.StudentModel
	if err := ctl.DB.Scopes(tenant.Scope("student_library_id")).
		Find(&rows).Error; err != nil {
		return helper.JsonInternal(c, err)
	}

	now := time.Now()
	var active, expired, withDue int
	for _, m := range rows {
		st := service.DeriveStatus(m.StudentMembershipEnd, m.StudentDueAmount, now)
		if st.MembershipStatus == service.MembershipExpired {
			expired++
		} else {
			active++
		}
		if st.HasDueAmount {
			withDue++
		}
	}

	return helper.JsonOK(c, "ok", fiber.Map{
		"total":    len(rows),
		"active":   active,
		"expired":  expired,
		"with_due": withDue,
	})
}
