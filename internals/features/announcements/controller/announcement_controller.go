package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"studyhall_backend/internals/features/announcements/dto"
	"studyhall_backend/internals/features/announcements/model"
	studentModel "studyhall_backend/internals/features/students/model"
	helper "studyhall_backend/internals/helpers"
)

type AnnouncementController struct {
	DB *gorm.DB
}

func NewAnnouncementController(db *gorm.DB) *AnnouncementController {
	return &AnnouncementController{DB: db}
}

func parseDate(s *string, field string) (*time.Time, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", strings.TrimSpace(*s))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "invalid "+field+" (expected YYYY-MM-DD)")
	}
	return &t, nil
}

// Create handles POST /api/a/announcements
func (ctl *AnnouncementController) Create(c *fiber.Ctx) error {
	tenant, err := helper.GetTenant(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.AnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	row := model.AnnouncementModel{
		AnnouncementLibraryID: tenant.LibraryID(),
		AnnouncementTitle:     strings.TrimSpace(req.Title),
		AnnouncementBody:      req.Body,
		AnnouncementIsActive:  true,
	}
	if row.AnnouncementStartsAt, err = parseDate(req.StartsAt, "starts_at"); err != nil {
		return helper.FromFiberError(c, err)
	}
	if row.AnnouncementEndsAt, err = parseDate(req.EndsAt, "ends_at"); err != nil {
		return helper.FromFiberError(c, err)
	}
	if req.IsActive != nil {
		row.AnnouncementIsActive = *req.IsActive
	}

	if err := ctl.DB.Create(&row).Error; err != nil {
		return helper.JsonInternal(c, err)
	}
	return helper.JsonCreated(c, "announcement created", row)
}

// List handles GET /api/a/announcements (admin view, all rows)
func (ctl *AnnouncementController) List(c *fiber.Ctx) error {
	tenant, err := helper.GetTenant(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var rows []model.AnnouncementModel
	if err := ctl.DB.Scopes(tenant.Scope("announcement_library_id")).
		Order("announcement_created_at DESC").Find(&rows).Error; err != nil {
		return helper.JsonInternal(c, err)
	}
	return helper.JsonOK(c, "announcements", rows)
}

// Update handles PATCH /api/a/announcements/:id
func (ctl *AnnouncementController) Update(c *fiber.Ctx) error {
	tenant, err := helper.GetTenant(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid announcement id")
	}

	var req dto.AnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	updates := map[string]any{
		"announcement_title": strings.TrimSpace(req.Title),
		"announcement_body":  req.Body,
	}
	if t, err := parseDate(req.StartsAt, "starts_at"); err != nil {
		return helper.FromFiberError(c, err)
	} else if t != nil {
		updates["announcement_starts_at"] = t
	}
	if t, err := parseDate(req.EndsAt, "ends_at"); err != nil {
		return helper.FromFiberError(c, err)
	} else if t != nil {
		updates["announcement_ends_at"] = t
	}
	if req.IsActive != nil {
		updates["announcement_is_active"] = *req.IsActive
	}

	res := ctl.DB.Model(&model.AnnouncementModel{}).
		Scopes(tenant.Scope("announcement_library_id")).
		Where("announcement_id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return helper.JsonInternal(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "announcement not found")
	}
	return helper.JsonUpdated(c, "announcement updated", fiber.Map{"announcement_id": id})
}

// Delete handles DELETE /api/a/announcements/:id
func (ctl *AnnouncementController) Delete(c *fiber.Ctx) error {
	tenant, err := helper.GetTenant(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid announcement id")
	}
	res := ctl.DB.Scopes(tenant.Scope("announcement_library_id")).
		Where("announcement_id = ?", id).
		Delete(&model.AnnouncementModel{})
	if res.Error != nil {
		return helper.JsonInternal(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "announcement not found")
	}
	return helper.JsonDeleted(c, "announcement deleted", fiber.Map{"announcement_id": id})
}

// ActiveForStudent handles GET /api/s/announcements: only active rows whose
// window covers today, for the logged-in student's library.
func (ctl *AnnouncementController) ActiveForStudent(c *fiber.Ctx) error {
	studentID, err := helper.GetStudentIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var student studentModel.StudentModel
	err = ctl.DB.Where("student_id = ?", studentID).First(&student).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "student not found")
	}
	if err != nil {
		return helper.JsonInternal(c, err)
	}

	now := time.Now()
	var rows []model.AnnouncementModel
	if err := ctl.DB.
		Where("announcement_library_id = ? AND announcement_is_active = TRUE", student.StudentLibraryID).
		Where("announcement_starts_at IS NULL OR announcement_starts_at <= ?", now).
		Where("announcement_ends_at IS NULL OR announcement_ends_at >= ?", now).
		Order("announcement_created_at DESC").
		Find(&rows).Error; err != nil {
		return helper.JsonInternal(c, err)
	}
	return helper.JsonOK(c, "announcements", rows)
}
