package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	facilityModel "studyhall_backend/internals/features/libraries/facilities/model"
	"studyhall_backend/internals/features/libraries/library/dto"
	"studyhall_backend/internals/features/libraries/library/model"
	helper "studyhall_backend/internals/helpers"
)

type LibraryController struct {
	DB *gorm.DB
}

func NewLibraryController(db *gorm.DB) *LibraryController {
	return &LibraryController{DB: db}
}

/* =========================================================
   Public — landing page for the registration form
========================================================= */

// GetPublicByCode handles GET /library/:libraryCode: the library's identity
// plus every facility the form offers. Lockers come back pre-filtered to
// unassigned ones so the form never offers a taken locker.
func (ctl *LibraryController) GetPublicByCode(c *fiber.Ctx) error {
	code := helper.NormalizeLibraryCode(c.Params("libraryCode"))

	var lib model.LibraryModel
	err := ctl.DB.
		Where("library_code = ? AND library_is_active = TRUE", code).
		First(&lib).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "library not found")
	}
	if err != nil {
		return helper.JsonInternal(c, err)
	}

	var (
		branches []facilityModel.BranchModel
		shifts   []facilityModel.ShiftModel
		seats    []facilityModel.SeatModel
		lockers  []facilityModel.LockerModel
	)
	if err := ctl.DB.Where("branch_library_id = ?", lib.LibraryID).
		Order("branch_name ASC").Find(&branches).Error; err != nil {
		return helper.JsonInternal(c, err)
	}
	if err := ctl.DB.Where("shift_library_id = ?", lib.LibraryID).
		Order("shift_start_time ASC").Find(&shifts).Error; err != nil {
		return helper.JsonInternal(c, err)
	}
	if err := ctl.DB.Where("seat_library_id = ?", lib.LibraryID).
		Order("seat_number ASC").Find(&seats).Error; err != nil {
		return helper.JsonInternal(c, err)
	}
	if err := ctl.DB.Where("locker_library_id = ? AND locker_is_assigned = FALSE", lib.LibraryID).
		Order("locker_number ASC").Find(&lockers).Error; err != nil {
		return helper.JsonInternal(c, err)
	}

	return helper.JsonOK(c, "ok", dto.ToPublicLibraryResponse(lib, branches, shifts, seats, lockers))
}

/* =========================================================
   Owner — tenant administration
========================================================= */

// Create handles POST /api/o/libraries. Codes are stored uppercase; the
// unique index on library_code is the authority on collisions.
func (ctl *LibraryController) Create(c *fiber.Ctx) error {
	var req dto.CreateLibraryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	tz := strings.TrimSpace(req.Timezone)
	if tz == "" {
		tz = "Asia/Kolkata"
	}

	lib := model.LibraryModel{
		LibraryName:      strings.TrimSpace(req.Name),
		LibraryOwnerName: strings.TrimSpace(req.OwnerName),
		LibraryCode:      helper.NormalizeLibraryCode(req.Code),
		LibraryTimezone:  tz,
		LibraryAddress:   strings.TrimSpace(req.Address),
		LibraryPhone:     strings.TrimSpace(req.Phone),
		LibraryIsActive:  true,
	}
	if err := ctl.DB.Create(&lib).Error; err != nil {
		if helper.IsUniqueViolation(err, "") {
			return helper.JsonError(c, fiber.StatusConflict, "library code already in use")
		}
		return helper.JsonInternal(c, err)
	}
	return helper.JsonCreated(c, "library created", lib)
}

// List handles GET /api/o/libraries
func (ctl *LibraryController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	q := ctl.DB.Model(&model.LibraryModel{})
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		pat := "%" + search + "%"
		q = q.Where("library_name ILIKE ? OR library_code ILIKE ?", pat, pat)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonInternal(c, err)
	}
	var rows []model.LibraryModel
	if err := q.Order("library_created_at DESC").
		Limit(p.Limit()).Offset(p.Offset()).Find(&rows).Error; err != nil {
		return helper.JsonInternal(c, err)
	}
	return helper.JsonList(c, "libraries", rows, helper.BuildMeta(total, p))
}

// Update handles PATCH /api/o/libraries/:id
func (ctl *LibraryController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid library id")
	}

	var req dto.UpdateLibraryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["library_name"] = strings.TrimSpace(*req.Name)
	}
	if req.OwnerName != nil {
		updates["library_owner_name"] = strings.TrimSpace(*req.OwnerName)
	}
	if req.Timezone != nil {
		updates["library_timezone"] = strings.TrimSpace(*req.Timezone)
	}
	if req.Address != nil {
		updates["library_address"] = strings.TrimSpace(*req.Address)
	}
	if req.Phone != nil {
		updates["library_phone"] = strings.TrimSpace(*req.Phone)
	}
	if req.IsActive != nil {
		updates["library_is_active"] = *req.IsActive
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "no fields to update")
	}

	res := ctl.DB.Model(&model.LibraryModel{}).
		Where("library_id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return helper.JsonInternal(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "library not found")
	}

	var lib model.LibraryModel
	if err := ctl.DB.Where("library_id = ?", id).First(&lib).Error; err != nil {
		return helper.JsonInternal(c, err)
	}
	return helper.JsonUpdated(c, "library updated", lib)
}
