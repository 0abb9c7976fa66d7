package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"studyhall_backend/internals/features/libraries/facilities/dto"
	"studyhall_backend/internals/features/libraries/facilities/model"
	helper "studyhall_backend/internals/helpers"
)

// FacilityController manages the bookable inventory of one library: branches,
// shifts, seats and lockers. Everything here is admin-scoped through the
// token's tenant.
type FacilityController struct {
	DB *gorm.DB
}

func NewFacilityController(db *gorm.DB) *FacilityController {
	return &FacilityController{DB: db}
}

func parseIDParam(c *fiber.Ctx, what string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "invalid "+what+" id")
	}
	return id, nil
}

/* =========================================================
   Branches
========================================================= */

func (ctl *FacilityController) CreateBranch(c *fiber.Ctx) error {
	tenant, err := helper.GetTenant(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var req dto.BranchRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}
	row := model.BranchModel{
		BranchLibraryID: tenant.LibraryID(),
		BranchName:      strings.TrimSpace(req.Name),
		BranchAddress:   strings.TrimSpace(req.Address),
	}
	if err := ctl.DB.Create(&row).Error; err != nil {
		return helper.JsonInternal(c, err)
	}
	return helper.JsonCreated(c, "branch created", row)
}

func (ctl *FacilityController) ListBranches(c *fiber.Ctx) error {
	tenant, err := helper.GetTenant(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var rows []model.BranchModel
	if err := ctl.DB.Scopes(tenant.Scope("branch_library_id")).
		Order("branch_name ASC").Find(&rows).Error; err != nil {
		return helper.JsonInternal(c, err)
	}
	return helper.JsonOK(c, "branches", rows)
}

func (ctl *FacilityController) UpdateBranch(c *fiber.Ctx) error {
	tenant, err := helper.GetTenant(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := parseIDParam(c, "branch")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var req dto.BranchRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}
	res := ctl.DB.Model(&model.BranchModel{}).
		Scopes(tenant.Scope("branch_library_id")).
		Where("branch_id = ?", id).
		Updates(map[string]any{
			"branch_name":    strings.TrimSpace(req.Name),
			"branch_address": strings.TrimSpace(req.Address),
		})
	if res.Error != nil {
		return helper.JsonInternal(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "branch not found")
	}
	return helper.JsonUpdated(c, "branch updated", fiber.Map{"branch_id": id})
}

func (ctl *FacilityController) DeleteBranch(c *fiber.Ctx) error {
	tenant, err := helper.GetTenant(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := parseIDParam(c, "branch")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	res := ctl.DB.Scopes(tenant.Scope("branch_library_id")).
		Where("branch_id = ?", id).
		Delete(&model.BranchModel{})
	if res.Error != nil {
		return helper.JsonInternal(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "branch not found")
	}
	return helper.JsonDeleted(c, "branch deleted", fiber.Map{"branch_id": id})
}

/* =========================================================
   Shifts
========================================================= */

func (ctl *FacilityController) CreateShift(c *fiber.Ctx) error {
	tenant, err := helper.GetTenant(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var req dto.ShiftRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}
	row := model.ShiftModel{
		ShiftLibraryID: tenant.LibraryID(),
		ShiftName:      strings.TrimSpace(req.Name),
		ShiftStartTime: strings.TrimSpace(req.StartTime),
		ShiftEndTime:   strings.TrimSpace(req.EndTime),
	}
	if err := ctl.DB.Create(&row).Error; err != nil {
		return helper.JsonInternal(c, err)
	}
	return helper.JsonCreated(c, "shift created", row)
}

func (ctl *FacilityController) ListShifts(c *fiber.Ctx) error {
	tenant, err := helper.GetTenant(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var rows []model.ShiftModel
	if err := ctl.DB.Scopes(tenant.Scope("shift_library_id")).
		Order("shift_start_time ASC").Find(&rows).Error; err != nil {
		return helper.JsonInternal(c, err)
	}
	return helper.JsonOK(c, "shifts", rows)
}

func (ctl *FacilityController) DeleteShift(c *fiber.Ctx) error {
	tenant, err := helper.GetTenant(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := parseIDParam(c, "shift")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	res := ctl.DB.Scopes(tenant.Scope("shift_library_id")).
		Where("shift_id = ?", id).
		Delete(&model.ShiftModel{})
	if res.Error != nil {
		return helper.JsonInternal(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "shift not found")
	}
	return helper.JsonDeleted(c, "shift deleted", fiber.Map{"shift_id": id})
}

/* =========================================================
   Seats
========================================================= */

func (ctl *FacilityController) CreateSeat(c *fiber.Ctx) error {
	tenant, err := helper.GetTenant(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var req dto.SeatRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}
	row := model.SeatModel{
		SeatLibraryID: tenant.LibraryID(),
		SeatNumber:    strings.TrimSpace(req.Number),
	}
	if req.BranchID != nil {
		id, err := uuid.Parse(strings.TrimSpace(*req.BranchID))
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid branch_id")
		}
		row.SeatBranchID = &id
	}
	if err := ctl.DB.Create(&row).Error; err != nil {
		return helper.JsonInternal(c, err)
	}
	return helper.JsonCreated(c, "seat created", row)
}

func (ctl *FacilityController) ListSeats(c *fiber.Ctx) error {
	tenant, err := helper.GetTenant(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	q := ctl.DB.Scopes(tenant.Scope("seat_library_id"))
	if branch := strings.TrimSpace(c.Query("branch_id")); branch != "" {
		id, err := uuid.Parse(branch)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid branch_id")
		}
		q = q.Where("seat_branch_id = ?", id)
	}
	var rows []model.SeatModel
	if err := q.Order("seat_number ASC").Find(&rows).Error; err != nil {
		return helper.JsonInternal(c, err)
	}
	return helper.JsonOK(c, "seats", rows)
}

func (ctl *FacilityController) DeleteSeat(c *fiber.Ctx) error {
	tenant, err := helper.GetTenant(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := parseIDParam(c, "seat")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	res := ctl.DB.Scopes(tenant.Scope("seat_library_id")).
		Where("seat_id = ?", id).
		Delete(&model.SeatModel{})
	if res.Error != nil {
		return helper.JsonInternal(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "seat not found")
	}
	return helper.JsonDeleted(c, "seat deleted", fiber.Map{"seat_id": id})
}

/* =========================================================
   Lockers
========================================================= */

func (ctl *FacilityController) CreateLocker(c *fiber.Ctx) error {
	tenant, err := helper.GetTenant(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var req dto.LockerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}
	row := model.LockerModel{
		LockerLibraryID: tenant.LibraryID(),
		LockerNumber:    strings.TrimSpace(req.Number),
	}
	if err := ctl.DB.Create(&row).Error; err != nil {
		return helper.JsonInternal(c, err)
	}
	return helper.JsonCreated(c, "locker created", row)
}

func (ctl *FacilityController) ListLockers(c *fiber.Ctx) error {
	tenant, err := helper.GetTenant(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	q := ctl.DB.Scopes(tenant.Scope("locker_library_id"))
	if c.Query("available") == "true" {
		q = q.Where("locker_is_assigned = FALSE")
	}
	var rows []model.LockerModel
	if err := q.Order("locker_number ASC").Find(&rows).Error; err != nil {
		return helper.JsonInternal(c, err)
	}
	return helper.JsonOK(c, "lockers", rows)
}

// ReleaseLocker handles POST /api/a/lockers/:id/release — frees the locker
// when a student leaves or stops paying for it.
func (ctl *FacilityController) ReleaseLocker(c *fiber.Ctx) error {
	tenant, err := helper.GetTenant(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := parseIDParam(c, "locker")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	res := ctl.DB.Model(&model.LockerModel{}).
		Scopes(tenant.Scope("locker_library_id")).
		Where("locker_id = ?", id).
		Updates(map[string]any{
			"locker_is_assigned": false,
			"locker_student_id":  nil,
		})
	if res.Error != nil {
		return helper.JsonInternal(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "locker not found")
	}
	return helper.JsonUpdated(c, "locker released", fiber.Map{"locker_id": id})
}

func (ctl *FacilityController) DeleteLocker(c *fiber.Ctx) error {
	tenant, err := helper.GetTenant(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := parseIDParam(c, "locker")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var row model.LockerModel
	err = ctl.DB.Scopes(tenant.Scope("locker_library_id")).
		Where("locker_id = ?", id).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "locker not found")
	}
	if err != nil {
		return helper.JsonInternal(c, err)
	}
	if row.LockerIsAssigned {
		return helper.JsonError(c, fiber.StatusConflict, "locker is assigned; release it first")
	}
	if err := ctl.DB.Delete(&row).Error; err != nil {
		return helper.JsonInternal(c, err)
	}
	return helper.JsonDeleted(c, "locker deleted", fiber.Map{"locker_id": id})
}
