package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"studyhall_backend/internals/constants"
	"studyhall_backend/internals/features/users/dto"
	"studyhall_backend/internals/features/users/model"
	helper "studyhall_backend/internals/helpers"
)

// UserAdminController is owner-only staff management: creating admin accounts
// and attaching them to their library.
type UserAdminController struct {
	DB *gorm.DB
}

func NewUserAdminController(db *gorm.DB) *UserAdminController {
	return &UserAdminController{DB: db}
}

// Create handles POST /api/o/users
func (ctl *UserAdminController) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}
	if req.Role == constants.RoleAdmin && req.LibraryID == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "admin accounts need a library_id")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonInternal(c, err)
	}

	user := model.UserModel{
		UserName:     strings.TrimSpace(req.Name),
		UserEmail:    strings.ToLower(strings.TrimSpace(req.Email)),
		UserPassword: string(hash),
		UserRole:     req.Role,
		UserIsActive: true,
	}
	if req.LibraryID != nil {
		id, err := uuid.Parse(strings.TrimSpace(*req.LibraryID))
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid library_id")
		}
		user.UserLibraryID = &id
	}

	if err := ctl.DB.Create(&user).Error; err != nil {
		if helper.IsUniqueViolation(err, "") {
			return helper.JsonError(c, fiber.StatusConflict, "email already in use")
		}
		return helper.JsonInternal(c, err)
	}
	return helper.JsonCreated(c, "user created", user)
}

// List handles GET /api/o/users?library_id=
func (ctl *UserAdminController) List(c *fiber.Ctx) error {
	q := ctl.DB.Model(&model.UserModel{})
	if lid := strings.TrimSpace(c.Query("library_id")); lid != "" {
		id, err := uuid.Parse(lid)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid library_id")
		}
		q = q.Where("user_library_id = ?", id)
	}
	var rows []model.UserModel
	if err := q.Order("user_created_at DESC").Find(&rows).Error; err != nil {
		return helper.JsonInternal(c, err)
	}
	return helper.JsonOK(c, "users", rows)
}

// Deactivate handles POST /api/o/users/:id/deactivate — soft lockout without
// deleting the row, so its audit references stay intact.
func (ctl *UserAdminController) Deactivate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid user id")
	}
	res := ctl.DB.Model(&model.UserModel{}).
		Where("user_id = ?", id).
		Update("user_is_active", false)
	if res.Error != nil {
		return helper.JsonInternal(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "user not found")
	}
	return helper.JsonUpdated(c, "user deactivated", fiber.Map{"user_id": id})
}
