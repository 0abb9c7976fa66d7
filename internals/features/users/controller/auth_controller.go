package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"studyhall_backend/internals/constants"
	libraryModel "studyhall_backend/internals/features/libraries/library/model"
	studentModel "studyhall_backend/internals/features/students/model"
	"studyhall_backend/internals/features/users/dto"
	"studyhall_backend/internals/features/users/model"
	"studyhall_backend/internals/features/users/service"
	helper "studyhall_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

func tokenPair(sub service.TokenSubject) (dto.TokenResponse, error) {
	access, err := service.CreateAccessToken(sub)
	if err != nil {
		return dto.TokenResponse{}, err
	}
	refresh, err := service.CreateRefreshToken(sub)
	if err != nil {
		return dto.TokenResponse{}, err
	}
	return dto.TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		Role:         sub.Role,
	}, nil
}

// Login handles POST /api/auth/login — staff accounts (admin, owner).
// Wrong email and wrong password answer identically.
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	var user model.UserModel
	err := ctl.DB.
		Where("user_email = ? AND user_is_active = TRUE", strings.ToLower(strings.TrimSpace(req.Email))).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "invalid email or password")
	}
	if err != nil {
		return helper.JsonInternal(c, err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(req.Password)) != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "invalid email or password")
	}

	sub := service.TokenSubject{
		UserID:    &user.UserID,
		LibraryID: user.UserLibraryID,
		Role:      user.UserRole,
	}
	tokens, err := tokenPair(sub)
	if err != nil {
		return helper.JsonInternal(c, err)
	}
	return helper.JsonOK(c, "login successful", tokens)
}

// StudentLogin handles POST /api/auth/student-login.
func (ctl *AuthController) StudentLogin(c *fiber.Ctx) error {
	var req dto.StudentLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	var lib libraryModel.LibraryModel
	err := ctl.DB.
		Where("library_code = ? AND library_is_active = TRUE",
			helper.NormalizeLibraryCode(req.LibraryCode)).
		First(&lib).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "invalid credentials")
	}
	if err != nil {
		return helper.JsonInternal(c, err)
	}

	var student studentModel.StudentModel
	err = ctl.DB.
		Where("student_library_id = ? AND student_phone = ? AND student_registration_number = ?",
			lib.LibraryID, strings.TrimSpace(req.Phone), strings.TrimSpace(req.RegistrationNumber)).
		First(&student).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "invalid credentials")
	}
	if err != nil {
		return helper.JsonInternal(c, err)
	}

	sub := service.TokenSubject{
		StudentID: &student.StudentID,
		LibraryID: &student.StudentLibraryID,
		Role:      constants.RoleStudent,
	}
	tokens, err := tokenPair(sub)
	if err != nil {
		return helper.JsonInternal(c, err)
	}
	return helper.JsonOK(c, "login successful", tokens)
}

// Refresh handles POST /api/auth/refresh — exchanges a valid refresh token
// for a fresh pair.
func (ctl *AuthController) Refresh(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	sub, err := service.ParseRefreshToken(req.RefreshToken)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	tokens, err := tokenPair(sub)
	if err != nil {
		return helper.JsonInternal(c, err)
	}
	return helper.JsonOK(c, "token refreshed", tokens)
}
