package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"studyhall_backend/internals/features/students/dto"
	"studyhall_backend/internals/features/students/model"
	helper "studyhall_backend/internals/helpers"
)

// StudentSelfController serves the student app: the logged-in student's own
// profile with derived membership/dues flags.
type StudentSelfController struct {
	DB *gorm.DB
}

func NewStudentSelfController(db *gorm.DB) *StudentSelfController {
	return &StudentSelfController{DB: db}
}

// Me handles GET /api/s/me
func (ctl *StudentSelfController) Me(c *fiber.Ctx) error {
	studentID, err := helper.GetStudentIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var row model.StudentModel
	err = ctl.DB.Where("student_id = ?", studentID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "student not found")
	}
	if err != nil {
		return helper.JsonInternal(c, err)
	}

	return helper.JsonOK(c, "ok", dto.ToStudentResponse(row, time.Now()))
}
