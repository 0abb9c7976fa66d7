package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"studyhall_backend/internals/features/students/controller"
)

func AdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewStudentAdminController(db)

	r.Get("/students/overview", ctl.Overview)
	r.Post("/students", ctl.Create)
	r.Get("/students", ctl.List)
	r.Get("/students/:id", ctl.GetByID)
	r.Patch("/students/:id", ctl.Update)
	r.Delete("/students/:id", ctl.Delete)
}

func StudentRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewStudentSelfController(db)

	r.Get("/me", ctl.Me)
}
