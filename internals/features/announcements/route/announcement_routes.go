package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"studyhall_backend/internals/features/announcements/controller"
)

func AdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewAnnouncementController(db)

	r.Post("/announcements", ctl.Create)
	r.Get("/announcements", ctl.List)
	r.Patch("/announcements/:id", ctl.Update)
	r.Delete("/announcements/:id", ctl.Delete)
}

func StudentRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewAnnouncementController(db)

	r.Get("/announcements", ctl.ActiveForStudent)
}
