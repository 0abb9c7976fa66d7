package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"studyhall_backend/internals/features/attendance/controller"
)

func StudentRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewScanController(db)

	r.Post("/attendance/scan", ctl.Scan)
	r.Get("/attendance", ctl.History)
}

func AdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewAttendanceAdminController(db)

	r.Get("/attendance/qr", ctl.QRPayload)
	r.Get("/attendance/register", ctl.Register)
}
