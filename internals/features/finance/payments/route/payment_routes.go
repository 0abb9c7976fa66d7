package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"studyhall_backend/internals/features/finance/payments/controller"
)

func AdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewPaymentController(db)

	r.Post("/payments", ctl.Collect)
	r.Get("/payments", ctl.List)
}

func StudentRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewPaymentController(db)

	r.Get("/payments", ctl.StudentHistory)
}
