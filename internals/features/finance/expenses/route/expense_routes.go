package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"studyhall_backend/internals/features/finance/expenses/controller"
)

func AdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewExpenseController(db)

	r.Post("/expenses", ctl.Create)
	r.Get("/expenses", ctl.List)
	r.Delete("/expenses/:id", ctl.Delete)
	r.Get("/finance/summary", ctl.MonthlySummary)
}
