package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"studyhall_backend/internals/features/billing/controller"
)

// PublicRoutes: the gateway's server-to-server confirmation callback.
func PublicRoutes(app fiber.Router, db *gorm.DB) {
	ctl := controller.NewBillingController(db)

	app.Post("/billing/confirm", ctl.Confirm)
}

func AdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewBillingController(db)

	r.Get("/billing/plans", ctl.ListPlans)
	r.Post("/billing/checkout", ctl.Checkout)
	r.Get("/billing/subscription", ctl.MySubscription)
}

func OwnerRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewBillingController(db)

	r.Post("/billing/plans", ctl.CreatePlan)
	r.Get("/billing/plans", ctl.ListPlans)
	r.Patch("/billing/plans/:id", ctl.UpdatePlan)
}
