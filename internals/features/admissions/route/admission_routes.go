package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"studyhall_backend/internals/features/admissions/controller"
	"studyhall_backend/internals/middlewares"
)

// PublicRoutes mounts the unauthenticated intake surface at the app root.
// The register endpoint carries its own tighter rate limit.
func PublicRoutes(app fiber.Router, db *gorm.DB) {
	ctl := controller.NewPublicRegistrationController(db)

	app.Post("/library/:libraryCode/register", middlewares.RegisterRateLimiter(), ctl.Register)
	app.Get("/library/:libraryCode/status/:phone", ctl.Status)
}

// AdminRoutes mounts the review desk under the admin group.
func AdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewAdmissionAdminController(db)

	r.Get("/admissions", ctl.List)
	r.Get("/admissions/:id", ctl.GetByID)
	r.Post("/admissions/:id/approve", ctl.Approve)
	r.Post("/admissions/:id/reject", ctl.Reject)
}
