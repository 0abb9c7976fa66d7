package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"studyhall_backend/internals/features/libraries/library/controller"
)

// PublicRoutes: the registration-form landing payload.
func PublicRoutes(app fiber.Router, db *gorm.DB) {
	ctl := controller.NewLibraryController(db)

	app.Get("/library/:libraryCode", ctl.GetPublicByCode)
}

// OwnerRoutes: tenant administration.
func OwnerRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewLibraryController(db)

	r.Post("/libraries", ctl.Create)
	r.Get("/libraries", ctl.List)
	r.Patch("/libraries/:id", ctl.Update)
}
