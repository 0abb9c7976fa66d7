package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"studyhall_backend/internals/features/libraries/facilities/controller"
)

func AdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewFacilityController(db)

	r.Post("/branches", ctl.CreateBranch)
	r.Get("/branches", ctl.ListBranches)
	r.Patch("/branches/:id", ctl.UpdateBranch)
	r.Delete("/branches/:id", ctl.DeleteBranch)

	r.Post("/shifts", ctl.CreateShift)
	r.Get("/shifts", ctl.ListShifts)
	r.Delete("/shifts/:id", ctl.DeleteShift)

	r.Post("/seats", ctl.CreateSeat)
	r.Get("/seats", ctl.ListSeats)
	r.Delete("/seats/:id", ctl.DeleteSeat)

	r.Post("/lockers", ctl.CreateLocker)
	r.Get("/lockers", ctl.ListLockers)
	r.Post("/lockers/:id/release", ctl.ReleaseLocker)
	r.Delete("/lockers/:id", ctl.DeleteLocker)
}
