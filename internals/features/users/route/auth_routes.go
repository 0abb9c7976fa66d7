package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"studyhall_backend/internals/features/users/controller"
	"studyhall_backend/internals/middlewares"
)

func AuthRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewAuthController(db)

	r.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	r.Post("/student-login", middlewares.LoginRateLimiter(), ctl.StudentLogin)
	r.Post("/refresh", ctl.Refresh)
}

func OwnerRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewUserAdminController(db)

	r.Post("/users", ctl.Create)
	r.Get("/users", ctl.List)
	r.Post("/users/:id/deactivate", ctl.Deactivate)
}
