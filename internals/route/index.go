package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
	"gorm.io/gorm"

	"studyhall_backend/internals/configs"
	admissionRoute "studyhall_backend/internals/features/admissions/route"
	announcementRoute "studyhall_backend/internals/features/announcements/route"
	attendanceRoute "studyhall_backend/internals/features/attendance/route"
	billingRoute "studyhall_backend/internals/features/billing/route"
	expenseRoute "studyhall_backend/internals/features/finance/expenses/route"
	paymentRoute "studyhall_backend/internals/features/finance/payments/route"
	facilityRoute "studyhall_backend/internals/features/libraries/facilities/route"
	libraryRoute "studyhall_backend/internals/features/libraries/library/route"
	studentRoute "studyhall_backend/internals/features/students/route"
	uploadController "studyhall_backend/internals/features/uploads/controller"
	userRoute "studyhall_backend/internals/features/users/route"
	authMiddleware "studyhall_backend/internals/middlewares/auth"
)

// SetupRoutes mounts every surface:
//
//	/                     public intake (library landing, register, status)
//	/billing/confirm      gateway callback
//	/api/auth             login, student-login, refresh
//	/api/a                admin (JWT + admin/owner role)
//	/api/s                student app (JWT + student role)
//	/api/o                platform owner (JWT + owner role)
//	/metrics, /uploads    operational
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// Public, unauthenticated.
	libraryRoute.PublicRoutes(app, db)
	admissionRoute.PublicRoutes(app, db)
	billingRoute.PublicRoutes(app, db)

	app.Get("/metrics", func(c *fiber.Ctx) error {
		fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler())(c.Context())
		return nil
	})
	app.Static("/uploads", configs.UploadDir)

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	userRoute.AuthRoutes(authGroup, db)

	jwtGuard := authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		AllowCookieFallback: true,
	})

	admin := api.Group("/a", jwtGuard, authMiddleware.RequireAdmin())
	admissionRoute.AdminRoutes(admin, db)
	studentRoute.AdminRoutes(admin, db)
	facilityRoute.AdminRoutes(admin, db)
	attendanceRoute.AdminRoutes(admin, db)
	paymentRoute.AdminRoutes(admin, db)
	expenseRoute.AdminRoutes(admin, db)
	announcementRoute.AdminRoutes(admin, db)
	billingRoute.AdminRoutes(admin, db)
	admin.Post("/uploads/image", uploadController.NewUploadController().Image)

	student := api.Group("/s", jwtGuard, authMiddleware.RequireStudent())
	studentRoute.StudentRoutes(student, db)
	attendanceRoute.StudentRoutes(student, db)
	paymentRoute.StudentRoutes(student, db)
	announcementRoute.StudentRoutes(student, db)

	owner := api.Group("/o", jwtGuard, authMiddleware.RequireOwner())
	libraryRoute.OwnerRoutes(owner, db)
	userRoute.OwnerRoutes(owner, db)
	billingRoute.OwnerRoutes(owner, db)
}
