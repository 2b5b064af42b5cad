package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	statsService "ewm_backend/internals/features/stats/service"
	"ewm_backend/internals/middlewares/auth"
	"ewm_backend/internals/repository"
	routeDetails "ewm_backend/internals/route/details"
)

var startTime time.Time

type Deps struct {
	Store       repository.Store
	DB          *gorm.DB // nil with the memory store
	Stats       *statsService.StatsService
	Log         *zap.Logger
	AdminSecret string
}

func SetupRoutes(app *fiber.App, d Deps) {
	startTime = time.Now()
	log := d.Log.Named("routes")

	BaseRoutes(app, d.DB)

	services := routeDetails.NewServices(d.Store, d.Stats, d.Log)

	log.Info("mounting public routes")
	public := app.Group("")
	routeDetails.EventsPublicRoutes(public, services)

	log.Info("mounting admin routes", zap.Bool("guarded", d.AdminSecret != ""))
	admin := app.Group("/admin", auth.AdminOnly(d.AdminSecret, d.Log))
	routeDetails.UserAdminRoutes(admin, services)
	routeDetails.EventsAdminRoutes(admin, services)

	log.Info("mounting private routes")
	user := app.Group("/users/:userId")
	routeDetails.EventsUserRoutes(user, services)
}
