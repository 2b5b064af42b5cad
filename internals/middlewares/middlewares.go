package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"go.uber.org/zap"

	"ewm_backend/internals/configs"
	reqLogger "ewm_backend/internals/middlewares/logger"
)

func SetupMiddlewares(app *fiber.App, cfg configs.Config, log *zap.Logger) {
	app.Use(RecoveryMiddleware(log))
	app.Use(reqLogger.RequestID())
	app.Use(reqLogger.LoggerMiddleware(log))
	app.Use(RequestTimeout(5 * time.Second))
	app.Use(CorsMiddleware(cfg.Cors.Origins))
	app.Use(GlobalRateLimiter(cfg.Rate.LimitMax))
	app.Use(compress.New())
	app.Use(etag.New())
}
