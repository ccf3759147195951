package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/sirupsen/logrus"

	"sbb_backend/internals/configs"
	"sbb_backend/internals/middlewares/logger"
)

// SetupMiddlewares mounts the global chain. Order matters: request id first
// so every later log line carries it.
func SetupMiddlewares(app *fiber.App, cfg configs.Config, log *logrus.Logger, metrics *Metrics) {
	app.Use(RequestIDMiddleware())
	app.Use(RequestTimeout(5 * time.Second))
	app.Use(RecoveryMiddleware(log))
	app.Use(logger.LoggerMiddleware(log))
	if metrics != nil {
		app.Use(metrics.Middleware())
	}
	app.Use(CorsMiddleware(cfg.CorsAllowOrigins))
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())
	app.Use(GlobalRateLimiter(cfg.RateLimitMax))
}
