package routes

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	database "sbb_backend/internals/databases"
	"sbb_backend/internals/middlewares"
)

func BaseRoutes(app *fiber.App, db *gorm.DB, metrics *middlewares.Metrics) {
	app.Get("/health", func(c *fiber.Ctx) error {
		dbStatus := "Connected"
		serverStatus := "OK"
		httpStatus := fiber.StatusOK

		if err := database.Ping(db); err != nil {
			dbStatus = "Database connection error"
			serverStatus = "DOWN"
			httpStatus = fiber.StatusServiceUnavailable
		}

		return c.Status(httpStatus).JSON(fiber.Map{
			"status":         serverStatus,
			"database":       dbStatus,
			"server_time":    time.Now().Format(time.RFC3339),
			"uptime_seconds": int(time.Since(startTime).Seconds()),
			"environment":    os.Getenv("RAILWAY_ENVIRONMENT"),
		})
	})

	if metrics != nil {
		app.Get("/metrics", func(c *fiber.Ctx) error {
			metrics.RecordDBPoolStats(db)
			return c.Next()
		}, metrics.Handler())
	}
}
