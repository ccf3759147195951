package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"sbb_backend/internals/middlewares"
	routeDetails "sbb_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB, log *logrus.Logger, metrics *middlewares.Metrics) {
	startTime = time.Now()

	log.Info("setting up base routes")
	BaseRoutes(app, db, metrics)

	log.Info("mounting board routes")
	routeDetails.BoardPublicRoutes(app, db, log)
}
