package details

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	BoardRoutes "sbb_backend/internals/features/board/route"
)

// ✅ Public board routes, no token
// Contoh akses: /question/list, /answer/create/1
func BoardPublicRoutes(app fiber.Router, db *gorm.DB, log *logrus.Logger) {
	BoardRoutes.BoardRoutes(app, db, log)
}
