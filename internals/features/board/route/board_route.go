package route

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	boardCtl "sbb_backend/internals/features/board/controller"
	"sbb_backend/internals/features/board/repository"
	"sbb_backend/internals/middlewares"
)

func BoardRoutes(r fiber.Router, db *gorm.DB, log *logrus.Logger) {
	store := repository.NewStore(db)
	writeLimit := middlewares.WriteRateLimiter()

	mainCtl := boardCtl.NewMainController()
	r.Get("/", mainCtl.Root)
	r.Get("/sbb", mainCtl.Index)

	// ----- QUESTIONS -----
	qc := boardCtl.NewQuestionController(store, log)
	q := r.Group("/question")
	q.Get("/list", qc.List)
	q.Get("/detail/:id", qc.Detail)
	q.Post("/create", writeLimit, qc.Create)
	q.Put("/:id", writeLimit, qc.Update)
	q.Delete("/:id", qc.Delete)

	// ----- ANSWERS -----
	ac := boardCtl.NewAnswerController(store, log)
	a := r.Group("/answer")
	a.Post("/create/:id", writeLimit, ac.Create)
	a.Get("/:id", ac.Get)
}
