package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"sbb_backend/internals/features/board/dto"
	"sbb_backend/internals/features/board/model"
	"sbb_backend/internals/features/board/repository"
	helper "sbb_backend/internals/helpers"
)

const (
	defaultPerPage = 10
	maxPerPage     = 100
)

type QuestionController struct {
	Store     *repository.Store
	Log       *logrus.Logger
	Validator *validator.Validate
}

func NewQuestionController(store *repository.Store, log *logrus.Logger) *QuestionController {
	return &QuestionController{Store: store, Log: log, Validator: newValidator()}
}

// GET /question/list?page=&per_page=
func (ctl *QuestionController) List(c *fiber.Ctx) error {
	ctx := c.UserContext()
	p := helper.ResolvePaging(c, defaultPerPage, maxPerPage)

	total, err := ctl.Store.Questions.Count(ctx)
	if err != nil {
		return writeStoreError(c, ctl.Log, err)
	}
	rows, err := ctl.Store.Questions.FindPage(ctx, p.Offset, p.Limit)
	if err != nil {
		return writeStoreError(c, ctl.Log, err)
	}

	out := dto.FromQuestionModels(rows)
	return helper.JsonList(c, "ok", out, helper.BuildPaginationFromPage(total, p.Page, p.PerPage, len(out)))
}

// GET /question/detail/:id
// Answers are loaded lazily inside one unit of work.
func (ctl *QuestionController) Detail(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return writeStoreError(c, ctl.Log, err)
	}
	ctx := c.UserContext()

	var (
		q     model.Question
		found bool
	)
	err = ctl.Store.InUnitOfWork(ctx, func(uow *repository.UnitOfWork) error {
		var err error
		q, found, err = ctl.Store.Questions.In(uow).FindByID(ctx, id)
		if err != nil || !found {
			return err
		}
		_, err = ctl.Store.Questions.LoadAnswers(uow, &q)
		return err
	})
	if err != nil {
		return writeStoreError(c, ctl.Log, err)
	}
	if !found {
		return helper.JsonError(c, fiber.StatusNotFound, "question not found")
	}
	return helper.JsonOK(c, "ok", dto.FromQuestionModel(q))
}

// POST /question/create
func (ctl *QuestionController) Create(c *fiber.Ctx) error {
	var req dto.QuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	req.Normalize()
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	q, err := ctl.Store.Questions.Save(c.UserContext(), req.ToModel())
	if err != nil {
		return writeStoreError(c, ctl.Log, err)
	}
	ctl.Log.WithField("question_id", q.QuestionID).Info("question created")
	return helper.JsonCreated(c, "question created", dto.FromQuestionModel(*q))
}

// PUT /question/:id
func (ctl *QuestionController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return writeStoreError(c, ctl.Log, err)
	}
	var req dto.QuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	req.Normalize()
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	ctx := c.UserContext()
	q, found, err := ctl.Store.Questions.FindByID(ctx, id)
	if err != nil {
		return writeStoreError(c, ctl.Log, err)
	}
	if !found {
		return helper.JsonError(c, fiber.StatusNotFound, "question not found")
	}

	req.ApplyTo(&q)
	saved, err := ctl.Store.Questions.Save(ctx, &q)
	if err != nil {
		return writeStoreError(c, ctl.Log, err)
	}
	return helper.JsonUpdated(c, "question updated", dto.FromQuestionModel(*saved))
}

// DELETE /question/:id
func (ctl *QuestionController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return writeStoreError(c, ctl.Log, err)
	}
	ctx := c.UserContext()

	q, found, err := ctl.Store.Questions.FindByID(ctx, id)
	if err != nil {
		return writeStoreError(c, ctl.Log, err)
	}
	if !found {
		return helper.JsonError(c, fiber.StatusNotFound, "question not found")
	}
	if err := ctl.Store.Questions.Delete(ctx, &q); err != nil {
		return writeStoreError(c, ctl.Log, err)
	}
	ctl.Log.WithField("question_id", id).Info("question deleted")
	return helper.JsonDeleted(c, "question deleted", fiber.Map{"id": id})
}
