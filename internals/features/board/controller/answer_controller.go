package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"sbb_backend/internals/features/board/dto"
	"sbb_backend/internals/features/board/repository"
	helper "sbb_backend/internals/helpers"
)

type AnswerController struct {
	Store     *repository.Store
	Log       *logrus.Logger
	Validator *validator.Validate
}

func NewAnswerController(store *repository.Store, log *logrus.Logger) *AnswerController {
	return &AnswerController{Store: store, Log: log, Validator: newValidator()}
}

// POST /answer/create/:id  (id = question id)
func (ctl *AnswerController) Create(c *fiber.Ctx) error {
	questionID, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return writeStoreError(c, ctl.Log, err)
	}
	var req dto.AnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	req.Normalize()
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	a, err := ctl.Store.Answers.Save(c.UserContext(), req.ToModel(questionID))
	if err != nil {
		return writeStoreError(c, ctl.Log, err)
	}
	ctl.Log.WithFields(logrus.Fields{
		"answer_id":   a.AnswerID,
		"question_id": a.AnswerQuestionID,
	}).Info("answer created")
	return helper.JsonCreated(c, "answer created", dto.FromAnswerModel(*a))
}

// GET /answer/:id
func (ctl *AnswerController) Get(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return writeStoreError(c, ctl.Log, err)
	}
	a, found, err := ctl.Store.Answers.FindByID(c.UserContext(), id)
	if err != nil {
		return writeStoreError(c, ctl.Log, err)
	}
	if !found {
		return helper.JsonError(c, fiber.StatusNotFound, "answer not found")
	}
	return helper.JsonOK(c, "ok", dto.FromAnswerModel(a))
}
