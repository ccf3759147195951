package controller

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"sbb_backend/internals/features/board/repository"
	helper "sbb_backend/internals/helpers"
	"sbb_backend/internals/middlewares"
)

// newValidator reports field errors under their json names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// writeStoreError maps access-layer failures onto HTTP responses.
func writeStoreError(c *fiber.Ctx, log *logrus.Logger, err error) error {
	var fe *fiber.Error
	switch {
	case errors.As(err, &fe):
		return helper.JsonError(c, fe.Code, fe.Message)
	case errors.Is(err, repository.ErrQuestionMissing):
		return helper.JsonError(c, fiber.StatusNotFound, "question not found")
	case errors.Is(err, repository.ErrNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "not found")
	case errors.Is(err, repository.ErrQuestionHasAnswers):
		return helper.JsonError(c, fiber.StatusConflict, "question still has answers")
	case errors.Is(err, repository.ErrDataIntegrity):
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			return helper.JsonValidationError(c, helper.FieldErrors(ve))
		}
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	case repository.IsDataIntegrity(err):
		// constraint raised by the database itself
		return helper.JsonError(c, fiber.StatusConflict, "data integrity violation")
	}

	log.WithFields(logrus.Fields{
		"request_id": middlewares.RequestID(c),
		"path":       c.Path(),
		"error":      err.Error(),
	}).Error("store operation failed")
	return helper.JsonError(c, fiber.StatusInternalServerError, "internal server error")
}
