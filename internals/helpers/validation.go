package helper

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// FieldErrors flattens validator errors into field -> failed tags, the shape
// JsonValidationError expects. Other errors land under "_".
func FieldErrors(err error) map[string][]string {
	out := map[string][]string{}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		out["_"] = []string{err.Error()}
		return out
	}
	for _, fe := range ve {
		out[fe.Field()] = append(out[fe.Field()], fe.Tag())
	}
	return out
}
