package rest

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

type moveRequest struct {
	Row    *int   `json:"row"    binding:"required,min=0,max=5"`
	Col    *int   `json:"col"    binding:"required,min=0,max=5"`
	Symbol string `json:"symbol" binding:"required,oneof=X O"`
}

var registerOnce sync.Once

// registerJSONFieldNames makes validation errors report JSON field names.
func registerJSONFieldNames() {
	registerOnce.Do(func() {
		validate, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}

		validate.RegisterTagNameFunc(func(field reflect.StructField) string {
			name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
	})
}

// fieldErrors turns a binding error into per-field messages. ok is false for
// errors that are not validation failures, such as malformed JSON.
func fieldErrors(err error) (map[string]string, bool) {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil, false
	}

	fields := make(map[string]string, len(validationErrs))
	for _, fieldErr := range validationErrs {
		fields[fieldErr.Field()] = fieldMessage(fieldErr)
	}

	return fields, true
}

func fieldMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "is required"
	case "min", "max":
		return "must be between 0 and 5"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(fieldErr.Param(), " ", ", "))
	default:
		return fmt.Sprintf("failed on %s", fieldErr.Tag())
	}
}
