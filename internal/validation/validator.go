package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

const sep = " and "

type Error struct {
	FailedField string
	Tag         string
	Param       string
	Value       interface{}
}

type IXValidator interface {
	Validate(data interface{}) []Error
	Message(errs []Error) string
}

type XValidator struct {
	validator *validator.Validate
}

func NewXValidator() IXValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonName)

	for key, function := range valid {
		_ = v.RegisterValidation(key, function)
	}

	return &XValidator{validator: v}
}

func (x XValidator) Validate(data interface{}) []Error {
	var validationErrors []Error

	errs := x.validator.Struct(data)
	if errs == nil {
		return nil
	}

	fieldErrs, ok := errs.(validator.ValidationErrors)
	if !ok {
		return []Error{{FailedField: "request", Tag: "invalid"}}
	}

	for _, err := range fieldErrs {
		validationErrors = append(validationErrors, Error{
			FailedField: err.Field(),
			Tag:         err.Tag(),
			Param:       err.Param(),
			Value:       err.Value(),
		})
	}

	return validationErrors
}

func (x XValidator) Message(errs []Error) string {
	msgs := make([]string, 0, len(errs))
	for _, err := range errs {
		msgs = append(msgs, describe(err))
	}

	return strings.Join(msgs, sep)
}

func describe(err Error) string {
	switch err.Tag {
	case "required", NotBlankTag:
		return fmt.Sprintf("%s is required", err.FailedField)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", err.FailedField, err.Param)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", err.FailedField)
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s", err.FailedField, err.Param)
	case "max", "lte":
		return fmt.Sprintf("%s must be at most %s", err.FailedField, err.Param)
	default:
		return fmt.Sprintf("%s is invalid", err.FailedField)
	}
}

func jsonName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "" || name == "-" {
		return field.Name
	}

	return name
}
