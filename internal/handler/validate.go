package handler

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/sakif/octofit-tracker/internal/apperror"
)

// NewValidator builds the validator shared by all handlers.
//
// The tag-name func makes validator report failures by the JSON field name
// ("activity_type") instead of the Go field name ("ActivityType") — the
// client sent JSON, so errors should speak JSON.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateStruct runs struct-tag validation on a request DTO and translates
// the first failure into a field-level apperror, so handler responses carry
// the same shape whether the rule tripped here or in the service layer.
func validateStruct(v *validator.Validate, req interface{}) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return apperror.ValidationFailed("", "invalid request body")
	}

	fe := verrs[0]
	return apperror.ValidationFailed(fe.Field(), fieldMessage(fe))
}

// fieldMessage renders a human-readable message for a single tag failure.
func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), strings.Join(strings.Fields(fe.Param()), ", "))
	case "gte":
		return fmt.Sprintf("%s cannot be negative", fe.Field())
	case "datetime":
		return fmt.Sprintf("%s must be a date in %s format", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("%s cannot be empty", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
