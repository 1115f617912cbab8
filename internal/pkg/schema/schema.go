// Package schema is the single source of truth for every payload shape
// crossing a boundary: HTTP bodies, AI requests, AI responses and stored
// prediction data. Validation is total — a payload either yields a fully
// typed value or a list of field-level violations.
package schema

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/matsci-ai/matsci/internal/pkg/apperror"
)

// Categorical fields are restricted to these fixed string sets.
const (
	RatingValues           = "Excellent Good Fair Poor"
	TransparencyValues     = "Transparent Translucent Opaque"
	WettabilityValues      = "Hydrophilic Hydrophobic Neutral"
	BiodegradabilityValues = "High Medium Low None"
	ComplexityValues       = "Low Medium High"
)

// CompositionSumTolerance is the allowed deviation from 100% for an
// element percentage list.
const CompositionSumTolerance = 0.1

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report violations under their JSON names, not Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate runs struct validation and converts violations into the
// field-level error list the API layer returns as a 400.
func Validate(payload any) *apperror.Error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperror.Wrap(apperror.KindInternal, "validation failed", err)
	}
	fields := make([]apperror.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, apperror.FieldError{
			Field:   fieldPath(fe),
			Message: violationMessage(fe),
		})
	}
	return apperror.Validation("invalid input", fields)
}

// fieldPath strips the root struct name from the namespace so callers see
// "elements[0].percentage" instead of "CompositionInput.elements[0].percentage".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func violationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of: " + strings.Join(strings.Fields(fe.Param()), ", ")
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "lte":
		return "must be less than or equal to " + fe.Param()
	case "min":
		if fe.Kind() == reflect.String || fe.Kind() == reflect.Slice {
			return "must have at least " + fe.Param() + " " + unitFor(fe)
		}
		return "must be at least " + fe.Param()
	case "max":
		if fe.Kind() == reflect.String || fe.Kind() == reflect.Slice {
			return "must have at most " + fe.Param() + " " + unitFor(fe)
		}
		return "must be at most " + fe.Param()
	case "email":
		return "must be a valid email address"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

func unitFor(fe validator.FieldError) string {
	if fe.Kind() == reflect.Slice {
		return "entries"
	}
	return "characters"
}
