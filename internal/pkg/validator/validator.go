package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Pesokrava/storefront/internal/domain"
)

// Shared validator instance to avoid creating multiple instances
var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// Report JSON field names so messages match the request body
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})

	if err := validate.RegisterValidation("currency", isCurrency); err != nil {
		panic(err)
	}
}

func isCurrency(fl validator.FieldLevel) bool {
	_, ok := domain.ParseCurrency(fl.Field().String())
	return ok
}

// Get returns the shared validator instance
func Get() *validator.Validate {
	return validate
}

// Message renders the first field failure of a validation error for API clients.
func Message(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return "Invalid request"
	}

	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "currency":
		return fmt.Sprintf("%s must be one of USD, EUR, GBP", fe.Field())
	case "gt", "min":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "max", "len":
		return fmt.Sprintf("%s has invalid length", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
