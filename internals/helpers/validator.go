package helper

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

// ValidateStruct runs the validator and renders the first failure as a 400.
func ValidateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) || len(ve) == 0 {
		return Validation("Invalid input: %v", err)
	}
	fe := ve[0]
	return Validation("Field: %s. Error: %s. Value: %v", fe.Field(), describe(fe), fe.Value())
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must not be null"
	case "notblank":
		return "must not be blank"
	case "email":
		return "must be a well-formed email address"
	case "min", "max":
		return fmt.Sprintf("size must satisfy %s=%s", fe.Tag(), fe.Param())
	case "gt", "gte":
		return fmt.Sprintf("must satisfy %s %s", fe.Tag(), fe.Param())
	default:
		return fmt.Sprintf("failed on %s", fe.Tag())
	}
}

// ParseBody decodes the JSON body and validates it.
func ParseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return Validation("Malformed request body: %v", err)
	}
	return ValidateStruct(out)
}
