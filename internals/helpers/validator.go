package helper

import (
	"errors"
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var passwordRule = regexp.MustCompile(`^[^\s]{8,}$`)

// Validate is shared by every controller; custom tags are registered once.
var Validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("password", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if !passwordRule.MatchString(s) {
			return false
		}
		var lower, upper, digit bool
		for _, r := range s {
			switch {
			case r >= 'a' && r <= 'z':
				lower = true
			case r >= 'A' && r <= 'Z':
				upper = true
			case r >= '0' && r <= '9':
				digit = true
			}
		}
		return lower && upper && digit
	})
	return v
}

// BindAndValidate parses the JSON body into dst and runs validator tags.
// On failure it has already written the response; callers just return the error value it gives back.
func BindAndValidate(c *fiber.Ctx, dst any) (bool, error) {
	if err := c.BodyParser(dst); err != nil {
		return false, JsonError(c, ErrInvalidKey.WithMessage("Invalid request body"))
	}
	if err := Validate.Struct(dst); err != nil {
		var ve validator.ValidationErrors
		if !errors.As(err, &ve) {
			return false, JsonError(c, ErrInvalidKey)
		}
		fields := make(map[string]string, len(ve))
		for _, fe := range ve {
			fields[fe.Field()] = fe.Tag()
		}
		return false, JsonValidationError(c, fields)
	}
	return true, nil
}
