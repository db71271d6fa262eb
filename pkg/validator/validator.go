package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct checks the struct's `validate` tags and returns one error
// naming every failed field.
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var msgs []string
	for _, fieldErr := range err.(validator.ValidationErrors) {
		msg := fmt.Sprintf("field %s failed on %q", fieldErr.Field(), fieldErr.Tag())
		if fieldErr.Param() != "" {
			msg += fmt.Sprintf(" (param %s)", fieldErr.Param())
		}
		msgs = append(msgs, msg)
	}

	return fmt.Errorf("validation failed: %s", strings.Join(msgs, "; "))
}
