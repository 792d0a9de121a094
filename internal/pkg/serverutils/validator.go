package serverutils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest runs struct tag validation and flattens the failures
// into a single human-readable error.
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return err
		}
		messages := make([]string, 0, len(validationErrors))
		for _, fe := range validationErrors {
			switch fe.Tag() {
			case "required":
				messages = append(messages, fmt.Sprintf("%s is required", strings.ToLower(fe.Field())))
			case "max":
				messages = append(messages, fmt.Sprintf("%s must be at most %s characters", strings.ToLower(fe.Field()), fe.Param()))
			case "min":
				messages = append(messages, fmt.Sprintf("%s must be at least %s", strings.ToLower(fe.Field()), fe.Param()))
			default:
				messages = append(messages, fmt.Sprintf("%s is invalid", strings.ToLower(fe.Field())))
			}
		}
		return fmt.Errorf("%s", strings.Join(messages, ", "))
	}
	return nil
}
