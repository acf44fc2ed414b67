package book

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidationError describes a single missing or invalid field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return e.Message
}

// Validate checks that every required field is present. Library never calls
// it; it is meant for books loaded from external sources.
func (b Book) Validate() error {
	err := validate.Struct(b)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	var errs []error
	for _, fe := range verrs {
		field := fe.Field()
		var message string
		switch fe.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", field)
		default:
			message = fmt.Sprintf("%s is invalid", field)
		}

		errs = append(errs, ValidationError{
			Field:   strings.ToLower(field[:1]) + field[1:],
			Message: message,
		})
	}
	return errors.Join(errs...)
}
