package dca

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/etnz/dca/date"
	"github.com/go-playground/validator/v10"
)

// Order is a purchase as typed by the user, before it becomes a Record.
type Order struct {
	Amount Money     `validate:"gt=0"`
	Price  Money     `validate:"gt=0"`
	Date   date.Date `validate:"required"`
}

var validate = newValidator()

// newValidator returns a validator that sees Money as its float value and
// date.Date as its ISO string, so that standard tags apply to them.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if m, ok := field.Interface().(Money); ok {
			return m.AsFloat()
		}
		return nil
	}, Money{})
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(date.Date); ok && !d.IsZero() {
			return d.String()
		}
		return ""
	}, date.Date{})
	return v
}

// Validate checks the order and returns an error wrapping ErrInvalidRecord
// that lists every invalid field.
func (o Order) Validate() error {
	err := validate.Struct(o)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "gt":
			msgs = append(msgs, fmt.Sprintf("%s must be positive", strings.ToLower(fe.Field())))
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", strings.ToLower(fe.Field())))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid (%s)", strings.ToLower(fe.Field()), fe.Tag()))
		}
	}
	return fmt.Errorf("%w: %s", ErrInvalidRecord, strings.Join(msgs, ", "))
}
