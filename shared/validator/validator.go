package validator

import (
	"encoding/json"
	"eyeslot/shared/constant"
	"eyeslot/shared/failure"
	"fmt"
	"io"
	"reflect"
	"regexp"
	"strings"
	"time"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

// mailboxPattern accepts anything shaped like local@domain.tld.
var mailboxPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func registerMailboxValidation(field val.FieldLevel) bool {
	return IsMailbox(field.Field().String())
}

func registerLayoutValidation(layout string) val.Func {
	return func(field val.FieldLevel) bool {
		_, err := time.Parse(layout, field.Field().String())

		return err == nil
	}
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return field.Name
	}

	return name
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)

	err := validate.RegisterValidation("mailbox", registerMailboxValidation)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("calendar", registerLayoutValidation(constant.CalendarLayout))
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("clock", registerLayoutValidation(constant.ClockLayout))
	if err != nil {
		panic(err)
	}
}

// IsMailbox reports whether value looks like local@domain.tld.
func IsMailbox(value string) bool {
	return mailboxPattern.MatchString(value)
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
