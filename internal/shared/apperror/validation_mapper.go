package apperror

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// recipient_phone -> Recipient Phone
func formatFieldName(s string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(s, "_", " "))
}

// MapValidationError mengubah error binding Gin menjadi INVALID_INPUT.
// Field pertama yang gagal dipakai untuk message, semua field masuk details.
func MapValidationError(err error) error {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		details := make(map[string]string, len(errs))
		for _, fe := range errs {
			details[fe.Field()] = fe.Tag()
		}

		first := errs[0]
		field := formatFieldName(first.Field())
		if first.Tag() == "required" {
			return RequiredField(field).WithDetails(details)
		}
		return InvalidField(field).WithDetails(details)
	}

	// body JSON dengan tipe yang salah, misal "bonus": "abc"
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return InvalidField(formatFieldName(typeErr.Field)).
			WithDetails(map[string]string{typeErr.Field: "type"})
	}

	return ErrInvalidInput.WithDetails(err.Error())
}
