package utils

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report json names so the client can map errors back to form fields
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		}
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// ValidateStruct returns field -> message, nil when the struct is valid.
func ValidateStruct(data any) map[string]string {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, err := range validationErrors {
			errors[err.Field()] = getErrorMessage(err)
		}
	}

	return errors
}

// converts validator errors to Arabic messages shown next to the form field
func getErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "هذا الحقل مطلوب"
	case "email":
		return "صيغة البريد الإلكتروني غير صحيحة"
	case "min":
		return fmt.Sprintf("الحد الأدنى هو %s", err.Param())
	case "max":
		return fmt.Sprintf("الحد الأقصى هو %s", err.Param())
	case "len":
		return fmt.Sprintf("يجب أن يكون الطول %s", err.Param())
	case "gte":
		return fmt.Sprintf("يجب أن تكون القيمة %s أو أكثر", err.Param())
	case "oneof":
		options := strings.ReplaceAll(err.Param(), " ", ", ")
		return fmt.Sprintf("يجب أن تكون إحدى القيم: %s", options)
	case "uuid", "uuid4":
		return "معرّف غير صالح"
	case "hexcolor":
		return "لون غير صالح"
	default:
		return fmt.Sprintf("قيمة غير صالحة للحقل %s", err.Field())
	}
}

// FormatValidationErrors flattens the map in a stable order for logs and wrapped errors.
func FormatValidationErrors(errors map[string]string) string {
	fields := make([]string, 0, len(errors))
	for field := range errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	msgs := make([]string, 0, len(fields))
	for _, field := range fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, errors[field]))
	}
	return strings.Join(msgs, "; ")
}
