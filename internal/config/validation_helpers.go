package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	pserrors "github.com/alexisbeaulieu97/pageshell/pkg/errors"
)

var errNilConfig = errors.New("config is nil")

// convertValidationError normalizes validator errors into pageshell validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%q failed validation for tag '%s'", fmt.Sprint(ve.Value()), ve.Tag())
		return pserrors.NewValidationError(field, msg, err)
	}

	return pserrors.NewValidationError("config", err.Error(), err)
}

// yamlishFieldName turns "Config.Navbar.TextColor" into "navbar.text_color".
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		parts[i] = snakeCase(part)
	}
	return strings.Join(parts, ".")
}

func snakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}
