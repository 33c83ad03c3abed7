package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("pageshell.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "pageshell.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "parse error: pageshell.yaml:12: unexpected token", err.Error())
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("missing.yaml", 0, stdErrors.New("no such file"))
	require.Equal(t, "parse error: missing.yaml: no such file", err.Error())
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("navbar.text_color", "must be a CSS colour", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "navbar.text_color", validationErr.Field)
	require.Contains(t, err.Error(), "must be a CSS colour")

	noField := NewValidationError("", "configuration is nil", nil)
	require.Equal(t, "validation error: configuration is nil", noField.Error())
}

func TestOutputErrorIncludesDestination(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("permission denied")
	err := NewOutputError("out/index.html", underlying)

	var outputErr *OutputError
	require.ErrorAs(t, err, &outputErr)
	require.Equal(t, "out/index.html", outputErr.Destination)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "out/index.html")
}

func TestNilErrorsAreSafe(t *testing.T) {
	t.Parallel()

	var parseErr *ParseError
	var validationErr *ValidationError
	var outputErr *OutputError

	require.Equal(t, "", parseErr.Error())
	require.Nil(t, parseErr.Unwrap())
	require.Equal(t, "", validationErr.Error())
	require.Nil(t, validationErr.Unwrap())
	require.Equal(t, "", outputErr.Error())
	require.Nil(t, outputErr.Unwrap())
}
