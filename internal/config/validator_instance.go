package config

import (
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	hexColorPattern  = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3,4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
	funcColorPattern = regexp.MustCompile(`^(?:rgb|rgba|hsl|hsla)\([0-9.,%\s/]+\)$`)
	namedColorRegex  = regexp.MustCompile(`^[a-zA-Z]+$`)
	lengthPattern    = regexp.MustCompile(`^(?:0|[0-9]*\.?[0-9]+(?:px|em|rem|%|vw|vh|pt))$`)
	lengthKeywords   = map[string]struct{}{
		"inherit": {}, "initial": {}, "unset": {},
		"small": {}, "medium": {}, "large": {}, "smaller": {}, "larger": {},
		"x-small": {}, "x-large": {}, "xx-small": {}, "xx-large": {},
	}
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("css_color", func(fl validator.FieldLevel) bool {
			value := strings.TrimSpace(fl.Field().String())
			return hexColorPattern.MatchString(value) ||
				funcColorPattern.MatchString(value) ||
				namedColorRegex.MatchString(value)
		})

		_ = v.RegisterValidation("css_length", func(fl validator.FieldLevel) bool {
			value := strings.ToLower(strings.TrimSpace(fl.Field().String()))
			if _, ok := lengthKeywords[value]; ok {
				return true
			}
			return lengthPattern.MatchString(value)
		})

		validateInst = v
	})

	return validateInst
}

// Validate checks cfg against its struct tags.
func Validate(cfg *Config) error {
	if cfg == nil {
		return convertValidationError(errNilConfig)
	}
	return convertValidationError(validatorInstance().Struct(cfg))
}
