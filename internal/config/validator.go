package config

import (
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/glint/internal/ui/components"
	glinterrors "github.com/alexisbeaulieu97/glint/pkg/errors"
)

// themeHexPattern matches the hex forms lipgloss can render: #rgb and #rrggbb.
var themeHexPattern = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" || name == "" {
				return field.Name
			}
			return name
		})

		_ = v.RegisterValidation("theme_token", func(fl validator.FieldLevel) bool {
			return components.IsColorToken(fl.Field().String())
		})

		_ = v.RegisterValidation("theme_hex", func(fl validator.FieldLevel) bool {
			return themeHexPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// ValidateTheme checks a decoded theme file. Colors are checked in token
// order so the reported field is stable.
func ValidateTheme(file *ThemeFile) error {
	if file == nil {
		return glinterrors.NewValidationError("theme", "theme is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(file); err != nil {
		return convertValidationError("", err)
	}

	tokens := make([]string, 0, len(file.Colors))
	for token := range file.Colors {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)

	for _, token := range tokens {
		field := fieldForColor(token)
		if err := v.Var(token, "theme_token"); err != nil {
			return glinterrors.NewValidationError(field, fmt.Sprintf("unknown color token %q", token), err)
		}
		if err := v.Struct(file.Colors[token]); err != nil {
			return convertValidationError(field, err)
		}
	}

	return nil
}

func convertValidationError(prefix string, err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := ve.Field()
		if prefix != "" {
			field = prefix + "." + field
		}
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		if ve.Tag() == "theme_hex" {
			msg = fmt.Sprintf("%s must be a hex color like #1f2937, got %q", field, ve.Value())
		}
		return glinterrors.NewValidationError(field, msg, err)
	}

	if prefix == "" {
		prefix = "theme"
	}
	return glinterrors.NewValidationError(prefix, err.Error(), err)
}

func fieldForColor(token string) string {
	return "colors." + token
}
