package validation

import (
	"regexp"
	"strings"

	"github.com/monext/checkout.sdk.go/models"
)

// FieldPattern is a compiled, fully-anchored regex for one server-described
// form field. A pattern that fails to compile never validates.
type FieldPattern struct {
	re *regexp.Regexp
}

// CompilePattern anchors the pattern at both ends unless it already is, then
// compiles it.
func CompilePattern(pattern string) FieldPattern {
	applied := pattern
	if !strings.HasPrefix(applied, "^") || !strings.HasSuffix(applied, "$") {
		applied = "^" + applied + "$"
	}
	re, err := regexp.Compile(applied)
	if err != nil {
		return FieldPattern{}
	}
	return FieldPattern{re: re}
}

// Matches reports whether the value fully matches the pattern.
func (p FieldPattern) Matches(value string) bool {
	if p.re == nil {
		return false
	}
	return p.re.MatchString(value)
}

// InputHint is an advisory keyboard/input-type hint derived from a field's
// pattern. It carries no validation weight.
type InputHint int

const (
	// InputHintText is the default free-text hint.
	InputHintText InputHint = iota

	// InputHintEmail suggests an email keyboard.
	InputHintEmail

	// InputHintNumeric suggests a digits-only keyboard.
	InputHintNumeric
)

// HintForPattern derives an input hint from a regex pattern: patterns
// mentioning "@" look like email fields, patterns built only from digit
// classes look numeric.
func HintForPattern(pattern string) InputHint {
	if pattern == "" {
		return InputHintText
	}
	if strings.Contains(pattern, "@") {
		return InputHintEmail
	}
	hasDigits := strings.Contains(pattern, `\d`) || strings.Contains(pattern, "0-9")
	hasLetters := strings.Contains(pattern, "a-z") || strings.Contains(pattern, "A-Z") ||
		strings.Contains(pattern, `\w`)
	if hasDigits && !hasLetters {
		return InputHintNumeric
	}
	return InputHintText
}

// FieldValid reports whether one value is valid for its field: empty and not
// required passes, otherwise a declared pattern must fully match.
func FieldValid(field *models.PaymentMethodFormField, value string) bool {
	if value == "" {
		return !field.Required
	}
	if field.Validation == nil || field.Validation.Pattern == "" {
		return true
	}
	return CompilePattern(field.Validation.Pattern).Matches(value)
}

// FormValuesValid aggregates FieldValid over a server-described form: every
// required field must be non-empty and every non-empty field with a pattern
// must match it.
func FormValuesValid(form *models.PaymentMethodForm, values map[string]string) bool {
	if form == nil {
		return true
	}
	for i := range form.FormFields {
		field := &form.FormFields[i]
		if field.Key == "" {
			continue
		}
		if !FieldValid(field, values[field.Key]) {
			return false
		}
	}
	return true
}
