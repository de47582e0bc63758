package serrors

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/iota-uz/go-i18n/v2/i18n"
)

// ValidationError carries one field-level validation failure together
// with the locale key of the offending field's label.
type ValidationError struct {
	BaseError
	FieldLocaleKey string
}

type ValidationErrors map[string]*ValidationError

// ProcessValidatorErrors converts go-playground validator errors into
// field-keyed ValidationErrors. fieldLocaleKey maps a struct field name
// to the locale key of its user-facing label; an empty key means the
// raw field name is shown instead.
func ProcessValidatorErrors(
	errs validator.ValidationErrors,
	fieldLocaleKey func(field string) string,
) ValidationErrors {
	out := make(ValidationErrors, len(errs))
	for _, fe := range errs {
		field := fe.Field()
		out[field] = &ValidationError{
			BaseError: BaseError{
				Code:      fmt.Sprintf("VALIDATION_%s", fe.Tag()),
				Message:   fmt.Sprintf("field %q failed on the %q rule", field, fe.Tag()),
				LocaleKey: fmt.Sprintf("ValidationErrors.%s", fe.Tag()),
			},
			FieldLocaleKey: fieldLocaleKey(field),
		}
	}
	return out
}

// LocalizeValidationErrors renders each validation error with the given
// localizer, substituting the localized field label into the message.
func LocalizeValidationErrors(errs ValidationErrors, l *i18n.Localizer) map[string]string {
	out := make(map[string]string, len(errs))
	for field, verr := range errs {
		label := field
		if l != nil && verr.FieldLocaleKey != "" {
			if localized, err := l.Localize(&i18n.LocalizeConfig{MessageID: verr.FieldLocaleKey}); err == nil && localized != "" {
				label = localized
			}
		}
		out[field] = verr.Localize(l, map[string]any{"Field": label})
	}
	return out
}
