package serrors

import (
	"github.com/iota-uz/go-i18n/v2/i18n"
)

// BaseError is a coded error that optionally carries a locale key for
// user-facing localization.
type BaseError struct {
	Code      string
	Message   string
	LocaleKey string
}

func (e *BaseError) Error() string {
	return e.Message
}

func NewError(code, message, localeKey string) *BaseError {
	return &BaseError{
		Code:      code,
		Message:   message,
		LocaleKey: localeKey,
	}
}

// Localize resolves the error's locale key against the given localizer,
// falling back to the raw message when no key is set or the lookup fails.
func (e *BaseError) Localize(l *i18n.Localizer, data map[string]any) string {
	if l == nil || e.LocaleKey == "" {
		return e.Message
	}
	localized, err := l.Localize(&i18n.LocalizeConfig{
		MessageID:    e.LocaleKey,
		TemplateData: data,
	})
	if err != nil || localized == "" {
		return e.Message
	}
	return localized
}
