package discord

import (
	"tellobot/internal/domain"
	"tellobot/internal/ports/output"
)

const genericErrorKey = "error.generic"

// TranslateDomainError maps a domain error code to a user-facing message in
// locale. Unknown codes get the generic message.
func TranslateDomainError(t output.T, locale, code string) string {
	switch code {
	case "unknown_operation", "unsupported_locale":
		return t.T(locale, "error."+code, nil)
	default:
		return t.T(locale, genericErrorKey, nil)
	}
}

// DomainErrorMessage is a convenience helper that extracts the domain error code
// and immediately resolves it to a user-facing message.
func DomainErrorMessage(t output.T, locale string, err error) string {
	if err == nil {
		return ""
	}
	return TranslateDomainError(t, locale, domain.Code(err))
}
