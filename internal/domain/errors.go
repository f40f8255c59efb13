package domain

import "errors"

// Error is a domain error carrying a stable code that adapters can map to
// user-facing text.
type Error struct {
	code string
	msg  string
}

func (e *Error) Error() string { return e.msg }

// Code returns the stable error code.
func (e *Error) Code() string { return e.code }

func newError(code, msg string) *Error {
	return &Error{code: code, msg: msg}
}

// Domain errors.
var (
	ErrUnknownOperation      = newError("unknown_operation", "unknown operation")
	ErrUnsupportedLocale     = newError("unsupported_locale", "unsupported locale")
	ErrGuildSettingsNotFound = newError("guild_settings_not_found", "guild settings not found")
)

// Code extracts the domain error code from err, or "" when err is not (or does
// not wrap) a domain error.
func Code(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.code
	}
	return ""
}
