package domain

import "fmt"

// Locale identifies a display language for block text.
type Locale string

const (
	LocaleEnglish          Locale = "en"
	LocaleJapanese         Locale = "ja"
	LocaleJapaneseHiragana Locale = "ja-Hira"

	DefaultLocale = LocaleEnglish
)

// SupportedLocales lists the locales with a block-text table, default first.
func SupportedLocales() []Locale {
	return []Locale{LocaleEnglish, LocaleJapanese, LocaleJapaneseHiragana}
}

// ResolveLocale maps a host locale to the locale used for block text.
// Only an exact "ja" or "ja-Hira" is honored; everything else is English.
func ResolveLocale(raw string) Locale {
	switch Locale(raw) {
	case LocaleJapanese, LocaleJapaneseHiragana:
		return Locale(raw)
	default:
		return DefaultLocale
	}
}

// ParseLocale is the strict variant of ResolveLocale used where a caller
// explicitly chooses a locale.
func ParseLocale(raw string) (Locale, error) {
	for _, l := range SupportedLocales() {
		if string(l) == raw {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedLocale, raw)
}
