package models

import (
	"github.com/garantico/feedsite/internal/i18n"
)

// localized picks the first non-empty value walking the fallback chain for
// the requested locale. Field level fallback: a missing Farsi description
// falls back to the English one independently of the name fields.
func localized(values map[string]string, locale string) string {
	for _, code := range i18n.Chain(i18n.Normalize(locale)) {
		if v, ok := values[code]; ok && v != "" {
			return v
		}
	}

	// default locale value, even when empty, is the terminal answer
	return values[i18n.Default()]
}
