// Package i18n holds the locale registry and the canonical fallback table.
//
// Every component that needs per-locale behavior goes through this package so
// there is exactly one declaration of which locales exist and in which order a
// missing translation falls back to another one.
package i18n

import (
	"golang.org/x/text/language"
)

// DefaultLocale is the locale the site falls back to when nothing better is known.
const DefaultLocale = "tr"

// locales lists the supported locale codes in display order.
var locales = []string{"tr", "en", "ru", "fa", "az", "ar"}

// displayNames maps a locale code to its native display name.
var displayNames = map[string]string{
	"tr": "Türkçe",
	"en": "English",
	"ru": "Русский",
	"fa": "فارسی",
	"az": "Azərbaycan",
	"ar": "العربية",
}

// fallbacks is the canonical fallback table: the ordered list of locales tried
// when the requested locale has no data for a field or document branch.
// Every chain terminates at the default locale.
var fallbacks = map[string][]string{
	"tr": {"tr"},
	"en": {"en", "tr"},
	"ru": {"ru", "en", "tr"},
	"fa": {"fa", "en", "tr"},
	"az": {"az", "en", "tr"},
	"ar": {"ar", "en", "tr"},
}

// rtl marks the locales written right to left.
var rtl = map[string]bool{
	"fa": true,
	"ar": true,
}

// matcher negotiates Accept-Language headers against the supported locales.
var matcher = func() language.Matcher {
	tags := make([]language.Tag, 0, len(locales))
	for _, l := range locales {
		tags = append(tags, language.Make(l))
	}

	return language.NewMatcher(tags)
}()

// Locales returns the supported locale codes in display order.
// The returned slice must not be modified.
func Locales() []string {
	return locales
}

// Default returns the default locale code.
func Default() string {
	return DefaultLocale
}

// Supported reports whether the given code is a supported locale.
func Supported(code string) bool {
	_, ok := fallbacks[code]
	return ok
}

// Normalize maps any locale code to a supported one.
// Unsupported codes are treated as the default locale.
func Normalize(code string) string {
	if Supported(code) {
		return code
	}

	return DefaultLocale
}

// DisplayName returns the native display name for a locale code.
func DisplayName(code string) string {
	if name, ok := displayNames[code]; ok {
		return name
	}

	return displayNames[DefaultLocale]
}

// RTL reports whether a locale is written right to left.
func RTL(code string) bool {
	return rtl[code]
}

// Chain returns the fallback chain for a locale, starting with the locale
// itself and terminating at the default locale. Unsupported codes get the
// default locale's chain.
func Chain(locale string) []string {
	if chain, ok := fallbacks[locale]; ok {
		return chain
	}

	return fallbacks[DefaultLocale]
}

// Match picks the best supported locale for an Accept-Language header value.
// Empty or unparsable input yields the default locale.
func Match(acceptLanguage string) string {
	if acceptLanguage == "" {
		return DefaultLocale
	}

	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return DefaultLocale
	}

	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return DefaultLocale
	}

	return locales[index]
}
