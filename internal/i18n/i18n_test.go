package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChain(t *testing.T) {
	testCases := []struct {
		name     string
		locale   string
		expected []string
	}{
		{
			name:     "default locale is terminal",
			locale:   "tr",
			expected: []string{"tr"},
		},
		{
			name:     "english falls back to turkish",
			locale:   "en",
			expected: []string{"en", "tr"},
		},
		{
			name:     "farsi falls back through english",
			locale:   "fa",
			expected: []string{"fa", "en", "tr"},
		},
		{
			name:     "russian falls back through english",
			locale:   "ru",
			expected: []string{"ru", "en", "tr"},
		},
		{
			name:     "unsupported locale gets the default chain",
			locale:   "de",
			expected: []string{"tr"},
		},
		{
			name:     "empty locale gets the default chain",
			locale:   "",
			expected: []string{"tr"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Chain(tc.locale))
		})
	}
}

func TestChainTerminatesAtDefault(t *testing.T) {
	for _, locale := range Locales() {
		chain := Chain(locale)
		require.NotEmpty(t, chain, "chain for %s", locale)
		assert.Equal(t, locale, chain[0], "chain for %s must start with itself", locale)
		assert.Equal(t, Default(), chain[len(chain)-1], "chain for %s must end at the default locale", locale)
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "en", Normalize("en"))
	assert.Equal(t, "ar", Normalize("ar"))
	assert.Equal(t, "tr", Normalize("xx"))
	assert.Equal(t, "tr", Normalize(""))
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "English", DisplayName("en"))
	assert.Equal(t, "Русский", DisplayName("ru"))
	// unknown codes get the default locale's name
	assert.Equal(t, "Türkçe", DisplayName("xx"))
}

func TestMatch(t *testing.T) {
	testCases := []struct {
		name           string
		acceptLanguage string
		expected       string
	}{
		{name: "empty header", acceptLanguage: "", expected: "tr"},
		{name: "garbage header", acceptLanguage: ";;;", expected: "tr"},
		{name: "exact match", acceptLanguage: "ru", expected: "ru"},
		{name: "region variant", acceptLanguage: "en-US,en;q=0.9", expected: "en"},
		{name: "quality ordering", acceptLanguage: "de;q=0.9,az;q=0.8", expected: "az"},
		{name: "unsupported only", acceptLanguage: "ja", expected: "tr"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Match(tc.acceptLanguage))
		})
	}
}
