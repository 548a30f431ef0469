package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		raw  string
		want Language
	}{
		{"ar", LangArabic},
		{"en", LangEnglish},
		{"EN", LangEnglish},
		{"en-US", LangEnglish},
		{"  en  ", LangEnglish},
		{"fr", LangArabic},
		{"", LangArabic},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Parse(tt.raw), "raw=%q", tt.raw)
	}
}

func TestForResolvesPerLanguage(t *testing.T) {
	ar := For(LangArabic)
	en := For(LangEnglish)

	assert.NotEqual(t, ar(KeyBookingSuccess, ""), en(KeyBookingSuccess, ""))
	assert.NotEmpty(t, ar(KeyBookingSuccess, ""))
	assert.NotEmpty(t, en(KeyBookingSuccess, ""))
}

func TestForUnknownLanguageUsesArabic(t *testing.T) {
	tr := For(Language("fr"))
	ar := For(LangArabic)

	assert.Equal(t, ar(KeyBookingSuccess, ""), tr(KeyBookingSuccess, ""))
}

func TestForMissingKeyFallsBackToCallerDefault(t *testing.T) {
	tr := For(LangEnglish)
	assert.Equal(t, "default text", tr("no.such.key", "default text"))
}

func TestAllKeysPresentInBothTables(t *testing.T) {
	for key := range translations[LangArabic] {
		_, ok := translations[LangEnglish][key]
		assert.True(t, ok, "key %q missing from the English table", key)
	}
	for key := range translations[LangEnglish] {
		_, ok := translations[LangArabic][key]
		assert.True(t, ok, "key %q missing from the Arabic table", key)
	}
}
