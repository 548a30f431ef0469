// Package i18n holds the Arabic/English message tables and the translator
// used everywhere a user-facing message is produced.
package i18n

import "strings"

// Language identifies a supported display language.
type Language string

const (
	// LangArabic is the default display language.
	LangArabic Language = "ar"
	// LangEnglish is the secondary display language.
	LangEnglish Language = "en"
)

// Translator resolves a message key for one language. When the key is absent
// from the active table the provided fallback text is returned, so callers
// always end up with something displayable.
type Translator func(key, fallback string) string

// Parse normalizes a raw language tag ("en", "en-US", "ar", ...) to a
// supported Language, defaulting to Arabic.
func Parse(raw string) Language {
	tag := strings.ToLower(strings.TrimSpace(raw))
	if tag == "en" || strings.HasPrefix(tag, "en-") {
		return LangEnglish
	}
	return LangArabic
}

// For returns a Translator bound to the given language. Missing keys fall
// back to the Arabic table before the caller-supplied default, mirroring the
// source tables where Arabic is the authoritative copy.
func For(lang Language) Translator {
	table, ok := translations[lang]
	if !ok {
		table = translations[LangArabic]
	}
	return func(key, fallback string) string {
		if msg, ok := table[key]; ok {
			return msg
		}
		if msg, ok := translations[LangArabic][key]; ok {
			return msg
		}
		return fallback
	}
}
