package middleware

import (
	"github.com/voueil/Herafona-website/config"
	"github.com/voueil/Herafona-website/i18n"

	"github.com/gin-gonic/gin"
)

// CtxLangKey holds the resolved display language.
const CtxLangKey = "lang"

// LanguageMiddleware resolves the display language from the "lang" query
// parameter, then the Accept-Language header, then the configured default
// (Arabic).
func LanguageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.Query("lang")
		if raw == "" {
			raw = c.GetHeader("Accept-Language")
		}
		if raw == "" {
			raw = config.AppConfig.DefaultLanguage
		}
		c.Set(CtxLangKey, i18n.Parse(raw))
		c.Next()
	}
}

// Lang returns the request's display language.
func Lang(c *gin.Context) i18n.Language {
	if v, ok := c.Get(CtxLangKey); ok {
		if lang, ok := v.(i18n.Language); ok {
			return lang
		}
	}
	return i18n.LangArabic
}
