package middleware

import (
	"github.com/gin-gonic/gin"

	"book-management/pkg/i18n"
)

// Locale negotiates the response language from Accept-Language and stores it
// for handlers and the error translator.
func Locale(bundle *i18n.Bundle) gin.HandlerFunc {
	return func(c *gin.Context) {
		locale := bundle.MatchAcceptLanguage(c.GetHeader("Accept-Language"))
		c.Set("locale", locale)

		c.Next()
	}
}
