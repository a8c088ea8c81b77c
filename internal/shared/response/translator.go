package response

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"book-management/internal/shared/fault"
	"book-management/pkg/i18n"
)

// Translator renders errors as localized ErrorBody payloads.
type Translator struct {
	bundle *i18n.Bundle
}

func NewTranslator(bundle *i18n.Bundle) *Translator {
	return &Translator{bundle: bundle}
}

// Text resolves a message key in the given locale. A key missing from every
// bundle renders as the key itself; error rendering must never fail.
func (t *Translator) Text(locale, key string, args ...interface{}) string {
	msg, err := t.bundle.Translate(locale, key, args...)
	if err != nil {
		log.Warn().Str("key", key).Str("locale", locale).Msg("Missing message key")
		return key
	}
	return msg
}

// WriteError maps err to an HTTP status, localizes its message and writes
// the ErrorBody. It aborts the gin chain so no later handler writes again.
func (t *Translator) WriteError(c *gin.Context, err error) {
	locale := c.GetString("locale")
	status := fault.StatusOf(err)

	body := ErrorBody{
		Timestamp: time.Now(),
		Details:   requestDescriptor(c),
	}

	var vErr *fault.ValidationError
	var nfErr *fault.NotFoundError
	switch {
	case errors.As(err, &vErr):
		body.Message = t.Text(locale, "validation.failed")
		translated := make([]string, len(vErr.Keys))
		for i, key := range vErr.Keys {
			translated[i] = t.Text(locale, key)
		}
		body.Details = "[" + strings.Join(translated, ", ") + "]"
	case errors.As(err, &nfErr):
		body.Message = t.Text(locale, nfErr.MessageKey) + nfErr.Subject
	case errors.Is(err, fault.ErrMalformedBody):
		body.Message = t.Text(locale, "request.malformed")
	case errors.Is(err, fault.ErrBadPage):
		body.Message = t.Text(locale, "request.bad-page")
	default:
		body.Message = err.Error()
	}

	if status >= http.StatusInternalServerError {
		log.Error().
			Err(err).
			Str("request_id", c.GetString("request_id")).
			Str("path", c.Request.URL.Path).
			Msg("request failed")
	}

	c.JSON(status, body)
	c.Abort()
}

// requestDescriptor summarizes the failing request, e.g. "GET /authors/7".
func requestDescriptor(c *gin.Context) string {
	uri := c.Request.URL.Path
	if q := c.Request.URL.RawQuery; q != "" {
		uri += "?" + q
	}
	return c.Request.Method + " " + uri
}
