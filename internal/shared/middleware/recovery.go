package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"book-management/internal/shared/response"
)

func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().
					Str("request_id", c.GetString("request_id")).
					Interface("error", err).
					Msg("Panic recovered")

				c.JSON(http.StatusInternalServerError, response.ErrorBody{
					Timestamp: time.Now(),
					Message:   "Internal server error",
					Details:   c.Request.Method + " " + c.Request.URL.Path,
				})
				c.Abort()
			}
		}()

		c.Next()
	}
}
