package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"foodapi/apperrors"
	"foodapi/logger"
	"foodapi/schemas"
)

// ErrorHandler translates the last error a handler pushed onto the
// context into the JSON error envelope. Every mapped error is logged
// before the response goes out; unexpected causes stay server-side.
func ErrorHandler(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		appErr := apperrors.From(c.Errors.Last().Err)
		log.Error("request failed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", appErr.Status,
			"code", appErr.Code,
			"message", appErr.Message,
			"cause", appErr.Err,
			"request_id", RequestIDFrom(c),
		)
		c.JSON(appErr.Status, schemas.Error(appErr.Code, appErr.Message, appErr.Details))
	}
}

// Recovery maps panics to the generic internal-error envelope.
func Recovery(log *logger.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered interface{}) {
		log.Error("panic recovered",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"panic", recovered,
			"request_id", RequestIDFrom(c),
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError,
			schemas.Error(apperrors.CodeInternal, "an internal server error occurred", nil))
	})
}
