package response

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"rockguard-srv/pkg/discord"
	pkgErrors "rockguard-srv/pkg/errors"
)

// OK writes a 200 response with the standard envelope.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: 0,
		Message:   "Success",
		Data:      data,
	})
}

// Error writes an error response. HTTPErrors keep their status and message;
// anything else becomes a 500 and is reported to the ops webhook.
func Error(c *gin.Context, err error, notifier discord.IDiscord) {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		c.JSON(httpErr.Code, Resp{
			ErrorCode: httpErr.Code,
			Message:   httpErr.Message,
		})
		return
	}

	if notifier != nil {
		_ = notifier.SendError(c.Request.Context(), "Unhandled error",
			fmt.Sprintf("%s %s", c.Request.Method, c.Request.URL.Path), err)
	}
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   "Internal server error",
	})
}

// ErrorWithMap maps err through mapping before writing; unmapped errors fall
// through to Error.
func ErrorWithMap(c *gin.Context, err error, mapping ErrorMapping, notifier discord.IDiscord) {
	for sentinel, httpErr := range mapping {
		if errors.Is(err, sentinel) {
			Error(c, httpErr, notifier)
			return
		}
	}
	Error(c, err, notifier)
}

// Unauthorized writes a 401 response.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Resp{
		ErrorCode: http.StatusUnauthorized,
		Message:   "Unauthorized",
	})
}

// PanicError reports a recovered panic and writes a 500 response.
func PanicError(c *gin.Context, recovered any, notifier discord.IDiscord) {
	if notifier != nil {
		_ = notifier.SendError(c.Request.Context(), "Panic recovered",
			fmt.Sprintf("%s %s", c.Request.Method, c.Request.URL.Path),
			fmt.Errorf("%v", recovered))
	}
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   "Internal server error",
	})
}
