package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"campsite-reservation/internal/handler/httperr"
	"campsite-reservation/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const maxStackLines = 12

// ErrorHandler renders the last public error attached to the context when the
// handler did not write a body itself. Server-side failures are logged with a
// trimmed stack.
func ErrorHandler(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		for _, e := range c.Errors {
			resp, ok := e.Meta.(httperr.Response)
			if ok && resp.Status < http.StatusInternalServerError {
				continue
			}
			logger.ErrorContext(c.Request.Context(), "request failed",
				"request_id", GetRequestID(c),
				"route", c.FullPath(),
				"error", e.Err.Error(),
				"stack", errs.ExtractStackLines(e.Err, maxStackLines),
			)
		}

		if c.Writer.Written() {
			return
		}
		if resp, ok := lastPublic(c.Errors); ok {
			c.JSON(resp.Status, resp)
			return
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, httperr.NewResponse(http.StatusInternalServerError, httperr.InternalMessage))
	}
}

func lastPublic(list []*gin.Error) (httperr.Response, bool) {
	for i := len(list) - 1; i >= 0; i-- {
		if !list[i].IsType(gin.ErrorTypePublic) {
			continue
		}
		if resp, ok := list[i].Meta.(httperr.Response); ok {
			return resp, true
		}
	}
	return httperr.Response{}, false
}

// Recovery turns a panic into a 500 with the generic message. It must be the
// outermost middleware.
func Recovery(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				err := errs.New(fmt.Sprint(r))
				logger.ErrorContext(c.Request.Context(), "recovered from panic",
					"request_id", GetRequestID(c),
					"path", c.Request.URL.Path,
					"error", err.Error(),
					"stack", errs.ExtractStackLines(err, maxStackLines),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					httperr.NewResponse(http.StatusInternalServerError, httperr.InternalMessage))
			}
		}()
		c.Next()
	}
}
