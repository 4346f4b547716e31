package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"teamcity-notifier/pkg/log"
	pkgResponse "teamcity-notifier/pkg/response"
)

// RequestIDHeader carries the request correlation id in and out.
const RequestIDHeader = "X-Request-ID"

const maxRequestIDLen = 64

// Trace stores a correlation id in the request context so every log line of
// the request carries it. A well-formed incoming X-Request-ID is reused.
func (m Middleware) Trace() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > maxRequestIDLen {
			id = uuid.NewString()
		}

		c.Request = c.Request.WithContext(log.WithTraceID(c.Request.Context(), id))
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// Recovery turns a handler panic into a logged 500.
func (m Middleware) Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				m.l.Errorf(c.Request.Context(), "internal.middleware.Recovery: %s %s panicked: %v",
					c.Request.Method, c.Request.URL.Path, r)
				pkgResponse.InternalError(c, nil)
				c.Abort()
			}
		}()
		c.Next()
	}
}
