package middleware

import (
	"log"
	"strings"
	"time"

	"github.com/GoSim-25-26J-441/pipeline-parser/internal/logging"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	HeaderRequestID = "X-Request-Id"
	CtxRequestID    = "request_id"
)

// RequestIDMiddleware reuses an incoming X-Request-Id of up to 128 characters
// and mints a UUID otherwise. The id lands in the gin context, the request
// context (for logging.NewLogger) and the response header, and one [req] line
// is logged once the handler chain returns.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := strings.TrimSpace(c.GetHeader(HeaderRequestID))
		if rid == "" || len(rid) > 128 {
			rid = uuid.NewString()
		}

		c.Set(CtxRequestID, rid)
		c.Request = c.Request.WithContext(logging.WithRequestID(c.Request.Context(), rid))
		c.Writer.Header().Set(HeaderRequestID, rid)

		start := time.Now()
		c.Next()

		log.Printf(
			"[req] id=%s method=%s path=%s status=%d latency=%s",
			rid,
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			time.Since(start),
		)
	}
}
