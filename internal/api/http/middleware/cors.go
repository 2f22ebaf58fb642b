package middleware

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS lets the pipeline editor call the API from the listed origins. A "*"
// entry allows any origin, in which case credentials are not allowed.
// Preflights get back whatever headers they asked for.
func CORS(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		ExposeHeaders:    []string{HeaderRequestID},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			cfg.AllowCredentials = false
			break
		}
	}
	if !cfg.AllowAllOrigins {
		cfg.AllowOrigins = origins
	}

	// cors copies its preflight headers over the response; with AllowHeaders
	// left empty it never sets Access-Control-Allow-Headers, so the echo
	// below survives.
	handler := cors.New(cfg)
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			if requested := c.GetHeader("Access-Control-Request-Headers"); requested != "" {
				c.Header("Access-Control-Allow-Headers", requested)
				c.Writer.Header().Add("Vary", "Access-Control-Request-Headers")
			}
		}
		handler(c)
	}
}
