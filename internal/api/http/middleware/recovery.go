package middleware

import (
	"fmt"
	"net/http"

	"github.com/GoSim-25-26J-441/pipeline-parser/internal/logging"
	"github.com/gin-gonic/gin"
)

// Recovery turns a panic in a handler into a 500 JSON response and keeps
// the process serving.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logging.NewLogger(c.Request.Context()).LogError(c.FullPath(), fmt.Errorf("panic: %v", recovered))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error": "internal server error",
		})
	})
}
