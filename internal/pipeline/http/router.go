package http

import "github.com/gin-gonic/gin"

// Register registers the pipeline routes
func (h *Handler) Register(rg gin.IRouter) {
	rg.POST("/pipelines/parse", h.ParsePipeline)
}
