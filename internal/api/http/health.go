package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
}

type RootResponse struct {
	Ping   string `json:"ping"`
	Status string `json:"status"`
}

type HealthHandler struct {
	serviceName string
	version     string
}

func NewHealthHandler(serviceName, version string) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
	}
}

// Root is the liveness probe the editor pings before submitting.
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, RootResponse{
		Ping:   "pong",
		Status: h.serviceName + " is running",
	})
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Service:   h.serviceName,
		Version:   h.version,
	})
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/", h.Root)
	r.GET("/health", h.HealthCheck)
	r.GET("/healthz", h.HealthCheck)
}
