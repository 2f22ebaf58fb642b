package bootstrap

import (
	httpapi "github.com/GoSim-25-26J-441/pipeline-parser/internal/api/http"
	"github.com/GoSim-25-26J-441/pipeline-parser/internal/api/http/middleware"
	pipelinehttp "github.com/GoSim-25-26J-441/pipeline-parser/internal/pipeline/http"
	"github.com/GoSim-25-26J-441/pipeline-parser/internal/pipeline/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"golang.org/x/time/rate"
)

type RouterDeps struct {
	ServiceName    string
	Version        string
	AllowedOrigins []string
	MaxBodyBytes   int64
	RateLimitRPS   float64
	RateLimitBurst int
	MetricsEnabled bool
	TracingEnabled bool
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(middleware.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	if dep.TracingEnabled {
		r.Use(otelgin.Middleware(dep.ServiceName))
	}
	if dep.MetricsEnabled {
		r.Use(middleware.Metrics())
	}
	r.Use(middleware.CORS(dep.AllowedOrigins))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version)
	healthHandler.RegisterRoutes(r)

	if dep.MetricsEnabled {
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	pipelines := r.Group("")
	pipelines.Use(middleware.BodyLimit(dep.MaxBodyBytes))
	if dep.RateLimitRPS > 0 {
		pipelines.Use(middleware.RateLimit(rate.NewLimiter(rate.Limit(dep.RateLimitRPS), dep.RateLimitBurst)))
	}

	pipelineHandler := pipelinehttp.New(service.NewParseService())
	pipelineHandler.Register(pipelines)

	return r
}
