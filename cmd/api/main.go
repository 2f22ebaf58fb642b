package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/GoSim-25-26J-441/pipeline-parser/config"
	"github.com/GoSim-25-26J-441/pipeline-parser/internal/bootstrap"
	"github.com/GoSim-25-26J-441/pipeline-parser/internal/logging"
	"github.com/GoSim-25-26J-441/pipeline-parser/internal/telemetry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logging.SetLevel(logging.ParseLevel(cfg.App.LogLevel))
	bootstrap.SetGinMode(cfg.App.Environment)

	if cfg.App.TracingEnabled {
		shutdownTracing, err := telemetry.InitTracing(telemetry.TracingOptions{
			ServiceName: cfg.App.ServiceName,
			Version:     cfg.App.Version,
			Environment: cfg.App.Environment,
		})
		if err != nil {
			log.Fatalf("tracing: %v", err)
		}
		defer func() {
			if err := shutdownTracing(context.Background()); err != nil {
				log.Printf("tracing shutdown: %v", err)
			}
		}()
	}

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:    cfg.App.ServiceName,
		Version:        cfg.App.Version,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		MaxBodyBytes:   cfg.Server.MaxBodyBytes,
		RateLimitRPS:   cfg.RateLimit.RPS,
		RateLimitBurst: cfg.RateLimit.Burst,
		MetricsEnabled: cfg.App.MetricsEnabled,
		TracingEnabled: cfg.App.TracingEnabled,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("starting %s %s on :%s (env=%s)", cfg.App.ServiceName, cfg.App.Version, cfg.Server.Port, cfg.App.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown: %v", err)
	}
}
