package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/jazbaa/showcase/internal/middleware"
	"github.com/jazbaa/showcase/internal/pkg/telemetry"
	"github.com/rs/zerolog"
)

// GlobalOptions configures the middleware every route runs through.
type GlobalOptions struct {
	Logger         zerolog.Logger
	AllowedOrigins []string
	Tracing        bool
	ServiceName    string
}

// ApplyGlobalMiddleware installs recovery, tracing, request logging, CORS and
// gzip on router, in that order.
func ApplyGlobalMiddleware(router *gin.Engine, opts GlobalOptions) {
	router.Use(gin.Recovery())
	if opts.Tracing {
		router.Use(telemetry.Middleware(opts.ServiceName))
	}
	router.Use(middleware.RequestLogger(opts.Logger))
	router.Use(cors.New(corsConfig(opts.AllowedOrigins)))
	router.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/swagger"})))
}

// corsConfig allows the listed origins; an empty list or "*" allows any.
// Tokens travel in the Authorization header, so no credentials are needed.
func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	return cfg
}
