package middleware

import (
	"log/slog"
	"strings"

	"campsite-reservation/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware exposes the request id header alongside the configured
// ones so browser clients can correlate failures with server logs.
func NewCORSMiddleware(cfg config.CORSConfig, logger *slog.Logger) gin.HandlerFunc {
	exposed := cfg.ExposeHeaders
	if !containsFold(exposed, RequestIDHeader) {
		exposed = append(append([]string{}, exposed...), RequestIDHeader)
	}

	logger.Info("cors configured", "origins", cfg.AllowOrigins, "expose", exposed)
	return cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     append(append([]string{}, cfg.AllowHeaders...), RequestIDHeader),
		ExposeHeaders:    exposed,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	})
}

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}
