package main

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const serviceVersion = "0.1.0"

// applyCORSMiddleware allows the configured storefront and panel origins.
// Requests without an Origin header (curl, server-to-server) pass through.
func applyCORSMiddleware(r *gin.Engine, allowedOrigins []string) {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[origin] = true
	}

	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" && allowed[origin] {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Admin-Key, X-Request-ID")
			c.Header("Access-Control-Max-Age", "86400")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}

// registerHealthRoute reports service liveness and database reachability.
// A broken database turns the payload into "degraded" but keeps the 200 so
// orchestrators do not restart-loop on transient outages.
func registerHealthRoute(r *gin.Engine, sqlDB *sql.DB) {
	r.GET("/health", func(c *gin.Context) {
		status := "ok"
		dbStatus := "ok"
		if sqlDB == nil {
			dbStatus = "not_configured"
		} else if err := sqlDB.PingContext(c.Request.Context()); err != nil {
			status = "degraded"
			dbStatus = "unreachable"
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   status,
			"service":  "orderlink-backend",
			"version":  serviceVersion,
			"database": dbStatus,
		})
	})
}

// registerMetricsRoute exposes Prometheus metrics
func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
