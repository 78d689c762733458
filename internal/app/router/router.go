// Package router assembles the gin route table for the service.
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	userhandler "user_backend/internal/feature/users/transport/handler"
	"user_backend/internal/platform/http/handler"
	"user_backend/internal/platform/metrics"
)

// NewRouter builds the gin engine with all routes registered.
func NewRouter(users *userhandler.UserHandler) *gin.Engine {
	r := gin.Default()
	r.Use(metrics.Middleware())

	// Liveness check
	r.GET("/healthz", handler.Health)
	// Prometheus scrape endpoint
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.GET("/users", users.List)
		api.GET("/users/:id", users.Get)
		api.POST("/users", users.Create)
		api.PUT("/users/:id", users.Update)
		api.DELETE("/users/:id", users.Delete)
	}

	return r
}
