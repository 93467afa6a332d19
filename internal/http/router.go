package http

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRouter builds the gin engine exposing propagation and pass-prediction
// endpoints, layered after ngs-tides-api's router: a v1 group for the
// domain endpoints plus a bare /healthz.
func SetupRouter() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())

	handler := NewHandler()

	v1 := router.Group("/v1")
	{
		v1.GET("/propagate", handler.GetPropagate)
		v1.GET("/passes", handler.GetPasses)
	}

	router.GET("/healthz", handler.HealthCheck)

	return router
}
