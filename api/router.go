package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Establishes HTTP router.
func (service *Service) setupRouter(server *http.Server) {
	router := gin.New()

	router.Use(
		requestIDMiddleware(),
		loggerMiddleware(),
		gin.Recovery(),
		service.corsMiddleware(),
	)

	router.GET(PingURL, func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "pong")
	})

	v1 := router.Group("/").Use(service.bodyLimitMiddleware())
	v1.POST(ScanURL, service.scan)
	v1.POST(TransformURL, service.transform)

	server.Handler = router
	service.router = router
}
