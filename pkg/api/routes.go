package api

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.Engine) {
	router.GET("/", WelcomeController)
	router.HEAD("/", WelcomeController)
}

// NewRouter builds the engine the server hands to net/http. Unmatched paths
// and methods fall through to gin's default 404 handler.
func NewRouter() *gin.Engine {
	router := gin.New()
	router.Use(RequestLogger(), gin.Recovery())
	RegisterRoutes(router)
	return router
}
