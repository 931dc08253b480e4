package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const WelcomeMessage = "Welcome to the Express API Server"

func WelcomeController(c *gin.Context) {
	c.String(http.StatusOK, WelcomeMessage)
}
