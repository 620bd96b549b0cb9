package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SetupRootRoute exposes a health endpoint for load balancers.
func SetupRootRoute(router *gin.Engine) {
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "vidaclinic"})
	})
}
