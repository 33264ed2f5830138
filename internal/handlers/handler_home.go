package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func registerHomeRoutes(r *gin.Engine) {
	r.GET("/health", healthCheck)
}

// healthCheck godoc
// @Summary Health check
// @Description Reports whether the service is up.
// @Tags home
// @Produce plain
// @Success 200 {string} string "OK"
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}
