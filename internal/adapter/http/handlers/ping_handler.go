package handlers

import (
	"net/http"

	response "quickestimate/internal/adapter/http/dto/response"

	"github.com/gin-gonic/gin"
)

// Ping godoc
// @Summary  Health check
// @Tags     health
// @Produce  json
// @Success  200  {object}  response.PingResponse
// @Router   /ping [get]
func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, response.PingResponse{OK: true, Message: "CORS is working perfectly!"})
}

// CORSCheck godoc
// @Summary  CORS smoke test
// @Tags     health
// @Produce  json
// @Success  200  {object}  response.MessageResponse
// @Router   /test-cors [get]
func CORSCheck(c *gin.Context) {
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Test CORS endpoint OK"})
}
