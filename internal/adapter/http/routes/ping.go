package routes

import (
	"quickestimate/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPing     = "/ping"
	PathTestCORS = "/test-cors"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, handlers.Ping)
	rg.GET(PathTestCORS, handlers.CORSCheck)
}
