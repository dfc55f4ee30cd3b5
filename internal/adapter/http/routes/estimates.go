package routes

import (
	"quickestimate/internal/adapter/http/handlers"
	"quickestimate/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathTranscribeAndParse = "/transcribe-and-parse"
	PathGeneratePDF        = "/generate-pdf"
)

func addEstimateRoutes(rg *gin.RouterGroup, maxBytes int64, estimateHandler *handlers.EstimateHandler, transcriptionHandler *handlers.TranscriptionHandler) {
	limited := rg.Group("", middleware.BodySizeLimit(maxBytes))
	{
		limited.POST(PathTranscribeAndParse, transcriptionHandler.TranscribeAndParse)
		limited.POST(PathGeneratePDF, estimateHandler.GeneratePDF)
	}
}
