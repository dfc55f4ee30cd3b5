package handlers

import (
	"context"
	"errors"
	"net/http"

	response "quickestimate/internal/adapter/http/dto/response"
	"quickestimate/internal/usecase"
	"quickestimate/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// AudioFormField is the multipart field carrying the recording.
const AudioFormField = "file"

// TranscriptionHandler serves the voice pipeline.
type TranscriptionHandler struct {
	usecase  usecase.IVoiceEstimateUseCase
	maxBytes int64
}

func NewTranscriptionHandler(uc usecase.IVoiceEstimateUseCase, maxBytes int64) *TranscriptionHandler {
	return &TranscriptionHandler{usecase: uc, maxBytes: maxBytes}
}

// TranscribeAndParse godoc
// @Summary      Transcribe a recording and extract an estimate
// @Description  Speech-to-text followed by structured extraction. parsed is an object, or the model's raw text when it did not answer with JSON.
// @Tags         estimates
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Audio recording (audio/*)"
// @Success      200   {object}  response.TranscribeAndParseResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      413   {object}  pkg.HTTPError
// @Failure      502   {object}  pkg.HTTPError
// @Failure      504   {object}  pkg.HTTPError
// @Router       /transcribe-and-parse [post]
func (h *TranscriptionHandler) TranscribeAndParse(c *gin.Context) {
	logger := log.Ctx(c.Request.Context()).With().Str("component", "transcription.handler").Logger()

	if h.maxBytes > 0 && c.Request.ContentLength > h.maxBytes {
		appErr := audioTooLarge(h.maxBytes)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	fileHeader, err := c.FormFile(AudioFormField)
	if err != nil {
		logger.Warn().Err(err).Msg("transcribe-and-parse missing upload")
		appErr := mapUploadError(err, h.maxBytes)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if fileHeader.Size == 0 {
		appErr := pkg.NewDomainErrorSimple("INVALID_AUDIO_UPLOAD", "Uploaded audio file is empty", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		appErr := mapUploadError(err, h.maxBytes)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	defer f.Close()

	out, err := h.usecase.TranscribeAndParse(c.Request.Context(), usecase.AudioUpload{
		Body:        f,
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
	})
	if err != nil {
		appErr := mapVoiceEstimateError(err, h.maxBytes)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromExtraction(out))
}

func audioTooLarge(maxBytes int64) *pkg.AppError {
	return pkg.NewDomainErrorSimple("AUDIO_TOO_LARGE", "Audio upload exceeds the size limit", http.StatusRequestEntityTooLarge).
		WithDetail("max_bytes", maxBytes)
}

func mapUploadError(err error, maxBytes int64) *pkg.AppError {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return audioTooLarge(maxBytes)
	}
	return pkg.NewDomainError("INVALID_AUDIO_UPLOAD", "Missing or invalid audio upload in field 'file'", err, http.StatusBadRequest)
}

func mapVoiceEstimateError(err error, maxBytes int64) *pkg.AppError {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.Is(err, usecase.ErrUnsupportedAudioType):
		return pkg.NewDomainErrorSimple("UNSUPPORTED_AUDIO_TYPE", "Uploaded file must be an audio/* content type", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmptyAudio):
		return pkg.NewDomainErrorSimple("INVALID_AUDIO_UPLOAD", "Uploaded audio file is empty", http.StatusBadRequest)
	case errors.As(err, &tooLarge):
		return audioTooLarge(maxBytes)
	case errors.Is(err, context.DeadlineExceeded):
		return pkg.NewDomainError("UPSTREAM_TIMEOUT", "The speech or language provider timed out", err, http.StatusGatewayTimeout)
	case errors.Is(err, usecase.ErrTranscriptionFailed):
		return pkg.NewDomainError("TRANSCRIPTION_FAILED", "Transcription provider failed", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrExtractionFailed):
		return pkg.NewDomainError("EXTRACTION_FAILED", "Extraction provider failed", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
