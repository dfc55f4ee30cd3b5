package handlers

import (
	"errors"
	"net/http"

	request "quickestimate/internal/adapter/http/dto/request"
	"quickestimate/internal/adapter/http/middleware"
	"quickestimate/internal/usecase"
	"quickestimate/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const pdfFilename = "estimate.pdf"

var (
	errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)
	errUnstructuredEstimate   = pkg.NewDomainErrorSimple("UNSTRUCTURED_ESTIMATE", "Estimate text does not contain structured data", http.StatusUnprocessableEntity)
)

// EstimateHandler renders estimate records into PDF documents.
type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

// GeneratePDF godoc
// @Summary      Render an estimate PDF
// @Description  Aggregates totals (10% tax, 30 day validity) and returns the estimate as a PDF attachment.
// @Tags         estimates
// @Accept       json
// @Produce      application/pdf
// @Param        record  body      request.EstimateRequest  true  "Estimate record"
// @Success      200     {file}    file
// @Header       200     {string}  X-Estimate-ID  "Generated estimate id"
// @Failure      400     {object}  pkg.HTTPError
// @Failure      422     {object}  pkg.HTTPError
// @Failure      500     {object}  pkg.HTTPError
// @Router       /generate-pdf [post]
func (h *EstimateHandler) GeneratePDF(c *gin.Context) {
	logger := log.Ctx(c.Request.Context()).With().Str("component", "estimate.handler").Logger()

	body, err := c.GetRawData()
	if err != nil {
		logger.Warn().Err(err).Msg("generate-pdf read body failed")
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	payload, err := request.DecodeEstimateRequest(body)
	if err != nil {
		logger.Warn().Err(err).Msg("generate-pdf invalid payload")
		appErr := mapEstimateInputError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	doc, pdf, err := h.usecase.GeneratePDF(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+pdfFilename)
	c.Header(middleware.EstimateIDHeader, doc.EstimateID)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func mapEstimateInputError(err error) *pkg.AppError {
	var fieldErr *request.FieldError
	switch {
	case errors.As(err, &fieldErr):
		return pkg.NewDomainError("INVALID_ESTIMATE_FIELD", "Invalid estimate field", err, http.StatusBadRequest).
			WithDetail("field", fieldErr.Field).
			WithDetail("reason", fieldErr.Reason)
	case errors.Is(err, request.ErrUnstructuredRecord):
		return errUnstructuredEstimate
	default:
		return errInvalidEstimatePayload
	}
}

func mapEstimateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrRendererNotConfigured), errors.Is(err, usecase.ErrRenderFailed):
		return pkg.NewDomainError("INTERNAL_ERROR", "Could not render the estimate", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
