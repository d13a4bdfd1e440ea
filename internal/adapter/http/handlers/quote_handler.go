package handlers

import (
	"errors"
	"net/http"
	"time"

	response "seguros_xpto/internal/adapter/http/dto/response"
	"seguros_xpto/internal/usecase"
	"seguros_xpto/pkg"
	"seguros_xpto/pkg/metrics"

	"github.com/gin-gonic/gin"
)

var (
	errUnreadableQuoteBody = pkg.NewDomainErrorSimple("INVALID_QUOTE_PAYLOAD", "Invalid quote payload", http.StatusBadRequest)
)

// QuoteHandler handles HTTP requests for insurance quotations.
//
// The handler owns transport concerns only: reading the raw payload, mapping
// use case errors onto AppError codes and recording traffic metrics. All
// domain decisions live in the use case.

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
	metrics *metrics.QuoteMetrics
}

func NewQuoteHandler(uc usecase.IQuoteUseCase, m *metrics.QuoteMetrics) *QuoteHandler {
	return &QuoteHandler{usecase: uc, metrics: m}
}

// GenerateQuote computes a quote from the submitted request.
//
// @Summary      Generate an insurance quote
// @Description  Validates the submitted request and, on success, returns a priced quote valid for 30 days.
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        payload  body      request.QuoteSubmission  true  "Quote request"
// @Success      201      {object}  response.QuoteResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      500      {object}  pkg.HTTPError
// @Router       /quotes [post]
func (h *QuoteHandler) GenerateQuote(c *gin.Context) {
	start := time.Now()

	payload, err := c.GetRawData()
	if err != nil {
		c.JSON(errUnreadableQuoteBody.HTTPStatus, errUnreadableQuoteBody.ToHTTPError())
		return
	}

	quote, err := h.usecase.GenerateQuote(c.Request.Context(), payload)
	if err != nil {
		var validationErr *usecase.ValidationFailedError
		if errors.As(err, &validationErr) {
			h.metrics.IncValidationFailure()
			appErr := pkg.NewDomainErrorSimple("VALIDATION_FAILED", "Quote request failed validation", http.StatusBadRequest).
				WithDetails(response.FromValidationResult(validationErr.Result).Errors)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	h.metrics.IncGenerated(string(quote.CoverageDetails.InsuranceType))
	h.metrics.ObserveGeneration(time.Since(start))
	c.JSON(http.StatusCreated, response.FromQuote(quote))
}

// ValidateQuoteRequest runs the validation pass without pricing.
//
// An invalid request is a normal outcome here, so the full report is returned
// with 200; only an unreadable (non-JSON) body is a client error.
//
// @Summary      Validate a quote request
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        payload  body      request.QuoteSubmission  true  "Candidate quote request"
// @Success      200      {object}  response.ValidationResultResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /quotes/validate [post]
func (h *QuoteHandler) ValidateQuoteRequest(c *gin.Context) {
	payload, err := c.GetRawData()
	if err != nil {
		c.JSON(errUnreadableQuoteBody.HTTPStatus, errUnreadableQuoteBody.ToHTTPError())
		return
	}

	result, err := h.usecase.ValidateRequest(payload)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if !result.IsValid {
		h.metrics.IncValidationFailure()
	}
	c.JSON(http.StatusOK, response.FromValidationResult(result))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMalformedQuotePayload):
		return errUnreadableQuoteBody
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
