package handlers

import (
	"errors"
	"net/http"

	request "autokorea/internal/adapter/http/dto/request"
	response "autokorea/internal/adapter/http/dto/response"
	"autokorea/internal/pricing"
	"autokorea/internal/usecase"
	"autokorea/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidCalculatePayload = pkg.NewDomainErrorSimple("INVALID_CALCULATE_INPUT", "Invalid calculation payload", http.StatusBadRequest)

type CalculatorHandler struct {
	usecase usecase.ICalculatorUseCase
}

func NewCalculatorHandler(uc usecase.ICalculatorUseCase) *CalculatorHandler {
	return &CalculatorHandler{usecase: uc}
}

// Calculate runs one landed-cost breakdown. The payload is never persisted;
// the response carries every intermediate so the client can show its work.
func (h *CalculatorHandler) Calculate(c *gin.Context) {
	var payload request.CalculateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCalculatePayload.HTTPStatus, errInvalidCalculatePayload.ToHTTPError())
		return
	}

	breakdown, err := h.usecase.Calculate(c.Request.Context(), payload.ToInput(), payload.Policy)
	if err != nil {
		appErr := mapCalculatorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBreakdown(breakdown))
}

func mapCalculatorError(err error) *pkg.AppError {
	var validationErr *pricing.ValidationError
	var configErr *pricing.ConfigError
	switch {
	case errors.As(err, &validationErr):
		return pkg.NewDomainErrorSimple("INVALID_CALCULATION_INPUT", validationErr.Error(), http.StatusBadRequest)
	case errors.As(err, &configErr):
		return pkg.NewDomainErrorSimple("SETTINGS_NOT_CONFIGURED", configErr.Error(), http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
