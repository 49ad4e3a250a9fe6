package handlers

import (
	"net/http"

	response "autokorea/internal/adapter/http/dto/response"
	"autokorea/internal/finance"
	"autokorea/internal/usecase"
	"autokorea/pkg"

	"github.com/gin-gonic/gin"
)

type FinanceHandler struct {
	usecase usecase.IFinanceUseCase
}

func NewFinanceHandler(uc usecase.IFinanceUseCase) *FinanceHandler {
	return &FinanceHandler{usecase: uc}
}

func (h *FinanceHandler) Transactions(c *gin.Context) {
	result, err := h.usecase.Transactions(c.Request.Context())
	if err != nil {
		appErr := mapFinanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTransactions(result))
}

func (h *FinanceHandler) Monthly(c *gin.Context) {
	months, ok := parseQueryInt(c, "months")
	if !ok {
		months = finance.DefaultSeriesMonths
	}

	result, err := h.usecase.MonthlySeries(c.Request.Context(), months)
	if err != nil {
		appErr := mapFinanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMonthlySeries(result))
}

func (h *FinanceHandler) Totals(c *gin.Context) {
	totals, err := h.usecase.Totals(c.Request.Context())
	if err != nil {
		appErr := mapFinanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTotals(totals))
}

func mapFinanceError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}
