package handlers

import (
	"net/http"

	response "autokorea/internal/adapter/http/dto/response"
	"autokorea/internal/finance"
	"autokorea/internal/usecase"
	"autokorea/internal/usecase/interfaces"
	"autokorea/pkg"

	"github.com/gin-gonic/gin"
)

// ReportHandler serves the one-shot summary behind the reports screen. It is
// a read-only composition of the inventory and the financial projections.
type ReportHandler struct {
	vehicles usecase.IVehicleUseCase
	finance  usecase.IFinanceUseCase
}

func NewReportHandler(vehicles usecase.IVehicleUseCase, financeUC usecase.IFinanceUseCase) *ReportHandler {
	return &ReportHandler{vehicles: vehicles, finance: financeUC}
}

func (h *ReportHandler) Summary(c *gin.Context) {
	ctx := c.Request.Context()

	vehicles, err := h.vehicles.List(ctx, interfaces.VehicleFilter{})
	if err != nil {
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	totals, err := h.finance.Totals(ctx)
	if err != nil {
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	series, err := h.finance.MonthlySeries(ctx, finance.DefaultSeriesMonths)
	if err != nil {
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.ReportSummaryResponse{
		TotalVehicles: len(vehicles),
		ByStatus:      response.CountByStatus(vehicles),
		Totals:        response.FromTotals(totals),
		MonthlySeries: response.FromMonthlySeries(series),
	})
}

func mapReportError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}
