package routes

import (
	"autokorea/internal/adapter/http/handlers"
	"autokorea/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathVehicles   = "/vehicles"
	PathStaff      = "/staff"
	PathSettings   = "/settings"
	PathCalculator = "/calculator"
	PathFinance    = "/finance"
	PathReports    = "/reports"
)

func addCRMRoutes(
	rg *gin.RouterGroup,
	vehicleHandler *handlers.VehicleHandler,
	staffHandler *handlers.StaffHandler,
	settingsHandler *handlers.SettingsHandler,
	calculatorHandler *handlers.CalculatorHandler,
	financeHandler *handlers.FinanceHandler,
	reportHandler *handlers.ReportHandler,
) {
	vehicles := rg.Group(PathVehicles)
	{
		vehicles.POST("", vehicleHandler.Create)
		vehicles.GET("", vehicleHandler.List)
		vehicles.GET("/:id", vehicleHandler.GetByID)
		vehicles.PUT("/:id", vehicleHandler.Update)
		vehicles.POST("/:id/sell", vehicleHandler.Sell)
		vehicles.DELETE("/:id", vehicleHandler.Delete)
	}

	staff := rg.Group(PathStaff)
	{
		staff.POST("", staffHandler.Create)
		staff.GET("", staffHandler.List)
		staff.GET("/:id", staffHandler.GetByID)
		staff.PUT("/:id", staffHandler.Update)
		staff.DELETE("/:id", middleware.RequireAdmin(), staffHandler.Delete)
	}

	settings := rg.Group(PathSettings)
	{
		settings.GET("/calculator", settingsHandler.Get)
		settings.PUT("/calculator", middleware.RequireAdmin(), settingsHandler.Save)
	}

	calculator := rg.Group(PathCalculator)
	{
		calculator.POST("/calculate", calculatorHandler.Calculate)
	}

	finance := rg.Group(PathFinance)
	{
		finance.GET("/transactions", financeHandler.Transactions)
		finance.GET("/monthly", financeHandler.Monthly)
		finance.GET("/totals", financeHandler.Totals)
	}

	reports := rg.Group(PathReports)
	{
		reports.GET("/summary", reportHandler.Summary)
	}
}
