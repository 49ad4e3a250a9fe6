package routes

import (
	"strconv"

	_ "autokorea/docs" // This will be auto-generated
	"autokorea/internal/adapter/http/handlers"
	"autokorea/internal/adapter/http/middleware"
	repository2 "autokorea/internal/adapter/persistence/repository"
	infraauth "autokorea/internal/infrastructure/auth"
	"autokorea/internal/infrastructure/database"
	"autokorea/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	setMiddlewares(log)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(log)

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(log *logrus.Logger) {
	ddb := database.ConnectDynamoDB()

	vehicleRepo := repository2.NewVehicleDynamoRepository(ddb)
	staffRepo := repository2.NewStaffDynamoRepository(ddb)
	settingsRepo := repository2.NewSettingsDynamoRepository(ddb)

	tokenService := infraauth.NewTokenService()

	vehicleUseCase := usecase.NewVehicleUseCase(vehicleRepo, log)
	staffUseCase := usecase.NewStaffUseCase(staffRepo)
	settingsUseCase := usecase.NewSettingsUseCase(settingsRepo)
	calculatorUseCase := usecase.NewCalculatorUseCase(settingsRepo)
	financeUseCase := usecase.NewFinanceUseCase(vehicleRepo)
	authUseCase := usecase.NewAuthUseCase(staffRepo, tokenService, log)

	vehicleHandler := handlers.NewVehicleHandler(vehicleUseCase)
	staffHandler := handlers.NewStaffHandler(staffUseCase)
	settingsHandler := handlers.NewSettingsHandler(settingsUseCase)
	calculatorHandler := handlers.NewCalculatorHandler(calculatorUseCase)
	financeHandler := handlers.NewFinanceHandler(financeUseCase)
	authHandler := handlers.NewAuthHandler(authUseCase)
	reportHandler := handlers.NewReportHandler(vehicleUseCase, financeUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	v1.POST("/auth/login", authHandler.Login)

	// Everything below requires a session token.
	authed := v1.Group("", middleware.RequireAuth(tokenService))
	addCRMRoutes(authed, vehicleHandler, staffHandler, settingsHandler, calculatorHandler, financeHandler, reportHandler)
}

func setMiddlewares(log *logrus.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Errorf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
