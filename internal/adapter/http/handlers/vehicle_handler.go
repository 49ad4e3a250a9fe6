package handlers

import (
	"errors"
	"net/http"

	request "autokorea/internal/adapter/http/dto/request"
	response "autokorea/internal/adapter/http/dto/response"
	"autokorea/internal/adapter/http/middleware"
	"autokorea/internal/domain/entities"
	"autokorea/internal/usecase"
	"autokorea/internal/usecase/interfaces"
	"autokorea/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidVehiclePayload = pkg.NewDomainErrorSimple("INVALID_VEHICLE_INPUT", "Invalid vehicle payload", http.StatusBadRequest)

// VehicleHandler handles HTTP requests for the vehicle pipeline.
type VehicleHandler struct {
	usecase usecase.IVehicleUseCase
}

func NewVehicleHandler(uc usecase.IVehicleUseCase) *VehicleHandler {
	return &VehicleHandler{usecase: uc}
}

func (h *VehicleHandler) Create(c *gin.Context) {
	var payload request.VehicleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidVehiclePayload.HTTPStatus, errInvalidVehiclePayload.ToHTTPError())
		return
	}

	vehicle, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapVehicleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromVehicle(vehicle))
}

func (h *VehicleHandler) GetByID(c *gin.Context) {
	vehicle, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapVehicleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromVehicle(vehicle))
}

func (h *VehicleHandler) List(c *gin.Context) {
	filter := interfaces.VehicleFilter{Manager: c.Query("manager")}
	if status := c.Query("status"); status != "" {
		filter.Status = entities.ParseVehicleStatus(status)
	}
	if limit, ok := parseQueryInt(c, "limit"); ok {
		filter.Limit = limit
	}

	vehicles, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		appErr := mapVehicleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromVehicles(vehicles))
}

func (h *VehicleHandler) Update(c *gin.Context) {
	var payload request.VehicleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidVehiclePayload.HTTPStatus, errInvalidVehiclePayload.ToHTTPError())
		return
	}

	v := payload.ToEntity()
	v.ID = c.Param("id")

	// The override flag only counts when the caller actually holds the
	// admin role; a staff token cannot escalate by setting it.
	override := payload.AdminOverride && middleware.IsAdmin(c)

	vehicle, err := h.usecase.Update(c.Request.Context(), v, override)
	if err != nil {
		appErr := mapVehicleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromVehicle(vehicle))
}

func (h *VehicleHandler) Sell(c *gin.Context) {
	var payload request.SellVehicleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidVehiclePayload.HTTPStatus, errInvalidVehiclePayload.ToHTTPError())
		return
	}

	vehicle, err := h.usecase.MarkSold(c.Request.Context(), c.Param("id"), payload.SellingPrice, payload.ResolveSoldDate())
	if err != nil {
		appErr := mapVehicleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromVehicle(vehicle))
}

func (h *VehicleHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapVehicleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapVehicleError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidVehicleID), errors.Is(err, usecase.ErrInvalidVehicle), errors.Is(err, usecase.ErrInvalidSellingPrice):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidStatusTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", "Status change does not follow the lifecycle order", http.StatusConflict)
	case errors.Is(err, usecase.ErrVehicleNotFound):
		return pkg.NewDomainErrorSimple("VEHICLE_NOT_FOUND", "Vehicle not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
