package handlers

import (
	"errors"
	"net/http"

	request "autokorea/internal/adapter/http/dto/request"
	response "autokorea/internal/adapter/http/dto/response"
	"autokorea/internal/usecase"
	"autokorea/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidStaffPayload = pkg.NewDomainErrorSimple("INVALID_STAFF_INPUT", "Invalid staff payload", http.StatusBadRequest)

// StaffHandler handles HTTP requests for the employee roster.
type StaffHandler struct {
	usecase usecase.IStaffUseCase
}

func NewStaffHandler(uc usecase.IStaffUseCase) *StaffHandler {
	return &StaffHandler{usecase: uc}
}

func (h *StaffHandler) Create(c *gin.Context) {
	var payload request.CreateStaffRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidStaffPayload.HTTPStatus, errInvalidStaffPayload.ToHTTPError())
		return
	}

	staff, err := h.usecase.Create(c.Request.Context(), payload.ToEntity(), payload.Password)
	if err != nil {
		appErr := mapStaffError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromStaff(staff))
}

func (h *StaffHandler) GetByID(c *gin.Context) {
	staff, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapStaffError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromStaff(staff))
}

func (h *StaffHandler) List(c *gin.Context) {
	staff, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapStaffError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromStaffList(staff))
}

func (h *StaffHandler) Update(c *gin.Context) {
	var payload request.UpdateStaffRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidStaffPayload.HTTPStatus, errInvalidStaffPayload.ToHTTPError())
		return
	}

	staff, err := h.usecase.Update(c.Request.Context(), payload.ToEntity(c.Param("id")))
	if err != nil {
		appErr := mapStaffError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromStaff(staff))
}

func (h *StaffHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapStaffError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapStaffError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidStaffID), errors.Is(err, usecase.ErrInvalidStaff), errors.Is(err, usecase.ErrWeakStaffPassword):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDuplicatePassport):
		return pkg.NewDomainErrorSimple("DUPLICATE_PASSPORT", "Passport number already registered", http.StatusConflict)
	case errors.Is(err, usecase.ErrStaffNotFound):
		return pkg.NewDomainErrorSimple("STAFF_NOT_FOUND", "Staff member not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
