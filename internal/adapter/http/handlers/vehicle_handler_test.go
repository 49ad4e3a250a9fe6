package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"autokorea/internal/adapter/http/handlers/mocks"
	"autokorea/internal/domain/entities"
	"autokorea/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const vehicleBody = `{"brand":"Hyundai","model":"Sonata","year":2021,"vin":"KMHL14JA5MA123456","purchase_price":14000}`

func TestVehicleHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVehicleUseCase(ctrl)
		h := NewVehicleHandler(uc)

		r := gin.New()
		r.POST("/v1/vehicles", h.Create)

		req := httptest.NewRequest(http.MethodPost, "/v1/vehicles", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing required fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVehicleUseCase(ctrl)
		h := NewVehicleHandler(uc)

		r := gin.New()
		r.POST("/v1/vehicles", h.Create)

		req := httptest.NewRequest(http.MethodPost, "/v1/vehicles", bytes.NewBufferString(`{"brand":"Hyundai"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVehicleUseCase(ctrl)
		h := NewVehicleHandler(uc)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, v entities.Vehicle) (entities.Vehicle, error) {
				v.ID = "v-1"
				v.Status = entities.VehicleStatusInKorea
				return v, nil
			})

		r := gin.New()
		r.POST("/v1/vehicles", h.Create)

		req := httptest.NewRequest(http.MethodPost, "/v1/vehicles", bytes.NewBufferString(vehicleBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["id"] != "v-1" {
			t.Fatalf("expected id v-1, got %v", body["id"])
		}
	})
}

func TestVehicleHandler_Sell(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid transition maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVehicleUseCase(ctrl)
		h := NewVehicleHandler(uc)

		uc.EXPECT().MarkSold(gomock.Any(), "v-1", 16000.0, gomock.Any()).
			Return(entities.Vehicle{}, usecase.ErrInvalidStatusTransition)

		r := gin.New()
		r.POST("/v1/vehicles/:id/sell", h.Sell)

		req := httptest.NewRequest(http.MethodPost, "/v1/vehicles/v-1/sell", bytes.NewBufferString(`{"selling_price":16000}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVehicleUseCase(ctrl)
		h := NewVehicleHandler(uc)

		uc.EXPECT().MarkSold(gomock.Any(), "ghost", 16000.0, gomock.Any()).
			Return(entities.Vehicle{}, usecase.ErrVehicleNotFound)

		r := gin.New()
		r.POST("/v1/vehicles/:id/sell", h.Sell)

		req := httptest.NewRequest(http.MethodPost, "/v1/vehicles/ghost/sell", bytes.NewBufferString(`{"selling_price":16000}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestVehicleHandler_Update_OverrideRequiresAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIVehicleUseCase(ctrl)
	h := NewVehicleHandler(uc)

	// No claims in context: the requested override must be dropped.
	uc.EXPECT().Update(gomock.Any(), gomock.Any(), false).
		Return(entities.Vehicle{ID: "v-1"}, nil)

	r := gin.New()
	r.PUT("/v1/vehicles/:id", h.Update)

	body := `{"brand":"Hyundai","model":"Sonata","year":2021,"vin":"KMHL14JA5MA123456","status":"in_stock","admin_override":true}`
	req := httptest.NewRequest(http.MethodPut, "/v1/vehicles/v-1", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestVehicleHandler_InternalError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIVehicleUseCase(ctrl)
	h := NewVehicleHandler(uc)

	uc.EXPECT().GetByID(gomock.Any(), "v-1").Return(entities.Vehicle{}, errors.New("db down"))

	r := gin.New()
	r.GET("/v1/vehicles/:id", h.GetByID)

	req := httptest.NewRequest(http.MethodGet, "/v1/vehicles/v-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}
