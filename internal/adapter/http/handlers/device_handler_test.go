package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"caca_precos/internal/adapter/http/handlers/mocks"
	"caca_precos/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestDeviceHandler_ListDevices(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("bad limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDeviceRegistryUseCase(ctrl)
		h := NewDeviceHandler(uc)
		r := gin.New()
		r.GET("/v1/devices", h.ListDevices)

		req := httptest.NewRequest(http.MethodGet, "/v1/devices?limit=many", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("lists devices with usage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDeviceRegistryUseCase(ctrl)
		h := NewDeviceHandler(uc)
		r := gin.New()
		r.GET("/v1/devices", h.ListDevices)

		lastUsed := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
		uc.EXPECT().ListDevices(gomock.Any(), 5).Return([]entities.DeviceUsage{
			{Device: entities.Device{ID: "device-1"}, SubmissionsCount: 3, LastUsedAt: &lastUsed},
			{Device: entities.Device{ID: "device-2"}},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/devices?limit=5", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp []struct {
			ID               string  `json:"id"`
			SubmissionsCount int     `json:"submissionsCount"`
			LastUsedAt       *string `json:"lastUsedAt"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if len(resp) != 2 {
			t.Fatalf("expected 2 devices, got %d", len(resp))
		}
		if resp[0].SubmissionsCount != 3 || resp[0].LastUsedAt == nil {
			t.Fatalf("expected usage on device-1, got %+v", resp[0])
		}
		if resp[1].SubmissionsCount != 0 || resp[1].LastUsedAt != nil {
			t.Fatalf("expected zero usage on device-2, got %+v", resp[1])
		}
	})
}
