package handlers

import (
	"net/http"
	"strconv"

	response "caca_precos/internal/adapter/http/dto/response"
	"caca_precos/internal/usecase"
	"caca_precos/pkg"

	"github.com/gin-gonic/gin"
)

// DeviceHandler serves the device registry listing with submission usage.

type DeviceHandler struct {
	usecase usecase.IDeviceRegistryUseCase
}

func NewDeviceHandler(uc usecase.IDeviceRegistryUseCase) *DeviceHandler {
	return &DeviceHandler{usecase: uc}
}

func (h *DeviceHandler) ListDevices(c *gin.Context) {
	limit := 0
	if v := c.Query("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		limit = parsed
	}

	devices, err := h.usecase.ListDevices(c.Request.Context(), limit)
	if err != nil {
		appErr := mapPriceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDeviceUsages(devices))
}
