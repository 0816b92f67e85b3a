package handlers

import (
	"net/http"

	response "caca_precos/internal/adapter/http/dto/response"
	"caca_precos/internal/usecase"

	"github.com/gin-gonic/gin"
)

// StoreHandler serves the store listing the capture client pulls during its
// periodic cache refresh.

type StoreHandler struct {
	usecase usecase.IStoreCatalogUseCase
}

func NewStoreHandler(uc usecase.IStoreCatalogUseCase) *StoreHandler {
	return &StoreHandler{usecase: uc}
}

func (h *StoreHandler) ListStores(c *gin.Context) {
	stores, err := h.usecase.ListStores(c.Request.Context())
	if err != nil {
		appErr := mapPriceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromStores(stores))
}
