package handlers

import (
	"net/http"
	"strconv"

	response "caca_precos/internal/adapter/http/dto/response"
	"caca_precos/internal/usecase"
	"caca_precos/pkg"

	"github.com/gin-gonic/gin"
)

// AnalyticsHandler serves the dashboard summary.

type AnalyticsHandler struct {
	usecase usecase.IAnalyticsUseCase
}

func NewAnalyticsHandler(uc usecase.IAnalyticsUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{usecase: uc}
}

func (h *AnalyticsHandler) GetSummary(c *gin.Context) {
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

	summary, err := h.usecase.GetSummary(c.Request.Context(), limit)
	if err != nil {
		appErr := mapPriceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAnalyticsSummary(summary))
}
