package handlers

import (
	"net/http"
	"strconv"

	request "caca_precos/internal/adapter/http/dto/request"
	response "caca_precos/internal/adapter/http/dto/response"
	"caca_precos/internal/domain/entities"
	"caca_precos/internal/usecase"
	"caca_precos/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidModerationPayload = pkg.NewDomainErrorSimple("INVALID_MODERATION_INPUT", "Invalid moderation payload", http.StatusBadRequest)

// ModerationHandler handles explicit human status transitions and the
// review-queue listing.

type ModerationHandler struct {
	usecase usecase.IModerationUseCase
}

func NewModerationHandler(uc usecase.IModerationUseCase) *ModerationHandler {
	return &ModerationHandler{usecase: uc}
}

func (h *ModerationHandler) ModeratePrice(c *gin.Context) {
	var payload request.ModerationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidModerationPayload.HTTPStatus, errInvalidModerationPayload.ToHTTPError())
		return
	}

	price, err := h.usecase.SetStatus(c.Request.Context(), c.Param("id"), entities.PriceStatus(payload.Status))
	if err != nil {
		appErr := mapPriceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPrice(price))
}

func (h *ModerationHandler) ListQueue(c *gin.Context) {
	limit := 0
	if v := c.Query("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(errInvalidModerationPayload.HTTPStatus, errInvalidModerationPayload.ToHTTPError())
			return
		}
		limit = parsed
	}

	prices, err := h.usecase.ListQueue(c.Request.Context(), entities.PriceStatus(c.Query("status")), limit)
	if err != nil {
		appErr := mapPriceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPrices(prices))
}
