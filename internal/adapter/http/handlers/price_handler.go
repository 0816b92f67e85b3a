package handlers

import (
	"errors"
	"net/http"

	request "caca_precos/internal/adapter/http/dto/request"
	response "caca_precos/internal/adapter/http/dto/response"
	"caca_precos/internal/usecase"
	"caca_precos/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPricePayload = pkg.NewDomainErrorSimple("INVALID_PRICE_INPUT", "Invalid price payload", http.StatusBadRequest)

// PriceHandler handles price submission and best-price reads.
//
// Submissions arrive from the capture client's sync coordinator and are
// retried at-least-once, so the same idempotency key may show up any number
// of times; replays answer 200 instead of 201 and never create a second row.

type PriceHandler struct {
	ingestion   usecase.IIngestionUseCase
	aggregation usecase.IAggregationUseCase
}

func NewPriceHandler(ingestion usecase.IIngestionUseCase, aggregation usecase.IAggregationUseCase) *PriceHandler {
	return &PriceHandler{ingestion: ingestion, aggregation: aggregation}
}

func (h *PriceHandler) SubmitPrice(c *gin.Context) {
	var payload request.PriceSubmissionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPricePayload.HTTPStatus, errInvalidPricePayload.ToHTTPError())
		return
	}

	sub, err := payload.ToSubmission()
	if err != nil {
		c.JSON(errInvalidPricePayload.HTTPStatus, errInvalidPricePayload.ToHTTPError())
		return
	}

	res, err := h.ingestion.SubmitPrice(c.Request.Context(), sub)
	if err != nil {
		appErr := mapPriceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	status := http.StatusCreated
	if res.Replayed {
		status = http.StatusOK
	}
	c.JSON(status, response.FromSubmissionResult(res))
}

func (h *PriceHandler) GetBestPrice(c *gin.Context) {
	productID := c.Param("productId")

	agg, err := h.aggregation.GetAggregation(c.Request.Context(), productID)
	if err != nil {
		appErr := mapPriceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAggregation(agg))
}

func mapPriceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProductID),
		errors.Is(err, usecase.ErrInvalidStoreID),
		errors.Is(err, usecase.ErrInvalidPriceCents),
		errors.Is(err, usecase.ErrInvalidCurrency),
		errors.Is(err, usecase.ErrInvalidPriceStatus),
		errors.Is(err, usecase.ErrInvalidPriceID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrStoreNotFound):
		return pkg.NewDomainErrorSimple("STORE_NOT_FOUND", "Store not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNoActivePrices):
		return pkg.NewDomainErrorSimple("NO_ACTIVE_PRICES", "No active prices for this product", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPriceNotFound):
		return pkg.NewDomainErrorSimple("PRICE_NOT_FOUND", "Price not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
