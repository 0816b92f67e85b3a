package request

import (
	"errors"
	"strings"
	"time"

	"caca_precos/internal/domain/entities"
	"caca_precos/internal/usecase"
)

var ErrInvalidCapturedAt = errors.New("invalid capturedAt timestamp")

// PriceSubmissionRequest is the POST /prices payload. It matches the wire
// format produced by the capture client's pending queue: capturedAt is an
// RFC3339 string, idempotencyKey is caller-defined and globally unique per
// logical submission.

type PriceSubmissionRequest struct {
	ProductID      string `json:"productId" binding:"required"`
	StoreID        string `json:"storeId" binding:"required"`
	PriceCents     int64  `json:"priceCents" binding:"required"`
	Currency       string `json:"currency" binding:"required"`
	CapturedAt     string `json:"capturedAt"`
	SubmittedBy    string `json:"submittedBy"`
	PhotoURL       string `json:"photoUrl"`
	IdempotencyKey string `json:"idempotencyKey"`
	Status         string `json:"status"`
}

// ToSubmission translates the wire payload into the ingestion command.
func (r PriceSubmissionRequest) ToSubmission() (usecase.PriceSubmission, error) {
	sub := usecase.PriceSubmission{
		ProductID:      r.ProductID,
		StoreID:        r.StoreID,
		PriceCents:     r.PriceCents,
		Currency:       r.Currency,
		SubmittedBy:    r.SubmittedBy,
		PhotoURL:       strings.TrimSpace(r.PhotoURL),
		IdempotencyKey: r.IdempotencyKey,
		Status:         entities.PriceStatus(strings.TrimSpace(r.Status)),
	}

	if v := strings.TrimSpace(r.CapturedAt); v != "" {
		capturedAt, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return usecase.PriceSubmission{}, ErrInvalidCapturedAt
		}
		sub.CapturedAt = capturedAt
	}
	return sub, nil
}
