package response

import (
	"time"

	"caca_precos/internal/domain/entities"
	"caca_precos/internal/usecase"
)

type PriceResponse struct {
	ID              string    `json:"id"`
	ProductID       string    `json:"productId"`
	StoreID         string    `json:"storeId"`
	PriceCents      int64     `json:"priceCents"`
	Currency        string    `json:"currency"`
	CapturedAt      time.Time `json:"capturedAt"`
	SubmittedBy     string    `json:"submittedBy,omitempty"`
	PhotoURL        string    `json:"photoUrl,omitempty"`
	Status          string    `json:"status"`
	ConfidenceScore float64   `json:"confidenceScore"`
	IdempotencyKey  string    `json:"idempotencyKey,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

func FromPrice(p entities.Price) PriceResponse {
	return PriceResponse{
		ID:              p.ID,
		ProductID:       p.ProductID,
		StoreID:         p.StoreID,
		PriceCents:      p.PriceCents,
		Currency:        p.Currency,
		CapturedAt:      p.CapturedAt,
		SubmittedBy:     p.SubmittedBy,
		PhotoURL:        p.PhotoURL,
		Status:          string(p.Status),
		ConfidenceScore: p.ConfidenceScore,
		IdempotencyKey:  p.IdempotencyKey,
		CreatedAt:       p.CreatedAt,
	}
}

func FromPrices(prices []entities.Price) []PriceResponse {
	out := make([]PriceResponse, 0, len(prices))
	for _, p := range prices {
		out = append(out, FromPrice(p))
	}
	return out
}

// SubmissionResponse is the POST /prices body: the persisted (or replayed)
// price plus the product's current best price.

type SubmissionResponse struct {
	CreatedPrice PriceResponse `json:"createdPrice"`
	BestPrice    PriceResponse `json:"bestPrice"`
}

func FromSubmissionResult(res usecase.SubmissionResult) SubmissionResponse {
	return SubmissionResponse{
		CreatedPrice: FromPrice(res.CreatedPrice),
		BestPrice:    FromPrice(res.BestPrice),
	}
}
