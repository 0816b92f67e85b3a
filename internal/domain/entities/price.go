package entities

import "time"

// PriceStatus represents the moderation state of a submitted price.
//
// Domain notes:
//   - The ingestion service sets the initial status (active, or flagged when
//     the auto-flag heuristic trips).
//   - After creation only the moderation service may move a price between
//     active and flagged. There is no terminal state.

type PriceStatus string

const (
	PriceStatusActive  PriceStatus = "active"
	PriceStatusFlagged PriceStatus = "flagged"
)

// ValidPriceStatus reports whether s is one of the known statuses.
func ValidPriceStatus(s PriceStatus) bool {
	return s == PriceStatusActive || s == PriceStatusFlagged
}

// Price is a single observed grocery price persisted by the ingestion service.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (product_id-index): product_id
//   - GSI2 (status-index): status, sort key captured_at
//
// Prices are append-only history: they are never deleted, only re-statused.
// IdempotencyKey links a price back to the client submission that produced
// it; at most one price may exist per key (enforced by the repository).

type Price struct {
	ID              string      `json:"id"`
	ProductID       string      `json:"productId"`
	StoreID         string      `json:"storeId"`
	PriceCents      int64       `json:"priceCents"`
	Currency        string      `json:"currency"`
	CapturedAt      time.Time   `json:"capturedAt"`
	SubmittedBy     string      `json:"submittedBy,omitempty"`
	PhotoURL        string      `json:"photoUrl,omitempty"`
	Status          PriceStatus `json:"status"`
	ConfidenceScore float64     `json:"confidenceScore"`
	IdempotencyKey  string      `json:"idempotencyKey,omitempty"`
	CreatedAt       time.Time   `json:"createdAt"`
}
