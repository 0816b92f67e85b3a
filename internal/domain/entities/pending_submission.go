package entities

import "time"

// PendingSubmission is a price capture that has not been confirmed by the
// server yet. It lives in the client's local queue table and is owned
// exclusively by the sync coordinator once enqueued.
//
// Storage model (client SQLite):
//   - PK: idempotency_key
//   - Ordered by created_at for FIFO draining.
//
// RetryCount and LastError are mutated only by the coordinator; re-enqueueing
// the same key must preserve them.

type PendingSubmission struct {
	IdempotencyKey string    `json:"idempotencyKey"`
	ProductID      string    `json:"productId"`
	StoreID        string    `json:"storeId"`
	PriceCents     int64     `json:"priceCents"`
	Currency       string    `json:"currency"`
	CapturedAt     time.Time `json:"capturedAt"`
	PhotoURL       string    `json:"photoUrl,omitempty"`
	SubmittedBy    string    `json:"submittedBy,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	RetryCount     int       `json:"retryCount"`
	LastError      string    `json:"lastError,omitempty"`
}
