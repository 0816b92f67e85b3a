package interfaces

import (
	"context"
	"errors"
	"time"

	"caca_precos/internal/domain/entities"
)

// ErrIdempotencyKeyConflict is returned by Create when another price already
// holds the submission's idempotency key. Callers resolve it by refetching
// the winning row, never by surfacing a failure.
var ErrIdempotencyKeyConflict = errors.New("idempotency key already ingested")

// IPriceRepository abstracts DynamoDB persistence for Price.
//
// Contract notes (kept consistent across the repositories):
//   - "Not found" is reported as a zero-value entity with a nil error.
//   - Create enforces at-most-one-price-per-idempotency-key; a conflicting
//     insert returns ErrIdempotencyKeyConflict so the caller can refetch.

type IPriceRepository interface {
	// Create inserts the price. When p.IdempotencyKey is set the insert is
	// conditional on the key being unseen; on a key conflict it returns
	// ErrIdempotencyKeyConflict and persists nothing.
	Create(ctx context.Context, p entities.Price) (entities.Price, error)
	GetByID(ctx context.Context, id string) (entities.Price, error)
	// GetByIdempotencyKey resolves the price created for a submission key,
	// or a zero value when the key has never been ingested.
	GetByIdempotencyKey(ctx context.Context, key string) (entities.Price, error)
	// ListByProductID returns every price for the product, any status, in
	// no particular order. Callers filter and sort.
	ListByProductID(ctx context.Context, productID string) ([]entities.Price, error)
	// ListByStatus returns up to limit prices in the given status, most
	// recently captured first.
	ListByStatus(ctx context.Context, status entities.PriceStatus, limit int) ([]entities.Price, error)
	// UpdateStatus sets the moderation status. Zero value when id is unknown.
	UpdateStatus(ctx context.Context, id string, status entities.PriceStatus) (entities.Price, error)
	// CountByDevice aggregates submission usage per submitting device.
	CountByDevice(ctx context.Context) (map[string]DeviceSubmissionStats, error)
	// CountSubmissions aggregates the whole price table into the per-store
	// and per-product totals behind the analytics summary.
	CountSubmissions(ctx context.Context) (SubmissionCounters, error)
}

// DeviceSubmissionStats is the per-device usage aggregate used by the device
// registry listing.

type DeviceSubmissionStats struct {
	SubmissionsCount int
	LastCapturedAt   time.Time
}

// SubmissionCounters holds submission totals grouped by store and by product,
// computed in a single pass over the price table.

type SubmissionCounters struct {
	Total     int
	ByStore   map[string]int
	ByProduct map[string]int
}
