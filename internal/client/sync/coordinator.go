package sync

import (
	"context"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"caca_precos/internal/adapter/http/dto/request"
	"caca_precos/internal/adapter/http/dto/response"
	"caca_precos/internal/client/api"
	"caca_precos/internal/domain/entities"
)

const (
	defaultBatchSize            = 50
	defaultStoreRefreshCooldown = 5 * time.Minute
)

// LocalStore is the durable client storage the coordinator drains and
// reconciles into.
type LocalStore interface {
	ListPending(ctx context.Context, limit int) ([]entities.PendingSubmission, error)
	CountPending(ctx context.Context) (int, error)
	Remove(ctx context.Context, idempotencyKey string) error
	MarkFailed(ctx context.Context, idempotencyKey, reason string) error
	UpsertPrice(ctx context.Context, p entities.Price) error
	ReplaceStores(ctx context.Context, stores []entities.Store) error
}

// APIClient is the server gateway used during a drain.
type APIClient interface {
	SubmitPrice(ctx context.Context, req request.PriceSubmissionRequest) (response.SubmissionResponse, error)
	ListStores(ctx context.Context) ([]response.StoreResponse, error)
}

// Result summarizes one sync pass.
type Result struct {
	Synced    int
	Dropped   int
	Failed    int
	Remaining int
	Skipped   bool
}

// Coordinator drains the pending submission queue against the server. All
// triggers (startup, ticker, manual) funnel into Sync, which is single-flight:
// overlapping calls return immediately with Skipped set instead of producing
// a concurrent drain.
type Coordinator struct {
	store LocalStore
	api   APIClient

	now                  func() time.Time
	batchSize            int
	storeRefreshCooldown time.Duration

	draining atomic.Bool

	mu               sync.Mutex
	lastStoreRefresh time.Time
}

func NewCoordinator(store LocalStore, apiClient APIClient) *Coordinator {
	return &Coordinator{
		store:                store,
		api:                  apiClient,
		now:                  time.Now,
		batchSize:            defaultBatchSize,
		storeRefreshCooldown: defaultStoreRefreshCooldown,
	}
}

// SetStoreRefreshCooldown overrides the default 5 minute refresh window.
func (c *Coordinator) SetStoreRefreshCooldown(d time.Duration) {
	if d > 0 {
		c.storeRefreshCooldown = d
	}
}

// Sync performs one drain pass: refresh the store cache (rate limited), then
// submit queued captures oldest first. Per-entry outcomes:
//   - success: reconcile the returned prices into the cache, remove the entry
//   - deterministic rejection (non-5xx status): remove the entry, it can
//     never succeed
//   - transient failure: record it and leave the entry for the next pass
//
// A transient failure does not stop the drain; later entries still get their
// attempt so one unreachable submission cannot wedge the queue.
func (c *Coordinator) Sync(ctx context.Context) (Result, error) {
	if !c.draining.CompareAndSwap(false, true) {
		remaining, err := c.store.CountPending(ctx)
		if err != nil {
			return Result{Skipped: true}, err
		}
		return Result{Skipped: true, Remaining: remaining}, nil
	}
	defer c.draining.Store(false)

	c.maybeRefreshStores(ctx)

	pending, err := c.store.ListPending(ctx, c.batchSize)
	if err != nil {
		return Result{}, err
	}

	var res Result
	for _, sub := range pending {
		switch err := c.submitOne(ctx, sub); {
		case err == nil:
			res.Synced++
		case !api.IsRetriable(err):
			log.Printf("[sync][coordinator] dropping submission %s after rejection: %v", sub.IdempotencyKey, err)
			if rmErr := c.store.Remove(ctx, sub.IdempotencyKey); rmErr != nil {
				return res, rmErr
			}
			res.Dropped++
		default:
			log.Printf("[sync][coordinator] submission %s failed (attempt %d): %v", sub.IdempotencyKey, sub.RetryCount+1, err)
			if markErr := c.store.MarkFailed(ctx, sub.IdempotencyKey, err.Error()); markErr != nil {
				return res, markErr
			}
			res.Failed++
		}
	}

	res.Remaining, err = c.store.CountPending(ctx)
	return res, err
}

func (c *Coordinator) submitOne(ctx context.Context, sub entities.PendingSubmission) error {
	resp, err := c.api.SubmitPrice(ctx, request.PriceSubmissionRequest{
		ProductID:      sub.ProductID,
		StoreID:        sub.StoreID,
		PriceCents:     sub.PriceCents,
		Currency:       sub.Currency,
		CapturedAt:     sub.CapturedAt.UTC().Format(time.RFC3339),
		SubmittedBy:    sub.SubmittedBy,
		PhotoURL:       sub.PhotoURL,
		IdempotencyKey: sub.IdempotencyKey,
	})
	if err != nil {
		return err
	}

	if err := c.store.UpsertPrice(ctx, priceFromResponse(resp.CreatedPrice)); err != nil {
		return err
	}
	if resp.BestPrice.ID != resp.CreatedPrice.ID {
		if err := c.store.UpsertPrice(ctx, priceFromResponse(resp.BestPrice)); err != nil {
			return err
		}
	}
	return c.store.Remove(ctx, sub.IdempotencyKey)
}

// maybeRefreshStores refreshes the local store cache at most once per
// cooldown window. Failures are logged, not propagated: a stale store list
// must never block the price drain.
func (c *Coordinator) maybeRefreshStores(ctx context.Context) {
	c.mu.Lock()
	now := c.now()
	if !c.lastStoreRefresh.IsZero() && now.Sub(c.lastStoreRefresh) < c.storeRefreshCooldown {
		c.mu.Unlock()
		return
	}
	c.lastStoreRefresh = now
	c.mu.Unlock()

	stores, err := c.api.ListStores(ctx)
	if err != nil {
		log.Printf("[sync][coordinator] store refresh failed: %v", err)
		return
	}
	if err := c.store.ReplaceStores(ctx, storesFromResponses(stores)); err != nil {
		log.Printf("[sync][coordinator] store cache write failed: %v", err)
	}
}

func priceFromResponse(p response.PriceResponse) entities.Price {
	return entities.Price{
		ID:              p.ID,
		ProductID:       p.ProductID,
		StoreID:         p.StoreID,
		PriceCents:      p.PriceCents,
		Currency:        p.Currency,
		CapturedAt:      p.CapturedAt,
		SubmittedBy:     p.SubmittedBy,
		PhotoURL:        p.PhotoURL,
		Status:          entities.PriceStatus(p.Status),
		ConfidenceScore: p.ConfidenceScore,
		IdempotencyKey:  p.IdempotencyKey,
		CreatedAt:       p.CreatedAt,
	}
}

func storesFromResponses(in []response.StoreResponse) []entities.Store {
	out := make([]entities.Store, 0, len(in))
	for _, s := range in {
		out = append(out, entities.Store{ID: s.ID, Name: s.Name, City: s.City})
	}
	return out
}
