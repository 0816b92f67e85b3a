package usecase

import (
	"context"
	"errors"
	"log"
	"math"
	"strings"
	"time"

	"caca_precos/internal/domain/entities"
	"caca_precos/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound    = errors.New("product not found")
	ErrStoreNotFound      = errors.New("store not found")
	ErrInvalidProductID   = errors.New("invalid product id")
	ErrInvalidStoreID     = errors.New("invalid store id")
	ErrInvalidPriceCents  = errors.New("invalid price cents")
	ErrInvalidCurrency    = errors.New("invalid currency code")
	ErrInvalidPriceStatus = errors.New("invalid price status")
)

// autoFlagDeviationThreshold is the fraction of the active-price mean beyond
// which a new submission is flagged instead of published.
const autoFlagDeviationThreshold = 0.5

// PriceSubmission is the ingestion input. CapturedAt defaults to now and
// Status to active when left zero. IdempotencyKey, SubmittedBy and PhotoURL
// are optional.

type PriceSubmission struct {
	ProductID      string
	StoreID        string
	PriceCents     int64
	Currency       string
	CapturedAt     time.Time
	SubmittedBy    string
	PhotoURL       string
	IdempotencyKey string
	Status         entities.PriceStatus
}

// SubmissionResult pairs the persisted (or replayed) price with the current
// best price for the product. Replayed is true when the submission's
// idempotency key had already been ingested and no new row was written.

type SubmissionResult struct {
	CreatedPrice entities.Price
	BestPrice    entities.Price
	Replayed     bool
}

// IIngestionUseCase encapsulates validated, idempotent price ingestion.

type IIngestionUseCase interface {
	SubmitPrice(ctx context.Context, sub PriceSubmission) (SubmissionResult, error)
}

type IngestionUseCase struct {
	prices   interfaces.IPriceRepository
	products interfaces.IProductRepository
	stores   interfaces.IStoreRepository
	devices  interfaces.IDeviceRepository
	now      func() time.Time
}

var _ IIngestionUseCase = (*IngestionUseCase)(nil)

func NewIngestionUseCase(
	prices interfaces.IPriceRepository,
	products interfaces.IProductRepository,
	stores interfaces.IStoreRepository,
	devices interfaces.IDeviceRepository,
) *IngestionUseCase {
	return &IngestionUseCase{
		prices:   prices,
		products: products,
		stores:   stores,
		devices:  devices,
		now:      time.Now,
	}
}

// SubmitPrice applies the ingestion contract:
//
//  1. A previously seen idempotency key short-circuits to the existing price.
//  2. The referenced product and store must exist.
//  3. The submission is scored against the mean of the product's active
//     prices and auto-flagged when it deviates by more than 50%.
//  4. The insert is optimistic; a concurrent duplicate loses the conditional
//     write and converges onto the winner's row via refetch.
//  5. The submitting device is registered on first sight.
func (u *IngestionUseCase) SubmitPrice(ctx context.Context, sub PriceSubmission) (SubmissionResult, error) {
	sub.ProductID = strings.TrimSpace(sub.ProductID)
	sub.StoreID = strings.TrimSpace(sub.StoreID)
	sub.Currency = strings.ToUpper(strings.TrimSpace(sub.Currency))
	sub.IdempotencyKey = strings.TrimSpace(sub.IdempotencyKey)
	sub.SubmittedBy = strings.TrimSpace(sub.SubmittedBy)

	if sub.ProductID == "" {
		return SubmissionResult{}, ErrInvalidProductID
	}
	if sub.StoreID == "" {
		return SubmissionResult{}, ErrInvalidStoreID
	}
	if sub.PriceCents <= 0 {
		return SubmissionResult{}, ErrInvalidPriceCents
	}
	if !isCurrencyCode(sub.Currency) {
		return SubmissionResult{}, ErrInvalidCurrency
	}
	if sub.Status == "" {
		sub.Status = entities.PriceStatusActive
	}
	if !entities.ValidPriceStatus(sub.Status) {
		return SubmissionResult{}, ErrInvalidPriceStatus
	}

	if sub.IdempotencyKey != "" {
		existing, err := u.prices.GetByIdempotencyKey(ctx, sub.IdempotencyKey)
		if err != nil {
			return SubmissionResult{}, err
		}
		if existing.ID != "" {
			log.Printf("[price][usecase] idempotent replay key=%s price_id=%s", sub.IdempotencyKey, existing.ID)
			return u.replayResult(ctx, existing)
		}
	}

	product, err := u.products.GetByID(ctx, sub.ProductID)
	if err != nil {
		return SubmissionResult{}, err
	}
	if product.ID == "" {
		return SubmissionResult{}, ErrProductNotFound
	}
	store, err := u.stores.GetByID(ctx, sub.StoreID)
	if err != nil {
		return SubmissionResult{}, err
	}
	if store.ID == "" {
		return SubmissionResult{}, ErrStoreNotFound
	}

	all, err := u.prices.ListByProductID(ctx, sub.ProductID)
	if err != nil {
		return SubmissionResult{}, err
	}

	// The mean runs over every currently active price, however old. A single
	// historical observation anchors it; a windowed mean is a candidate
	// future change but would alter auto-flag outcomes.
	mean, hasMean := activeMean(all)
	deviationRatio := 0.0
	if hasMean && mean > 0 {
		deviationRatio = math.Abs(float64(sub.PriceCents)-mean) / mean
	}
	autoFlagged := hasMean && deviationRatio > autoFlagDeviationThreshold
	confidence := round3(clamp01(1 - math.Min(1, deviationRatio)))

	finalStatus := sub.Status
	if autoFlagged {
		finalStatus = entities.PriceStatusFlagged
	}

	now := u.now().UTC()
	capturedAt := sub.CapturedAt
	if capturedAt.IsZero() {
		capturedAt = now
	}

	price := entities.Price{
		ID:              uuid.NewString(),
		ProductID:       sub.ProductID,
		StoreID:         sub.StoreID,
		PriceCents:      sub.PriceCents,
		Currency:        sub.Currency,
		CapturedAt:      capturedAt.UTC(),
		SubmittedBy:     sub.SubmittedBy,
		PhotoURL:        sub.PhotoURL,
		Status:          finalStatus,
		ConfidenceScore: confidence,
		IdempotencyKey:  sub.IdempotencyKey,
		CreatedAt:       now,
	}

	created, err := u.prices.Create(ctx, price)
	if err != nil {
		if errors.Is(err, interfaces.ErrIdempotencyKeyConflict) {
			// Lost the conditional write to a concurrent duplicate. Converge
			// on the winning row instead of failing the retry.
			log.Printf("[price][usecase] idempotency conflict key=%s; refetching", sub.IdempotencyKey)
			winner, ferr := u.prices.GetByIdempotencyKey(ctx, sub.IdempotencyKey)
			if ferr != nil {
				return SubmissionResult{}, ferr
			}
			if winner.ID == "" {
				return SubmissionResult{}, err
			}
			return u.replayResult(ctx, winner)
		}
		return SubmissionResult{}, err
	}
	log.Printf("[price][usecase] price ingested price_id=%s product_id=%s store_id=%s status=%s confidence=%.3f",
		created.ID, created.ProductID, created.StoreID, created.Status, created.ConfidenceScore)

	if sub.SubmittedBy != "" {
		if derr := u.devices.RegisterIfUnseen(ctx, sub.SubmittedBy); derr != nil {
			// Registration is a side effect; the price is already durable.
			log.Printf("[price][usecase] device registration failed device_id=%s err=%v", sub.SubmittedBy, derr)
		}
	}

	best, err := u.bestForProduct(ctx, created.ProductID)
	if err != nil {
		return SubmissionResult{}, err
	}
	return SubmissionResult{CreatedPrice: created, BestPrice: best}, nil
}

func (u *IngestionUseCase) replayResult(ctx context.Context, existing entities.Price) (SubmissionResult, error) {
	best, err := u.bestForProduct(ctx, existing.ProductID)
	if err != nil {
		return SubmissionResult{}, err
	}
	return SubmissionResult{CreatedPrice: existing, BestPrice: best, Replayed: true}, nil
}

func (u *IngestionUseCase) bestForProduct(ctx context.Context, productID string) (entities.Price, error) {
	all, err := u.prices.ListByProductID(ctx, productID)
	if err != nil {
		return entities.Price{}, err
	}
	best, ok := bestActivePrice(all)
	if !ok {
		return entities.Price{}, ErrNoActivePrices
	}
	return best, nil
}

// activeMean computes the mean priceCents over active prices. The second
// return is false when the product has no active prices, in which case the
// deviation is zero and auto-flag cannot trigger.
func activeMean(prices []entities.Price) (float64, bool) {
	sum := 0.0
	n := 0
	for _, p := range prices {
		if p.Status != entities.PriceStatusActive {
			continue
		}
		sum += float64(p.PriceCents)
		n++
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

func isCurrencyCode(s string) bool {
	if len(s) != 3 {
		return false
	}
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
