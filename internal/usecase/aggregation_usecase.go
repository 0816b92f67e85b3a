package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"

	"caca_precos/internal/domain/entities"
	"caca_precos/internal/usecase/interfaces"
)

var ErrNoActivePrices = errors.New("no active prices for product")

// StoreBestPrice is one row of the per-store grouping: the store plus its
// representative (lowest, tie-broken most recent) active price.

type StoreBestPrice struct {
	Store     entities.Store
	BestPrice entities.Price
}

// PriceAggregation is the read-side projection for a product: the overall
// best price, the per-store best prices ordered cheapest first, and the full
// active history newest first.

type PriceAggregation struct {
	BestOverall    entities.Price
	GroupedByStore []StoreBestPrice
	PriceHistory   []entities.Price
}

// IAggregationUseCase computes best-price projections over persisted prices.
// Results are recomputed on every call; responses are snapshots and may be
// superseded by a concurrent write immediately after return.

type IAggregationUseCase interface {
	BestOverall(ctx context.Context, productID string) (entities.Price, error)
	PriceHistory(ctx context.Context, productID string) ([]entities.Price, error)
	GetAggregation(ctx context.Context, productID string) (PriceAggregation, error)
}

type AggregationUseCase struct {
	prices interfaces.IPriceRepository
	stores interfaces.IStoreRepository
}

var _ IAggregationUseCase = (*AggregationUseCase)(nil)

func NewAggregationUseCase(prices interfaces.IPriceRepository, stores interfaces.IStoreRepository) *AggregationUseCase {
	return &AggregationUseCase{prices: prices, stores: stores}
}

// BestOverall returns the minimum active price for the product; a tie on
// cents goes to the most recently captured observation.
func (u *AggregationUseCase) BestOverall(ctx context.Context, productID string) (entities.Price, error) {
	history, err := u.PriceHistory(ctx, productID)
	if err != nil {
		return entities.Price{}, err
	}
	best, ok := bestActivePrice(history)
	if !ok {
		return entities.Price{}, ErrNoActivePrices
	}
	return best, nil
}

// PriceHistory returns the product's active prices ordered by capturedAt
// descending. Pagination, if any, is a caller concern.
func (u *AggregationUseCase) PriceHistory(ctx context.Context, productID string) ([]entities.Price, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return nil, ErrInvalidProductID
	}

	all, err := u.prices.ListByProductID(ctx, productID)
	if err != nil {
		return nil, err
	}

	history := make([]entities.Price, 0, len(all))
	for _, p := range all {
		if p.Status == entities.PriceStatusActive {
			history = append(history, p)
		}
	}
	sort.SliceStable(history, func(i, j int) bool {
		return history[i].CapturedAt.After(history[j].CapturedAt)
	})
	return history, nil
}

// GetAggregation computes the full projection in one pass over the history.
func (u *AggregationUseCase) GetAggregation(ctx context.Context, productID string) (PriceAggregation, error) {
	history, err := u.PriceHistory(ctx, productID)
	if err != nil {
		return PriceAggregation{}, err
	}
	if len(history) == 0 {
		return PriceAggregation{}, ErrNoActivePrices
	}

	bestOverall, _ := bestActivePrice(history)

	// Per-store representative: same rule as bestOverall, applied per store.
	perStore := make(map[string]entities.Price)
	for _, p := range history {
		current, ok := perStore[p.StoreID]
		if !ok || betterPrice(p, current) {
			perStore[p.StoreID] = p
		}
	}

	grouped := make([]StoreBestPrice, 0, len(perStore))
	for storeID, p := range perStore {
		store, serr := u.stores.GetByID(ctx, storeID)
		if serr != nil {
			return PriceAggregation{}, serr
		}
		if store.ID == "" {
			// Price rows always reference a store that existed at ingestion
			// time; tolerate a since-removed store with a bare id.
			store = entities.Store{ID: storeID}
		}
		grouped = append(grouped, StoreBestPrice{Store: store, BestPrice: p})
	}
	sort.SliceStable(grouped, func(i, j int) bool {
		return grouped[i].BestPrice.PriceCents < grouped[j].BestPrice.PriceCents
	})

	return PriceAggregation{
		BestOverall:    bestOverall,
		GroupedByStore: grouped,
		PriceHistory:   history,
	}, nil
}

// bestActivePrice picks the lowest active price, preferring the most recent
// capture on equal cents. The second return is false when no active price
// exists.
func bestActivePrice(prices []entities.Price) (entities.Price, bool) {
	var best entities.Price
	found := false
	for _, p := range prices {
		if p.Status != entities.PriceStatusActive {
			continue
		}
		if !found || betterPrice(p, best) {
			best = p
			found = true
		}
	}
	return best, found
}

func betterPrice(candidate, current entities.Price) bool {
	if candidate.PriceCents != current.PriceCents {
		return candidate.PriceCents < current.PriceCents
	}
	return candidate.CapturedAt.After(current.CapturedAt)
}
