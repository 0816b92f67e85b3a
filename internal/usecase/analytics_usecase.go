package usecase

import (
	"context"
	"sort"
	"time"

	"caca_precos/internal/usecase/interfaces"
)

const (
	defaultAnalyticsTopLimit = 5
	maxAnalyticsTopLimit     = 20
)

// StoreActivity is one row of the most-active-stores ranking.

type StoreActivity struct {
	StoreID          string
	Name             string
	SubmissionsCount int
}

// ProductActivity is one row of the most-scanned-products ranking.

type ProductActivity struct {
	ProductID  string
	Name       string
	Barcode    string
	ScansCount int
}

// AnalyticsSummary is the dashboard projection: catalog totals plus the
// top-N most active stores and most scanned products.

type AnalyticsSummary struct {
	TotalProducts       int
	TotalPrices         int
	MostActiveStores    []StoreActivity
	MostScannedProducts []ProductActivity
	GeneratedAt         time.Time
}

// IAnalyticsUseCase computes the analytics summary. The summary is a
// full-table aggregate recomputed on every call; it is a dashboard read, not
// a hot path.

type IAnalyticsUseCase interface {
	GetSummary(ctx context.Context, limit int) (AnalyticsSummary, error)
}

type AnalyticsUseCase struct {
	prices   interfaces.IPriceRepository
	products interfaces.IProductRepository
	stores   interfaces.IStoreRepository

	now func() time.Time
}

var _ IAnalyticsUseCase = (*AnalyticsUseCase)(nil)

func NewAnalyticsUseCase(
	prices interfaces.IPriceRepository,
	products interfaces.IProductRepository,
	stores interfaces.IStoreRepository,
) *AnalyticsUseCase {
	return &AnalyticsUseCase{
		prices:   prices,
		products: products,
		stores:   stores,
		now:      time.Now,
	}
}

// GetSummary builds the summary with at most limit rows per ranking. A
// non-positive limit falls back to the default; anything above the cap is
// clamped.
func (u *AnalyticsUseCase) GetSummary(ctx context.Context, limit int) (AnalyticsSummary, error) {
	if limit <= 0 {
		limit = defaultAnalyticsTopLimit
	}
	if limit > maxAnalyticsTopLimit {
		limit = maxAnalyticsTopLimit
	}

	totalProducts, err := u.products.Count(ctx)
	if err != nil {
		return AnalyticsSummary{}, err
	}
	counters, err := u.prices.CountSubmissions(ctx)
	if err != nil {
		return AnalyticsSummary{}, err
	}

	topStores := topCounts(counters.ByStore, limit)
	topProducts := topCounts(counters.ByProduct, limit)

	summary := AnalyticsSummary{
		TotalProducts:       totalProducts,
		TotalPrices:         counters.Total,
		MostActiveStores:    make([]StoreActivity, 0, len(topStores)),
		MostScannedProducts: make([]ProductActivity, 0, len(topProducts)),
		GeneratedAt:         u.now().UTC(),
	}

	for _, row := range topStores {
		activity := StoreActivity{StoreID: row.id, Name: "Unknown store", SubmissionsCount: row.count}
		store, serr := u.stores.GetByID(ctx, row.id)
		if serr != nil {
			return AnalyticsSummary{}, serr
		}
		if store.ID != "" {
			activity.Name = store.Name
		}
		summary.MostActiveStores = append(summary.MostActiveStores, activity)
	}

	for _, row := range topProducts {
		activity := ProductActivity{ProductID: row.id, Name: "Unknown product", Barcode: "N/A", ScansCount: row.count}
		product, perr := u.products.GetByID(ctx, row.id)
		if perr != nil {
			return AnalyticsSummary{}, perr
		}
		if product.ID != "" {
			activity.Name = product.Name
			if product.Barcode != "" {
				activity.Barcode = product.Barcode
			}
		}
		summary.MostScannedProducts = append(summary.MostScannedProducts, activity)
	}

	return summary, nil
}

type countRow struct {
	id    string
	count int
}

// topCounts ranks a counter map descending by count; equal counts order by id
// so the ranking is stable across calls.
func topCounts(counts map[string]int, limit int) []countRow {
	rows := make([]countRow, 0, len(counts))
	for id, count := range counts {
		rows = append(rows, countRow{id: id, count: count})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].count != rows[j].count {
			return rows[i].count > rows[j].count
		}
		return rows[i].id < rows[j].id
	})
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows
}
