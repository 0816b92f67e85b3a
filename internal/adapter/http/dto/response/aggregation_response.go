package response

import (
	"time"

	"caca_precos/internal/domain/entities"
	"caca_precos/internal/usecase"
)

type StoreResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	City string `json:"city,omitempty"`
}

func FromStore(s entities.Store) StoreResponse {
	return StoreResponse{ID: s.ID, Name: s.Name, City: s.City}
}

func FromStores(stores []entities.Store) []StoreResponse {
	out := make([]StoreResponse, 0, len(stores))
	for _, s := range stores {
		out = append(out, FromStore(s))
	}
	return out
}

type StoreBestPriceResponse struct {
	Store     StoreResponse `json:"store"`
	BestPrice PriceResponse `json:"bestPrice"`
}

// AggregationResponse is the GET /prices/best/:productId body.

type AggregationResponse struct {
	BestOverall    PriceResponse            `json:"bestOverall"`
	GroupedByStore []StoreBestPriceResponse `json:"groupedByStore"`
	PriceHistory   []PriceResponse          `json:"priceHistory"`
}

func FromAggregation(agg usecase.PriceAggregation) AggregationResponse {
	grouped := make([]StoreBestPriceResponse, 0, len(agg.GroupedByStore))
	for _, g := range agg.GroupedByStore {
		grouped = append(grouped, StoreBestPriceResponse{
			Store:     FromStore(g.Store),
			BestPrice: FromPrice(g.BestPrice),
		})
	}
	return AggregationResponse{
		BestOverall:    FromPrice(agg.BestOverall),
		GroupedByStore: grouped,
		PriceHistory:   FromPrices(agg.PriceHistory),
	}
}

type DeviceUsageResponse struct {
	ID               string     `json:"id"`
	CreatedAt        time.Time  `json:"createdAt"`
	SubmissionsCount int        `json:"submissionsCount"`
	LastUsedAt       *time.Time `json:"lastUsedAt,omitempty"`
}

func FromDeviceUsages(devices []entities.DeviceUsage) []DeviceUsageResponse {
	out := make([]DeviceUsageResponse, 0, len(devices))
	for _, d := range devices {
		out = append(out, DeviceUsageResponse{
			ID:               d.ID,
			CreatedAt:        d.CreatedAt,
			SubmissionsCount: d.SubmissionsCount,
			LastUsedAt:       d.LastUsedAt,
		})
	}
	return out
}
