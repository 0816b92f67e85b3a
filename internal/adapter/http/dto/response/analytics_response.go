package response

import (
	"time"

	"caca_precos/internal/usecase"
)

type AnalyticsTotalsResponse struct {
	Products int `json:"products"`
	Prices   int `json:"prices"`
}

type StoreActivityResponse struct {
	StoreID          string `json:"storeId"`
	Name             string `json:"name"`
	SubmissionsCount int    `json:"submissionsCount"`
}

type ProductActivityResponse struct {
	ProductID  string `json:"productId"`
	Name       string `json:"name"`
	Barcode    string `json:"barcode"`
	ScansCount int    `json:"scansCount"`
}

// AnalyticsSummaryResponse is the GET /analytics/summary body.

type AnalyticsSummaryResponse struct {
	Totals              AnalyticsTotalsResponse   `json:"totals"`
	MostActiveStores    []StoreActivityResponse   `json:"mostActiveStores"`
	MostScannedProducts []ProductActivityResponse `json:"mostScannedProducts"`
	GeneratedAt         time.Time                 `json:"generatedAt"`
}

func FromAnalyticsSummary(s usecase.AnalyticsSummary) AnalyticsSummaryResponse {
	stores := make([]StoreActivityResponse, 0, len(s.MostActiveStores))
	for _, row := range s.MostActiveStores {
		stores = append(stores, StoreActivityResponse{
			StoreID:          row.StoreID,
			Name:             row.Name,
			SubmissionsCount: row.SubmissionsCount,
		})
	}
	products := make([]ProductActivityResponse, 0, len(s.MostScannedProducts))
	for _, row := range s.MostScannedProducts {
		products = append(products, ProductActivityResponse{
			ProductID:  row.ProductID,
			Name:       row.Name,
			Barcode:    row.Barcode,
			ScansCount: row.ScansCount,
		})
	}
	return AnalyticsSummaryResponse{
		Totals: AnalyticsTotalsResponse{
			Products: s.TotalProducts,
			Prices:   s.TotalPrices,
		},
		MostActiveStores:    stores,
		MostScannedProducts: products,
		GeneratedAt:         s.GeneratedAt,
	}
}
