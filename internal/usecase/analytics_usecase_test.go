package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"caca_precos/internal/domain/entities"
	"caca_precos/internal/usecase/interfaces"
	mock_interfaces "caca_precos/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type analyticsMocks struct {
	prices   *mock_interfaces.MockIPriceRepository
	products *mock_interfaces.MockIProductRepository
	stores   *mock_interfaces.MockIStoreRepository
}

func newAnalyticsMocks(t *testing.T) (*AnalyticsUseCase, analyticsMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	m := analyticsMocks{
		prices:   mock_interfaces.NewMockIPriceRepository(ctrl),
		products: mock_interfaces.NewMockIProductRepository(ctrl),
		stores:   mock_interfaces.NewMockIStoreRepository(ctrl),
	}
	return NewAnalyticsUseCase(m.prices, m.products, m.stores), m
}

func TestAnalyticsUseCase_GetSummary(t *testing.T) {
	t.Run("ranks stores and products by submission count", func(t *testing.T) {
		uc, m := newAnalyticsMocks(t)
		generated := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		uc.now = func() time.Time { return generated }

		m.products.EXPECT().Count(gomock.Any()).Return(7, nil)
		m.prices.EXPECT().CountSubmissions(gomock.Any()).Return(interfaces.SubmissionCounters{
			Total:     10,
			ByStore:   map[string]int{"store-1": 6, "store-2": 4},
			ByProduct: map[string]int{"prod-1": 9, "prod-2": 1},
		}, nil)
		m.stores.EXPECT().GetByID(gomock.Any(), "store-1").Return(entities.Store{ID: "store-1", Name: "Mercado Central"}, nil)
		m.stores.EXPECT().GetByID(gomock.Any(), "store-2").Return(entities.Store{ID: "store-2", Name: "Atacadao"}, nil)
		m.products.EXPECT().GetByID(gomock.Any(), "prod-1").Return(entities.Product{ID: "prod-1", Name: "Arroz 5kg", Barcode: "789"}, nil)
		m.products.EXPECT().GetByID(gomock.Any(), "prod-2").Return(entities.Product{ID: "prod-2", Name: "Feijao 1kg", Barcode: "790"}, nil)

		out, err := uc.GetSummary(context.Background(), 5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.TotalProducts != 7 || out.TotalPrices != 10 {
			t.Fatalf("unexpected totals: %+v", out)
		}
		if len(out.MostActiveStores) != 2 || out.MostActiveStores[0].StoreID != "store-1" || out.MostActiveStores[0].SubmissionsCount != 6 {
			t.Fatalf("expected store-1 ranked first, got %+v", out.MostActiveStores)
		}
		if out.MostActiveStores[0].Name != "Mercado Central" {
			t.Fatalf("expected resolved store name, got %q", out.MostActiveStores[0].Name)
		}
		if len(out.MostScannedProducts) != 2 || out.MostScannedProducts[0].ProductID != "prod-1" || out.MostScannedProducts[0].ScansCount != 9 {
			t.Fatalf("expected prod-1 ranked first, got %+v", out.MostScannedProducts)
		}
		if out.MostScannedProducts[0].Barcode != "789" {
			t.Fatalf("expected resolved barcode, got %q", out.MostScannedProducts[0].Barcode)
		}
		if !out.GeneratedAt.Equal(generated) {
			t.Fatalf("expected generatedAt %v, got %v", generated, out.GeneratedAt)
		}
	})

	t.Run("falls back on removed stores and products", func(t *testing.T) {
		uc, m := newAnalyticsMocks(t)

		m.products.EXPECT().Count(gomock.Any()).Return(0, nil)
		m.prices.EXPECT().CountSubmissions(gomock.Any()).Return(interfaces.SubmissionCounters{
			Total:     2,
			ByStore:   map[string]int{"store-gone": 2},
			ByProduct: map[string]int{"prod-gone": 2},
		}, nil)
		m.stores.EXPECT().GetByID(gomock.Any(), "store-gone").Return(entities.Store{}, nil)
		m.products.EXPECT().GetByID(gomock.Any(), "prod-gone").Return(entities.Product{}, nil)

		out, err := uc.GetSummary(context.Background(), 5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.MostActiveStores[0].Name != "Unknown store" {
			t.Fatalf("expected store fallback name, got %q", out.MostActiveStores[0].Name)
		}
		if out.MostScannedProducts[0].Name != "Unknown product" || out.MostScannedProducts[0].Barcode != "N/A" {
			t.Fatalf("expected product fallbacks, got %+v", out.MostScannedProducts[0])
		}
	})

	t.Run("limit caps the rankings", func(t *testing.T) {
		uc, m := newAnalyticsMocks(t)

		m.products.EXPECT().Count(gomock.Any()).Return(3, nil)
		m.prices.EXPECT().CountSubmissions(gomock.Any()).Return(interfaces.SubmissionCounters{
			Total:     6,
			ByStore:   map[string]int{"store-1": 3, "store-2": 2, "store-3": 1},
			ByProduct: map[string]int{"prod-1": 6},
		}, nil)
		m.stores.EXPECT().GetByID(gomock.Any(), "store-1").Return(entities.Store{ID: "store-1", Name: "A"}, nil)
		m.products.EXPECT().GetByID(gomock.Any(), "prod-1").Return(entities.Product{ID: "prod-1", Name: "B"}, nil)

		out, err := uc.GetSummary(context.Background(), 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.MostActiveStores) != 1 || out.MostActiveStores[0].StoreID != "store-1" {
			t.Fatalf("expected only the top store, got %+v", out.MostActiveStores)
		}
	})

	t.Run("defaults and clamps the limit", func(t *testing.T) {
		counts := map[string]int{}
		for _, id := range []string{
			"s-01", "s-02", "s-03", "s-04", "s-05", "s-06", "s-07", "s-08",
			"s-09", "s-10", "s-11", "s-12", "s-13", "s-14", "s-15", "s-16",
			"s-17", "s-18", "s-19", "s-20", "s-21", "s-22",
		} {
			counts[id] = 1
		}

		t.Run("zero falls back to the default", func(t *testing.T) {
			uc, m := newAnalyticsMocks(t)
			m.products.EXPECT().Count(gomock.Any()).Return(0, nil)
			m.prices.EXPECT().CountSubmissions(gomock.Any()).Return(interfaces.SubmissionCounters{
				Total:   len(counts),
				ByStore: counts,
			}, nil)
			m.stores.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(entities.Store{}, nil).Times(defaultAnalyticsTopLimit)

			out, err := uc.GetSummary(context.Background(), 0)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(out.MostActiveStores) != defaultAnalyticsTopLimit {
				t.Fatalf("expected %d stores, got %d", defaultAnalyticsTopLimit, len(out.MostActiveStores))
			}
		})

		t.Run("oversized limit is clamped", func(t *testing.T) {
			uc, m := newAnalyticsMocks(t)
			m.products.EXPECT().Count(gomock.Any()).Return(0, nil)
			m.prices.EXPECT().CountSubmissions(gomock.Any()).Return(interfaces.SubmissionCounters{
				Total:   len(counts),
				ByStore: counts,
			}, nil)
			m.stores.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(entities.Store{}, nil).Times(maxAnalyticsTopLimit)

			out, err := uc.GetSummary(context.Background(), 100)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(out.MostActiveStores) != maxAnalyticsTopLimit {
				t.Fatalf("expected %d stores, got %d", maxAnalyticsTopLimit, len(out.MostActiveStores))
			}
		})
	})

	t.Run("repo error", func(t *testing.T) {
		uc, m := newAnalyticsMocks(t)

		m.products.EXPECT().Count(gomock.Any()).Return(0, errors.New("db"))

		if _, err := uc.GetSummary(context.Background(), 5); err == nil {
			t.Fatalf("expected error")
		}
	})
}
