package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"caca_precos/internal/domain/entities"
	mock_interfaces "caca_precos/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestAggregationUseCase_BestOverall(t *testing.T) {
	t.Run("invalid product id", func(t *testing.T) {
		uc := NewAggregationUseCase(nil, nil)
		_, err := uc.BestOverall(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidProductID) {
			t.Fatalf("expected ErrInvalidProductID, got %v", err)
		}
	})

	t.Run("no active prices", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		prices := mock_interfaces.NewMockIPriceRepository(ctrl)
		uc := NewAggregationUseCase(prices, nil)

		prices.EXPECT().ListByProductID(gomock.Any(), "prod-1").Return(
			[]entities.Price{{ID: "p-1", Status: entities.PriceStatusFlagged}}, nil)

		_, err := uc.BestOverall(context.Background(), "prod-1")
		if !errors.Is(err, ErrNoActivePrices) {
			t.Fatalf("expected ErrNoActivePrices, got %v", err)
		}
	})

	t.Run("picks cheapest active", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		prices := mock_interfaces.NewMockIPriceRepository(ctrl)
		uc := NewAggregationUseCase(prices, nil)

		prices.EXPECT().ListByProductID(gomock.Any(), "prod-1").Return([]entities.Price{
			{ID: "p-1", PriceCents: 300, Status: entities.PriceStatusActive},
			{ID: "p-2", PriceCents: 250, Status: entities.PriceStatusActive},
			{ID: "p-3", PriceCents: 100, Status: entities.PriceStatusFlagged},
		}, nil)

		best, err := uc.BestOverall(context.Background(), "prod-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if best.ID != "p-2" {
			t.Fatalf("expected p-2, got %s", best.ID)
		}
	})

	t.Run("tie goes to most recent capture", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		prices := mock_interfaces.NewMockIPriceRepository(ctrl)
		uc := NewAggregationUseCase(prices, nil)

		older := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
		newer := older.Add(48 * time.Hour)
		prices.EXPECT().ListByProductID(gomock.Any(), "prod-1").Return([]entities.Price{
			{ID: "p-old", PriceCents: 250, CapturedAt: older, Status: entities.PriceStatusActive},
			{ID: "p-new", PriceCents: 250, CapturedAt: newer, Status: entities.PriceStatusActive},
		}, nil)

		best, err := uc.BestOverall(context.Background(), "prod-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if best.ID != "p-new" {
			t.Fatalf("expected most recent capture to win the tie, got %s", best.ID)
		}
	})
}

func TestAggregationUseCase_PriceHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	prices := mock_interfaces.NewMockIPriceRepository(ctrl)
	uc := NewAggregationUseCase(prices, nil)

	base := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	prices.EXPECT().ListByProductID(gomock.Any(), "prod-1").Return([]entities.Price{
		{ID: "p-1", CapturedAt: base, Status: entities.PriceStatusActive},
		{ID: "p-2", CapturedAt: base.Add(time.Hour), Status: entities.PriceStatusFlagged},
		{ID: "p-3", CapturedAt: base.Add(2 * time.Hour), Status: entities.PriceStatusActive},
	}, nil)

	history, err := uc.PriceHistory(context.Background(), "prod-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("expected 2 active prices, got %d", len(history))
	}
	if history[0].ID != "p-3" || history[1].ID != "p-1" {
		t.Fatalf("expected newest-first active history, got %s then %s", history[0].ID, history[1].ID)
	}
}

func TestAggregationUseCase_GetAggregation(t *testing.T) {
	t.Run("no active prices", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		prices := mock_interfaces.NewMockIPriceRepository(ctrl)
		uc := NewAggregationUseCase(prices, nil)

		prices.EXPECT().ListByProductID(gomock.Any(), "prod-1").Return(nil, nil)

		_, err := uc.GetAggregation(context.Background(), "prod-1")
		if !errors.Is(err, ErrNoActivePrices) {
			t.Fatalf("expected ErrNoActivePrices, got %v", err)
		}
	})

	t.Run("groups per store cheapest first", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		prices := mock_interfaces.NewMockIPriceRepository(ctrl)
		stores := mock_interfaces.NewMockIStoreRepository(ctrl)
		uc := NewAggregationUseCase(prices, stores)

		base := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
		prices.EXPECT().ListByProductID(gomock.Any(), "prod-1").Return([]entities.Price{
			{ID: "a1", StoreID: "store-a", PriceCents: 300, CapturedAt: base, Status: entities.PriceStatusActive},
			{ID: "a2", StoreID: "store-a", PriceCents: 280, CapturedAt: base.Add(time.Hour), Status: entities.PriceStatusActive},
			{ID: "b1", StoreID: "store-b", PriceCents: 250, CapturedAt: base, Status: entities.PriceStatusActive},
		}, nil)
		stores.EXPECT().GetByID(gomock.Any(), "store-a").Return(entities.Store{ID: "store-a", Name: "A"}, nil)
		stores.EXPECT().GetByID(gomock.Any(), "store-b").Return(entities.Store{ID: "store-b", Name: "B"}, nil)

		agg, err := uc.GetAggregation(context.Background(), "prod-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if agg.BestOverall.ID != "b1" {
			t.Fatalf("expected b1 overall, got %s", agg.BestOverall.ID)
		}
		if len(agg.GroupedByStore) != 2 {
			t.Fatalf("expected 2 store groups, got %d", len(agg.GroupedByStore))
		}
		if agg.GroupedByStore[0].BestPrice.ID != "b1" || agg.GroupedByStore[1].BestPrice.ID != "a2" {
			t.Fatalf("expected cheapest-first grouping, got %s then %s",
				agg.GroupedByStore[0].BestPrice.ID, agg.GroupedByStore[1].BestPrice.ID)
		}
		if len(agg.PriceHistory) != 3 {
			t.Fatalf("expected full history, got %d", len(agg.PriceHistory))
		}
	})

	t.Run("tolerates removed store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		prices := mock_interfaces.NewMockIPriceRepository(ctrl)
		stores := mock_interfaces.NewMockIStoreRepository(ctrl)
		uc := NewAggregationUseCase(prices, stores)

		prices.EXPECT().ListByProductID(gomock.Any(), "prod-1").Return([]entities.Price{
			{ID: "p-1", StoreID: "store-gone", PriceCents: 100, Status: entities.PriceStatusActive},
		}, nil)
		stores.EXPECT().GetByID(gomock.Any(), "store-gone").Return(entities.Store{}, nil)

		agg, err := uc.GetAggregation(context.Background(), "prod-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if agg.GroupedByStore[0].Store.ID != "store-gone" || agg.GroupedByStore[0].Store.Name != "" {
			t.Fatalf("expected bare-id store, got %+v", agg.GroupedByStore[0].Store)
		}
	})
}
