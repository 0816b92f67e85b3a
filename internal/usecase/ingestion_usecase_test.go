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

func validSubmission() PriceSubmission {
	return PriceSubmission{
		ProductID:  "prod-1",
		StoreID:    "store-1",
		PriceCents: 500,
		Currency:   "BRL",
	}
}

type ingestionMocks struct {
	prices   *mock_interfaces.MockIPriceRepository
	products *mock_interfaces.MockIProductRepository
	stores   *mock_interfaces.MockIStoreRepository
	devices  *mock_interfaces.MockIDeviceRepository
}

func newIngestionMocks(ctrl *gomock.Controller) (*IngestionUseCase, ingestionMocks) {
	m := ingestionMocks{
		prices:   mock_interfaces.NewMockIPriceRepository(ctrl),
		products: mock_interfaces.NewMockIProductRepository(ctrl),
		stores:   mock_interfaces.NewMockIStoreRepository(ctrl),
		devices:  mock_interfaces.NewMockIDeviceRepository(ctrl),
	}
	return NewIngestionUseCase(m.prices, m.products, m.stores, m.devices), m
}

func expectCatalogHit(m ingestionMocks) {
	m.products.EXPECT().GetByID(gomock.Any(), "prod-1").Return(entities.Product{ID: "prod-1"}, nil)
	m.stores.EXPECT().GetByID(gomock.Any(), "store-1").Return(entities.Store{ID: "store-1"}, nil)
}

func TestIngestionUseCase_SubmitPrice_Validation(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*PriceSubmission)
		wantErr error
	}{
		{"blank product id", func(s *PriceSubmission) { s.ProductID = "   " }, ErrInvalidProductID},
		{"blank store id", func(s *PriceSubmission) { s.StoreID = "" }, ErrInvalidStoreID},
		{"zero price", func(s *PriceSubmission) { s.PriceCents = 0 }, ErrInvalidPriceCents},
		{"negative price", func(s *PriceSubmission) { s.PriceCents = -10 }, ErrInvalidPriceCents},
		{"bad currency", func(s *PriceSubmission) { s.Currency = "reais" }, ErrInvalidCurrency},
		{"bad status", func(s *PriceSubmission) { s.Status = "archived" }, ErrInvalidPriceStatus},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := NewIngestionUseCase(nil, nil, nil, nil)
			sub := validSubmission()
			tc.mutate(&sub)
			_, err := uc.SubmitPrice(context.Background(), sub)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestIngestionUseCase_SubmitPrice_UnknownReferences(t *testing.T) {
	t.Run("product not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newIngestionMocks(ctrl)

		m.products.EXPECT().GetByID(gomock.Any(), "prod-1").Return(entities.Product{}, nil)

		_, err := uc.SubmitPrice(context.Background(), validSubmission())
		if !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})

	t.Run("store not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newIngestionMocks(ctrl)

		m.products.EXPECT().GetByID(gomock.Any(), "prod-1").Return(entities.Product{ID: "prod-1"}, nil)
		m.stores.EXPECT().GetByID(gomock.Any(), "store-1").Return(entities.Store{}, nil)

		_, err := uc.SubmitPrice(context.Background(), validSubmission())
		if !errors.Is(err, ErrStoreNotFound) {
			t.Fatalf("expected ErrStoreNotFound, got %v", err)
		}
	})
}

func TestIngestionUseCase_SubmitPrice_FirstPrice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newIngestionMocks(ctrl)

	expectCatalogHit(m)
	m.prices.EXPECT().ListByProductID(gomock.Any(), "prod-1").Return(nil, nil)
	m.prices.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Price{})).DoAndReturn(
		func(_ context.Context, p entities.Price) (entities.Price, error) {
			if p.ID == "" {
				t.Fatalf("expected generated id")
			}
			if p.Status != entities.PriceStatusActive {
				t.Fatalf("expected active status, got %s", p.Status)
			}
			if p.ConfidenceScore != 1.0 {
				t.Fatalf("expected confidence 1.0 with no history, got %v", p.ConfidenceScore)
			}
			if p.CapturedAt.IsZero() || p.CreatedAt.IsZero() {
				t.Fatalf("expected timestamps")
			}
			return p, nil
		})
	m.prices.EXPECT().ListByProductID(gomock.Any(), "prod-1").DoAndReturn(
		func(_ context.Context, _ string) ([]entities.Price, error) {
			return []entities.Price{{ID: "p-1", PriceCents: 500, Status: entities.PriceStatusActive}}, nil
		})

	res, err := uc.SubmitPrice(context.Background(), validSubmission())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Replayed {
		t.Fatalf("expected fresh ingestion")
	}
	if res.BestPrice.ID != "p-1" {
		t.Fatalf("expected best price p-1, got %s", res.BestPrice.ID)
	}
}

func TestIngestionUseCase_SubmitPrice_AutoFlag(t *testing.T) {
	history := []entities.Price{
		{ID: "p-old", PriceCents: 100, Status: entities.PriceStatusActive},
	}

	cases := []struct {
		name           string
		priceCents     int64
		wantStatus     entities.PriceStatus
		wantConfidence float64
	}{
		{"just above threshold is flagged", 151, entities.PriceStatusFlagged, 0.49},
		{"at threshold stays active", 150, entities.PriceStatusActive, 0.5},
		{"matching the mean is fully trusted", 100, entities.PriceStatusActive, 1.0},
		{"double the mean has zero confidence", 200, entities.PriceStatusFlagged, 0.0},
		{"mild deviation keeps proportional confidence", 130, entities.PriceStatusActive, 0.7},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc, m := newIngestionMocks(ctrl)

			expectCatalogHit(m)
			m.prices.EXPECT().ListByProductID(gomock.Any(), "prod-1").Return(history, nil)
			m.prices.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Price{})).DoAndReturn(
				func(_ context.Context, p entities.Price) (entities.Price, error) {
					if p.Status != tc.wantStatus {
						t.Fatalf("expected status %s, got %s", tc.wantStatus, p.Status)
					}
					if p.ConfidenceScore != tc.wantConfidence {
						t.Fatalf("expected confidence %v, got %v", tc.wantConfidence, p.ConfidenceScore)
					}
					return p, nil
				})
			m.prices.EXPECT().ListByProductID(gomock.Any(), "prod-1").Return(history, nil)

			sub := validSubmission()
			sub.PriceCents = tc.priceCents
			if _, err := uc.SubmitPrice(context.Background(), sub); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestIngestionUseCase_SubmitPrice_IdempotentReplay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newIngestionMocks(ctrl)

	existing := entities.Price{
		ID:             "p-1",
		ProductID:      "prod-1",
		StoreID:        "store-1",
		PriceCents:     500,
		Status:         entities.PriceStatusActive,
		IdempotencyKey: "key-1",
	}

	m.prices.EXPECT().GetByIdempotencyKey(gomock.Any(), "key-1").Return(existing, nil)
	m.prices.EXPECT().ListByProductID(gomock.Any(), "prod-1").Return([]entities.Price{existing}, nil)

	sub := validSubmission()
	sub.IdempotencyKey = "key-1"
	res, err := uc.SubmitPrice(context.Background(), sub)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Replayed {
		t.Fatalf("expected replay")
	}
	if res.CreatedPrice.ID != "p-1" || res.BestPrice.ID != "p-1" {
		t.Fatalf("expected existing price back, got %+v", res)
	}
}

func TestIngestionUseCase_SubmitPrice_ConflictConvergesOnWinner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newIngestionMocks(ctrl)

	winner := entities.Price{
		ID:             "p-winner",
		ProductID:      "prod-1",
		StoreID:        "store-1",
		PriceCents:     500,
		Status:         entities.PriceStatusActive,
		IdempotencyKey: "key-1",
	}

	// First key lookup sees nothing; the conditional write then loses to a
	// concurrent duplicate and the use case refetches the winning row.
	m.prices.EXPECT().GetByIdempotencyKey(gomock.Any(), "key-1").Return(entities.Price{}, nil)
	expectCatalogHit(m)
	m.prices.EXPECT().ListByProductID(gomock.Any(), "prod-1").Return(nil, nil)
	m.prices.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Price{}, interfaces.ErrIdempotencyKeyConflict)
	m.prices.EXPECT().GetByIdempotencyKey(gomock.Any(), "key-1").Return(winner, nil)
	m.prices.EXPECT().ListByProductID(gomock.Any(), "prod-1").Return([]entities.Price{winner}, nil)

	sub := validSubmission()
	sub.IdempotencyKey = "key-1"
	res, err := uc.SubmitPrice(context.Background(), sub)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Replayed {
		t.Fatalf("expected replay after conflict")
	}
	if res.CreatedPrice.ID != "p-winner" {
		t.Fatalf("expected winner row, got %s", res.CreatedPrice.ID)
	}
}

func TestIngestionUseCase_SubmitPrice_DeviceRegistration(t *testing.T) {
	t.Run("registers submitting device", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newIngestionMocks(ctrl)

		expectCatalogHit(m)
		m.prices.EXPECT().ListByProductID(gomock.Any(), "prod-1").Return(nil, nil)
		m.prices.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Price) (entities.Price, error) { return p, nil })
		m.devices.EXPECT().RegisterIfUnseen(gomock.Any(), "device-7").Return(nil)
		m.prices.EXPECT().ListByProductID(gomock.Any(), "prod-1").Return(
			[]entities.Price{{ID: "p-1", Status: entities.PriceStatusActive}}, nil)

		sub := validSubmission()
		sub.SubmittedBy = "device-7"
		if _, err := uc.SubmitPrice(context.Background(), sub); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("registration failure does not fail ingestion", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newIngestionMocks(ctrl)

		expectCatalogHit(m)
		m.prices.EXPECT().ListByProductID(gomock.Any(), "prod-1").Return(nil, nil)
		m.prices.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Price) (entities.Price, error) { return p, nil })
		m.devices.EXPECT().RegisterIfUnseen(gomock.Any(), "device-7").Return(errors.New("dynamo down"))
		m.prices.EXPECT().ListByProductID(gomock.Any(), "prod-1").Return(
			[]entities.Price{{ID: "p-1", Status: entities.PriceStatusActive}}, nil)

		sub := validSubmission()
		sub.SubmittedBy = "device-7"
		if _, err := uc.SubmitPrice(context.Background(), sub); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestIngestionUseCase_SubmitPrice_NoActivePricesAfterInsert(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newIngestionMocks(ctrl)

	// Pathological but possible: the freshly created row is flagged and no
	// other active price exists, so there is no best price to return.
	expectCatalogHit(m)
	m.prices.EXPECT().ListByProductID(gomock.Any(), "prod-1").Return(
		[]entities.Price{{ID: "p-old", PriceCents: 100, Status: entities.PriceStatusActive}}, nil)
	m.prices.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p entities.Price) (entities.Price, error) { return p, nil })
	m.prices.EXPECT().ListByProductID(gomock.Any(), "prod-1").Return(
		[]entities.Price{{ID: "p-new", PriceCents: 1000, Status: entities.PriceStatusFlagged}}, nil)

	sub := validSubmission()
	sub.PriceCents = 1000
	_, err := uc.SubmitPrice(context.Background(), sub)
	if !errors.Is(err, ErrNoActivePrices) {
		t.Fatalf("expected ErrNoActivePrices, got %v", err)
	}
}

func TestIngestionUseCase_SubmitPrice_CapturedAtDefaultsToNow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newIngestionMocks(ctrl)

	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return fixed }

	expectCatalogHit(m)
	m.prices.EXPECT().ListByProductID(gomock.Any(), "prod-1").Return(nil, nil)
	m.prices.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p entities.Price) (entities.Price, error) {
			if !p.CapturedAt.Equal(fixed) || !p.CreatedAt.Equal(fixed) {
				t.Fatalf("expected timestamps %v, got capturedAt=%v createdAt=%v", fixed, p.CapturedAt, p.CreatedAt)
			}
			return p, nil
		})
	m.prices.EXPECT().ListByProductID(gomock.Any(), "prod-1").Return(
		[]entities.Price{{ID: "p-1", Status: entities.PriceStatusActive}}, nil)

	if _, err := uc.SubmitPrice(context.Background(), validSubmission()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
