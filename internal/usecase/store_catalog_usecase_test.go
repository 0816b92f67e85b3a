package usecase

import (
	"context"
	"errors"
	"testing"

	"caca_precos/internal/domain/entities"
	mock_interfaces "caca_precos/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestStoreCatalogUseCase_ListStores(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		stores := mock_interfaces.NewMockIStoreRepository(ctrl)
		uc := NewStoreCatalogUseCase(stores)

		stores.EXPECT().List(gomock.Any()).Return([]entities.Store{{ID: "store-1", Name: "A"}}, nil)

		out, err := uc.ListStores(context.Background())
		if err != nil || len(out) != 1 || out[0].ID != "store-1" {
			t.Fatalf("unexpected result: %v err=%v", out, err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		stores := mock_interfaces.NewMockIStoreRepository(ctrl)
		uc := NewStoreCatalogUseCase(stores)

		stores.EXPECT().List(gomock.Any()).Return(nil, errors.New("db"))

		if _, err := uc.ListStores(context.Background()); err == nil {
			t.Fatalf("expected error")
		}
	})
}
