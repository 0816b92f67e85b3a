package usecase

import (
	"context"

	"caca_precos/internal/domain/entities"
	"caca_precos/internal/usecase/interfaces"
)

// IStoreCatalogUseCase exposes the store listing consumed by the capture
// client's local cache refresh. Store administration is out of scope here.

type IStoreCatalogUseCase interface {
	ListStores(ctx context.Context) ([]entities.Store, error)
}

type StoreCatalogUseCase struct {
	stores interfaces.IStoreRepository
}

var _ IStoreCatalogUseCase = (*StoreCatalogUseCase)(nil)

func NewStoreCatalogUseCase(stores interfaces.IStoreRepository) *StoreCatalogUseCase {
	return &StoreCatalogUseCase{stores: stores}
}

func (u *StoreCatalogUseCase) ListStores(ctx context.Context) ([]entities.Store, error) {
	return u.stores.List(ctx)
}
