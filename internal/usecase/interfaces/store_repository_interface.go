package interfaces

import (
	"context"

	"caca_precos/internal/domain/entities"
)

// IStoreRepository abstracts DynamoDB persistence for Store.
//
// List exists because the capture client refreshes its local store cache
// during sync; store administration is not part of this service.

type IStoreRepository interface {
	GetByID(ctx context.Context, id string) (entities.Store, error)
	List(ctx context.Context) ([]entities.Store, error)
}
