package interfaces

import (
	"context"

	"caca_precos/internal/domain/entities"
)

// IProductRepository abstracts DynamoDB persistence for Product. The pipeline
// only resolves products referenced by submissions; catalog administration
// lives elsewhere.

type IProductRepository interface {
	GetByID(ctx context.Context, id string) (entities.Product, error)
	// Count returns the catalog size for the analytics totals.
	Count(ctx context.Context) (int, error)
}
