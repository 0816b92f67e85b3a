package interfaces

import (
	"context"

	"caca_precos/internal/domain/entities"
)

// IDeviceRepository abstracts DynamoDB persistence for Device.

type IDeviceRepository interface {
	// RegisterIfUnseen creates the device record on first sight and is a
	// no-op for known devices (the original CreatedAt is preserved).
	RegisterIfUnseen(ctx context.Context, id string) error
	List(ctx context.Context, limit int) ([]entities.Device, error)
}
