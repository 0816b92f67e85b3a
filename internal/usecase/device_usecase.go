package usecase

import (
	"context"

	"caca_precos/internal/domain/entities"
	"caca_precos/internal/usecase/interfaces"
)

const defaultDeviceListLimit = 100

// IDeviceRegistryUseCase lists registered capture devices together with
// their submission usage.

type IDeviceRegistryUseCase interface {
	ListDevices(ctx context.Context, limit int) ([]entities.DeviceUsage, error)
}

type DeviceRegistryUseCase struct {
	devices interfaces.IDeviceRepository
	prices  interfaces.IPriceRepository
}

var _ IDeviceRegistryUseCase = (*DeviceRegistryUseCase)(nil)

func NewDeviceRegistryUseCase(devices interfaces.IDeviceRepository, prices interfaces.IPriceRepository) *DeviceRegistryUseCase {
	return &DeviceRegistryUseCase{devices: devices, prices: prices}
}

func (u *DeviceRegistryUseCase) ListDevices(ctx context.Context, limit int) ([]entities.DeviceUsage, error) {
	if limit <= 0 {
		limit = defaultDeviceListLimit
	}

	devices, err := u.devices.List(ctx, limit)
	if err != nil {
		return nil, err
	}
	usage, err := u.prices.CountByDevice(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]entities.DeviceUsage, 0, len(devices))
	for _, d := range devices {
		row := entities.DeviceUsage{Device: d}
		if stats, ok := usage[d.ID]; ok {
			row.SubmissionsCount = stats.SubmissionsCount
			if !stats.LastCapturedAt.IsZero() {
				last := stats.LastCapturedAt
				row.LastUsedAt = &last
			}
		}
		out = append(out, row)
	}
	return out, nil
}
