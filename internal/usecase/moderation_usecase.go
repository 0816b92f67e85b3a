package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"caca_precos/internal/domain/entities"
	"caca_precos/internal/usecase/interfaces"
)

var (
	ErrPriceNotFound  = errors.New("price not found")
	ErrInvalidPriceID = errors.New("invalid price id")
)

const (
	defaultModerationQueueLimit = 100
	maxModerationQueueLimit     = 200
)

// IModerationUseCase applies explicit human status transitions on ingested
// prices and lists the review queue. Moderation writes are last-write-wins;
// an auto-flag is never reversed automatically.

type IModerationUseCase interface {
	SetStatus(ctx context.Context, id string, status entities.PriceStatus) (entities.Price, error)
	ListQueue(ctx context.Context, status entities.PriceStatus, limit int) ([]entities.Price, error)
}

type ModerationUseCase struct {
	prices interfaces.IPriceRepository
}

var _ IModerationUseCase = (*ModerationUseCase)(nil)

func NewModerationUseCase(prices interfaces.IPriceRepository) *ModerationUseCase {
	return &ModerationUseCase{prices: prices}
}

// SetStatus moves a price between active and flagged. Both directions are
// allowed and neither state is terminal.
func (u *ModerationUseCase) SetStatus(ctx context.Context, id string, status entities.PriceStatus) (entities.Price, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Price{}, ErrInvalidPriceID
	}
	if !entities.ValidPriceStatus(status) {
		return entities.Price{}, ErrInvalidPriceStatus
	}

	updated, err := u.prices.UpdateStatus(ctx, id, status)
	if err != nil {
		return entities.Price{}, err
	}
	if updated.ID == "" {
		return entities.Price{}, ErrPriceNotFound
	}
	log.Printf("[moderation][usecase] status set price_id=%s status=%s", updated.ID, updated.Status)
	return updated, nil
}

// ListQueue returns prices awaiting review, most recently captured first.
// An empty status defaults to flagged, the queue moderators actually work.
func (u *ModerationUseCase) ListQueue(ctx context.Context, status entities.PriceStatus, limit int) ([]entities.Price, error) {
	if status == "" {
		status = entities.PriceStatusFlagged
	}
	if !entities.ValidPriceStatus(status) {
		return nil, ErrInvalidPriceStatus
	}
	if limit <= 0 {
		limit = defaultModerationQueueLimit
	}
	if limit > maxModerationQueueLimit {
		limit = maxModerationQueueLimit
	}
	return u.prices.ListByStatus(ctx, status, limit)
}
