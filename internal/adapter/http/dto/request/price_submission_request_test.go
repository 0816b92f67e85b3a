package request

import (
	"errors"
	"testing"
	"time"

	"caca_precos/internal/domain/entities"
)

func TestPriceSubmissionRequest_ToSubmission(t *testing.T) {
	r := PriceSubmissionRequest{
		ProductID:      "prod-1",
		StoreID:        "store-1",
		PriceCents:     500,
		Currency:       "BRL",
		CapturedAt:     "2025-06-01T12:00:00Z",
		SubmittedBy:    "device-1",
		PhotoURL:       "  https://photos.example/1.jpg  ",
		IdempotencyKey: "key-1",
		Status:         " active ",
	}

	sub, err := r.ToSubmission()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sub.ProductID != "prod-1" || sub.StoreID != "store-1" || sub.PriceCents != 500 {
		t.Fatalf("unexpected identity fields: %+v", sub)
	}
	if sub.PhotoURL != "https://photos.example/1.jpg" {
		t.Fatalf("expected trimmed photo url, got %q", sub.PhotoURL)
	}
	if sub.Status != entities.PriceStatusActive {
		t.Fatalf("expected trimmed status, got %q", sub.Status)
	}
	want := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	if !sub.CapturedAt.Equal(want) {
		t.Fatalf("expected %v, got %v", want, sub.CapturedAt)
	}
}

func TestPriceSubmissionRequest_ToSubmission_OptionalCapturedAt(t *testing.T) {
	r := PriceSubmissionRequest{ProductID: "prod-1", StoreID: "store-1", PriceCents: 500, Currency: "BRL"}
	sub, err := r.ToSubmission()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !sub.CapturedAt.IsZero() {
		t.Fatalf("expected zero capturedAt, got %v", sub.CapturedAt)
	}
}

func TestPriceSubmissionRequest_ToSubmission_BadCapturedAt(t *testing.T) {
	r := PriceSubmissionRequest{ProductID: "prod-1", StoreID: "store-1", PriceCents: 500, Currency: "BRL", CapturedAt: "01/06/2025"}
	if _, err := r.ToSubmission(); !errors.Is(err, ErrInvalidCapturedAt) {
		t.Fatalf("expected ErrInvalidCapturedAt, got %v", err)
	}
}
