package localstore

import (
	"context"
	"fmt"
	"time"

	"caca_precos/internal/domain/entities"
)

// UpsertPrice writes a server-confirmed price into the local cache. The sync
// coordinator calls this with both the created price and the current best
// price returned by the ingestion endpoint, so the cache converges on the
// server's view without a separate fetch.
func (s *Store) UpsertPrice(ctx context.Context, p entities.Price) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO prices (
			id, product_id, store_id, price_cents, currency,
			captured_at, status, confidence_score
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			price_cents      = excluded.price_cents,
			currency         = excluded.currency,
			captured_at      = excluded.captured_at,
			status           = excluded.status,
			confidence_score = excluded.confidence_score;`,
		p.ID, p.ProductID, p.StoreID, p.PriceCents, p.Currency,
		p.CapturedAt.UTC().Format(time.RFC3339Nano), string(p.Status), p.ConfidenceScore,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert price: %w", err)
	}
	return nil
}

// ListPricesByProduct returns cached prices for a product, cheapest first.
func (s *Store) ListPricesByProduct(ctx context.Context, productID string) ([]entities.Price, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, product_id, store_id, price_cents, currency,
		       captured_at, status, confidence_score
		FROM prices
		WHERE product_id = ?
		ORDER BY price_cents ASC;`, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cached prices: %w", err)
	}
	defer rows.Close()

	var out []entities.Price
	for rows.Next() {
		var (
			p          entities.Price
			capturedAt string
			status     string
		)
		if err := rows.Scan(&p.ID, &p.ProductID, &p.StoreID, &p.PriceCents, &p.Currency,
			&capturedAt, &status, &p.ConfidenceScore); err != nil {
			return nil, fmt.Errorf("failed to scan price: %w", err)
		}
		p.Status = entities.PriceStatus(status)
		if p.CapturedAt, err = time.Parse(time.RFC3339Nano, capturedAt); err != nil {
			return nil, fmt.Errorf("failed to parse captured_at: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
