package localstore

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"caca_precos/internal/domain/entities"

	"github.com/google/uuid"
)

const maxLastErrorLen = 500

// NewIdempotencyKey builds the client-side idempotency key for a capture.
// The random suffix keeps two captures of the same product/store within the
// same millisecond distinct.
func NewIdempotencyKey(productID, storeID string, at time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("price_%s_%s_%d_%s", productID, storeID, at.UnixMilli(), suffix)
}

// Enqueue inserts a submission into the pending queue, or replaces it when
// the idempotency key already exists. Retry bookkeeping of an existing row is
// preserved so a re-enqueued capture keeps its failure history.
func (s *Store) Enqueue(ctx context.Context, sub entities.PendingSubmission) error {
	if sub.CreatedAt.IsZero() {
		sub.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO pending_price_submissions (
			idempotency_key, product_id, store_id, price_cents, currency,
			captured_at, photo_url, submitted_by, created_at,
			retry_count, last_error
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?,
			COALESCE((SELECT retry_count FROM pending_price_submissions WHERE idempotency_key = ?), 0),
			(SELECT last_error FROM pending_price_submissions WHERE idempotency_key = ?)
		);`,
		sub.IdempotencyKey, sub.ProductID, sub.StoreID, sub.PriceCents, sub.Currency,
		sub.CapturedAt.UTC().Format(time.RFC3339Nano), sub.PhotoURL, sub.SubmittedBy,
		sub.CreatedAt.UTC().Format(time.RFC3339Nano),
		sub.IdempotencyKey, sub.IdempotencyKey,
	)
	if err != nil {
		return fmt.Errorf("failed to enqueue submission: %w", err)
	}
	return nil
}

// ListPending returns up to limit queued submissions in FIFO order.
func (s *Store) ListPending(ctx context.Context, limit int) ([]entities.PendingSubmission, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT idempotency_key, product_id, store_id, price_cents, currency,
		       captured_at, photo_url, submitted_by, created_at,
		       retry_count, last_error
		FROM pending_price_submissions
		ORDER BY created_at ASC
		LIMIT ?;`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending submissions: %w", err)
	}
	defer rows.Close()

	var out []entities.PendingSubmission
	for rows.Next() {
		sub, err := scanPending(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, sub)
	}
	return out, rows.Err()
}

// CountPending returns the number of queued submissions.
func (s *Store) CountPending(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM pending_price_submissions;`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending submissions: %w", err)
	}
	return n, nil
}

// Remove deletes a queue entry by idempotency key. Removing a missing key is
// a no-op.
func (s *Store) Remove(ctx context.Context, idempotencyKey string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM pending_price_submissions WHERE idempotency_key = ?;`, idempotencyKey)
	if err != nil {
		return fmt.Errorf("failed to remove submission: %w", err)
	}
	return nil
}

// MarkFailed increments the retry counter and records the failure reason,
// truncated so a huge response body cannot bloat the queue row.
func (s *Store) MarkFailed(ctx context.Context, idempotencyKey, reason string) error {
	if len(reason) > maxLastErrorLen {
		cut := maxLastErrorLen
		// Back off to a rune start so the cut never leaves invalid UTF-8.
		for cut > 0 && !utf8.RuneStart(reason[cut]) {
			cut--
		}
		reason = reason[:cut]
	}
	_, err := s.db.ExecContext(ctx, `
		UPDATE pending_price_submissions
		SET retry_count = retry_count + 1, last_error = ?
		WHERE idempotency_key = ?;`, reason, idempotencyKey)
	if err != nil {
		return fmt.Errorf("failed to mark submission failed: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPending(row rowScanner) (entities.PendingSubmission, error) {
	var (
		sub                   entities.PendingSubmission
		capturedAt, createdAt string
		photoURL, submittedBy sql.NullString
		lastError             sql.NullString
	)
	err := row.Scan(
		&sub.IdempotencyKey, &sub.ProductID, &sub.StoreID, &sub.PriceCents, &sub.Currency,
		&capturedAt, &photoURL, &submittedBy, &createdAt,
		&sub.RetryCount, &lastError,
	)
	if err != nil {
		return entities.PendingSubmission{}, fmt.Errorf("failed to scan submission: %w", err)
	}

	sub.PhotoURL = photoURL.String
	sub.SubmittedBy = submittedBy.String
	sub.LastError = lastError.String

	if sub.CapturedAt, err = time.Parse(time.RFC3339Nano, capturedAt); err != nil {
		return entities.PendingSubmission{}, fmt.Errorf("failed to parse captured_at: %w", err)
	}
	if sub.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return entities.PendingSubmission{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	return sub, nil
}
