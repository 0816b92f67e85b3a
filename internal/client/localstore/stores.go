package localstore

import (
	"context"
	"fmt"
	"time"

	"caca_precos/internal/domain/entities"
)

// ReplaceStores refreshes the local store cache from the server's store list.
// Rows are upserted in a single transaction; stores removed on the server are
// kept locally so cached prices never dangle.
func (s *Store) ReplaceStores(ctx context.Context, stores []entities.Store) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC().Format(time.RFC3339Nano)
	for _, st := range stores {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO stores (id, name, city, updated_at)
			VALUES (?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				name       = excluded.name,
				city       = excluded.city,
				updated_at = excluded.updated_at;`,
			st.ID, st.Name, st.City, now)
		if err != nil {
			return fmt.Errorf("failed to upsert store %s: %w", st.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit store refresh: %w", err)
	}
	return nil
}

// ListStores returns the cached stores ordered by name.
func (s *Store) ListStores(ctx context.Context) ([]entities.Store, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, city FROM stores ORDER BY name ASC;`)
	if err != nil {
		return nil, fmt.Errorf("failed to list cached stores: %w", err)
	}
	defer rows.Close()

	var out []entities.Store
	for rows.Next() {
		var st entities.Store
		if err := rows.Scan(&st.ID, &st.Name, &st.City); err != nil {
			return nil, fmt.Errorf("failed to scan store: %w", err)
		}
		out = append(out, st)
	}
	return out, rows.Err()
}
