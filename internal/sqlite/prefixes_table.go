package sqlite

import (
	"fmt"
	"time"

	"github.com/dukaforge/gauge/pkg/unit"
)

// SavePrefix inserts or updates a prefix definition keyed by symbol.
func (s *Store) SavePrefix(p unit.Prefix) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return ErrStoreDetached
	}
	if p.Symbol == "" {
		return unit.ErrEmptySymbol
	}

	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.Exec(
		`INSERT INTO prefixes (prefix_id, symbol, factor, created_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(symbol) DO UPDATE SET factor = excluded.factor`,
		generateUUID(), p.Symbol, p.Factor, now,
	)
	if err != nil {
		return fmt.Errorf("saving prefix %q: %w", p.Symbol, err)
	}
	return nil
}

// DeletePrefix removes a prefix definition by symbol.
// Returns ErrNotFound if no row matches.
func (s *Store) DeletePrefix(symbol string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return ErrStoreDetached
	}

	res, err := s.db.Exec("DELETE FROM prefixes WHERE symbol = ?", symbol)
	if err != nil {
		return fmt.Errorf("deleting prefix %q: %w", symbol, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting prefix %q: %w", symbol, err)
	}
	if n == 0 {
		return fmt.Errorf("prefix %q: %w", symbol, ErrNotFound)
	}
	return nil
}

// Prefixes returns all stored prefix definitions ordered by symbol.
func (s *Store) Prefixes() ([]unit.Prefix, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return nil, ErrStoreDetached
	}

	rows, err := s.db.Query("SELECT symbol, factor FROM prefixes ORDER BY symbol")
	if err != nil {
		return nil, fmt.Errorf("listing prefixes: %w", err)
	}
	defer rows.Close()

	var prefixes []unit.Prefix
	for rows.Next() {
		var p unit.Prefix
		if err := rows.Scan(&p.Symbol, &p.Factor); err != nil {
			return nil, fmt.Errorf("scanning prefix row: %w", err)
		}
		prefixes = append(prefixes, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing prefixes: %w", err)
	}
	return prefixes, nil
}
