package sqlite

import (
	"fmt"
	"time"

	"github.com/dukaforge/gauge/pkg/dimension"
	"github.com/dukaforge/gauge/pkg/unit"
)

// SaveUnit inserts or updates a unit definition keyed by symbol. Dimensions
// are stored in their canonical text form so rows stay readable with any
// sqlite client.
func (s *Store) SaveUnit(u unit.Unit) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return ErrStoreDetached
	}
	if u.Symbol == "" {
		return unit.ErrEmptySymbol
	}

	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.Exec(
		`INSERT INTO units (unit_id, symbol, scale, dims, created_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(symbol) DO UPDATE SET scale = excluded.scale, dims = excluded.dims`,
		generateUUID(), u.Symbol, u.Scale, u.Dims.String(), now,
	)
	if err != nil {
		return fmt.Errorf("saving unit %q: %w", u.Symbol, err)
	}
	return nil
}

// DeleteUnit removes a unit definition by symbol.
// Returns ErrNotFound if no row matches.
func (s *Store) DeleteUnit(symbol string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return ErrStoreDetached
	}

	res, err := s.db.Exec("DELETE FROM units WHERE symbol = ?", symbol)
	if err != nil {
		return fmt.Errorf("deleting unit %q: %w", symbol, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting unit %q: %w", symbol, err)
	}
	if n == 0 {
		return fmt.Errorf("unit %q: %w", symbol, ErrNotFound)
	}
	return nil
}

// Units returns all stored unit definitions ordered by symbol.
func (s *Store) Units() ([]unit.Unit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return nil, ErrStoreDetached
	}

	rows, err := s.db.Query("SELECT symbol, scale, dims FROM units ORDER BY symbol")
	if err != nil {
		return nil, fmt.Errorf("listing units: %w", err)
	}
	defer rows.Close()

	var units []unit.Unit
	for rows.Next() {
		var u unit.Unit
		var dims string
		if err := rows.Scan(&u.Symbol, &u.Scale, &dims); err != nil {
			return nil, fmt.Errorf("scanning unit row: %w", err)
		}
		u.Dims, err = dimension.Parse(dims)
		if err != nil {
			return nil, fmt.Errorf("unit %q: %w", u.Symbol, err)
		}
		units = append(units, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing units: %w", err)
	}
	return units, nil
}
