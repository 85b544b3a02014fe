// Shared helpers for gauge CLI commands.
package main

import (
	"fmt"

	"github.com/dukaforge/gauge/internal/sqlite"
	"github.com/dukaforge/gauge/pkg/unit"
)

// attachStore resolves the data directory, creates a SQLite store, and
// attaches it. The caller must defer store.Detach().
func attachStore() (*sqlite.Store, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	store := sqlite.NewStore()
	if err := store.Attach(sqlite.Config{DataDir: dataDir}); err != nil {
		return nil, fmt.Errorf("attach store: %w", err)
	}

	return store, nil
}

// builtinTable returns the compiled-in vocabulary: the SI catalogue, plus
// the binary prefixes when enabled in config.yaml.
func builtinTable() (*unit.Table, error) {
	b := unit.NewBuilder().SI()
	if configBinaryPrefixes {
		b = b.Binary()
	}
	return b.Build()
}

// loadVocabulary builds the full symbol table: built-ins merged with every
// unit and prefix stored in the database.
func loadVocabulary() (*unit.Table, *sqlite.Store, error) {
	store, err := attachStore()
	if err != nil {
		return nil, nil, err
	}

	seed, err := builtinTable()
	if err != nil {
		store.Detach()
		return nil, nil, fmt.Errorf("building built-in table: %w", err)
	}

	table, err := store.LoadTable(seed)
	if err != nil {
		store.Detach()
		return nil, nil, err
	}
	return table, store, nil
}
