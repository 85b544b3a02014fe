package sqlite

// Schema DDL. CREATE IF NOT EXISTS keeps rows across invocations; the
// UNIQUE constraint on symbol backs the upsert in SaveUnit/SavePrefix.
const (
	createUnits = `CREATE TABLE IF NOT EXISTS units (
    unit_id TEXT PRIMARY KEY,
    symbol TEXT NOT NULL UNIQUE,
    scale REAL NOT NULL,
    dims TEXT NOT NULL,
    created_at TEXT NOT NULL
);`

	createPrefixes = `CREATE TABLE IF NOT EXISTS prefixes (
    prefix_id TEXT PRIMARY KEY,
    symbol TEXT NOT NULL UNIQUE,
    factor REAL NOT NULL,
    created_at TEXT NOT NULL
);`

	idxUnitsSymbol    = `CREATE INDEX IF NOT EXISTS idx_units_symbol ON units(symbol);`
	idxPrefixesSymbol = `CREATE INDEX IF NOT EXISTS idx_prefixes_symbol ON prefixes(symbol);`
)

// schemaDDL lists all statements in execution order.
var schemaDDL = []string{
	createUnits,
	createPrefixes,
	idxUnitsSymbol,
	idxPrefixesSymbol,
}
