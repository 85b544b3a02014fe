package sqlite

import (
	"errors"
	"strings"
)

// ErrInvalidDataDir is returned by Config.Validate for unusable paths.
var ErrInvalidDataDir = errors.New("invalid data directory")

// Config carries the store's attachment parameters.
type Config struct {
	// DataDir is the directory holding the database file. Empty means the
	// current directory; it is created if it does not exist.
	DataDir string
}

// Validate checks the configuration before Attach uses it.
func (c Config) Validate() error {
	if strings.ContainsRune(c.DataDir, '\x00') {
		return ErrInvalidDataDir
	}
	return nil
}
