package store

import (
	"errors"
	"fmt"

	"termcraft/internal/world"
)

// ErrNotFound is returned by Load when the named world was never saved.
var ErrNotFound = errors.New("store: world not found")

// Store persists grids under a name.
type Store interface {
	Save(name string, g *world.Grid) error
	Load(name string, size int, max world.BlockType) (*world.Grid, error)
	Close() error
}

// Open returns the store for backend rooted at path.
func Open(backend, path string) (Store, error) {
	switch backend {
	case "", "file":
		return NewFileStore(path)
	case "leveldb":
		return OpenLevelStore(path)
	default:
		return nil, fmt.Errorf("store: unknown backend %q", backend)
	}
}
