package store

import (
	"errors"
	"fmt"

	"github.com/syndtr/goleveldb/leveldb"

	"termcraft/internal/world"
)

const worldKeyPrefix = "world/"

// LevelStore keeps worlds as values in a LevelDB database, one key per name.
type LevelStore struct {
	db *leveldb.DB
}

func OpenLevelStore(path string) (*LevelStore, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("open leveldb %s: %w", path, err)
	}
	return &LevelStore{db: db}, nil
}

func (s *LevelStore) Save(name string, g *world.Grid) error {
	if err := s.db.Put([]byte(worldKeyPrefix+name), world.Encode(g), nil); err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}
	return nil
}

func (s *LevelStore) Load(name string, size int, max world.BlockType) (*world.Grid, error) {
	data, err := s.db.Get([]byte(worldKeyPrefix+name), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", name, err)
	}

	g, err := world.Decode(data, size, max)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", name, err)
	}
	return g, nil
}

func (s *LevelStore) Close() error {
	return s.db.Close()
}
