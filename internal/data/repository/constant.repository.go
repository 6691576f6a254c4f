package repository

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/IceRabbit1999/watchingir/internal/core/models"
)

const (
	itemsFile  = "items.json"
	heroesFile = "heroes.json"
)

// ConstantRepository stores the reference tables as two JSON objects
// mapping integer ids to display names, items.json and heroes.json.
type ConstantRepository struct {
	dir string
}

func NewConstantRepository(dir string) *ConstantRepository {
	return &ConstantRepository{dir: dir}
}

// LoadConstants reads both files. A missing or unparsable file fails the
// whole load with models.ErrNotFound; there is no partial result.
func (r *ConstantRepository) LoadConstants() (items, heroes map[int]string, err error) {
	items, err = r.readTable(itemsFile)
	if err != nil {
		return nil, nil, models.ErrNotFound
	}
	heroes, err = r.readTable(heroesFile)
	if err != nil {
		return nil, nil, models.ErrNotFound
	}
	return items, heroes, nil
}

// SaveConstants overwrites both files.
func (r *ConstantRepository) SaveConstants(items, heroes map[int]string) error {
	if err := os.MkdirAll(r.dir, os.ModePerm); err != nil {
		return err
	}
	if err := r.writeTable(itemsFile, items); err != nil {
		return err
	}
	return r.writeTable(heroesFile, heroes)
}

func (r *ConstantRepository) readTable(filename string) (map[int]string, error) {
	data, err := os.ReadFile(filepath.Join(r.dir, filename))
	if err != nil {
		return nil, err
	}

	var table map[int]string
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, err
	}
	return table, nil
}

func (r *ConstantRepository) writeTable(filename string, table map[int]string) error {
	// MarshalIndent sorts the keys, so an unchanged table round-trips to
	// byte-identical output.
	data, err := json.MarshalIndent(table, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(r.dir, filename), data, 0o644)
}
