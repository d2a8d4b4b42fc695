// Package catalog provides load/save access to the book catalog, persisted
// as a single JSON document.
package catalog

import (
	"encoding/json"
	"fmt"

	"github.com/culibrary/portal/internal/database"
	"github.com/culibrary/portal/internal/entities"
)

// Repository handles the catalog record.
type Repository struct {
	store database.RecordStore
}

func NewRepository(store database.RecordStore) *Repository {
	return &Repository{store: store}
}

// Load returns the persisted catalog in stored order. A missing or corrupt
// record reads as an empty catalog.
func (r *Repository) Load() ([]entities.Book, error) {
	value, found, err := r.store.GetRecord(entities.RecordKeyCatalog)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog record: %w", err)
	}
	if !found {
		return []entities.Book{}, nil
	}

	var books []entities.Book
	if err := json.Unmarshal([]byte(value), &books); err != nil {
		return []entities.Book{}, nil
	}
	return books, nil
}

// Save overwrites the persisted catalog.
func (r *Repository) Save(books []entities.Book) error {
	payload, err := json.Marshal(books)
	if err != nil {
		return fmt.Errorf("failed to serialize catalog: %w", err)
	}
	return r.store.SetRecord(entities.RecordKeyCatalog, string(payload))
}

// SeedIfAbsent writes the default catalog only when no catalog record
// exists. Returns true when the seed was written. Presence is checked on
// the raw record, so a payload that fails to parse is not overwritten.
func (r *Repository) SeedIfAbsent(books []entities.Book) (bool, error) {
	_, found, err := r.store.GetRecord(entities.RecordKeyCatalog)
	if err != nil {
		return false, fmt.Errorf("failed to check catalog record: %w", err)
	}
	if found {
		return false, nil
	}
	if err := r.Save(books); err != nil {
		return false, err
	}
	return true, nil
}
