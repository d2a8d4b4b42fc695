// Package complaints provides the append-only complaint log.
package complaints

import (
	"encoding/json"
	"fmt"

	"github.com/culibrary/portal/internal/database"
	"github.com/culibrary/portal/internal/entities"
)

// Repository handles the complaints record. Appends rewrite the whole
// collection, so concurrent writers are last-writer-wins.
type Repository struct {
	store database.RecordStore
}

func NewRepository(store database.RecordStore) *Repository {
	return &Repository{store: store}
}

// ListAll returns every filed complaint in append order. A missing or
// corrupt record reads as an empty log.
func (r *Repository) ListAll() ([]entities.Complaint, error) {
	value, found, err := r.store.GetRecord(entities.RecordKeyComplaints)
	if err != nil {
		return nil, fmt.Errorf("failed to read complaints record: %w", err)
	}
	if !found {
		return []entities.Complaint{}, nil
	}

	var complaints []entities.Complaint
	if err := json.Unmarshal([]byte(value), &complaints); err != nil {
		return []entities.Complaint{}, nil
	}
	return complaints, nil
}

// Append adds one complaint to the log and writes the collection back.
func (r *Repository) Append(complaint entities.Complaint) error {
	complaints, err := r.ListAll()
	if err != nil {
		return err
	}
	complaints = append(complaints, complaint)

	payload, err := json.Marshal(complaints)
	if err != nil {
		return fmt.Errorf("failed to serialize complaints: %w", err)
	}
	return r.store.SetRecord(entities.RecordKeyComplaints, string(payload))
}
