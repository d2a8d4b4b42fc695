// Package session provides load/save/clear access to the single session
// user record.
//
// # Usage
//
//	repo := session.NewRepository(store)
//	user, err := repo.Load()
package session

import (
	"encoding/json"
	"fmt"

	"github.com/culibrary/portal/internal/database"
	"github.com/culibrary/portal/internal/entities"
)

// Repository handles the session-user record. It performs no validation;
// the login boundary checks the email domain before Save is called.
type Repository struct {
	store database.RecordStore
}

func NewRepository(store database.RecordStore) *Repository {
	return &Repository{store: store}
}

// Load returns the session user, or nil when no session exists. A payload
// that fails to parse also reads as nil; the record is reinitialized by the
// next Save.
func (r *Repository) Load() (*entities.User, error) {
	value, found, err := r.store.GetRecord(entities.RecordKeySessionUser)
	if err != nil {
		return nil, fmt.Errorf("failed to read session record: %w", err)
	}
	if !found {
		return nil, nil
	}

	var user entities.User
	if err := json.Unmarshal([]byte(value), &user); err != nil {
		// Corrupt session payloads are treated as logged out.
		return nil, nil
	}
	return &user, nil
}

// Save overwrites the session record with the full user.
func (r *Repository) Save(user *entities.User) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to serialize session user: %w", err)
	}
	return r.store.SetRecord(entities.RecordKeySessionUser, string(payload))
}

// Clear removes the session record; Load returns nil afterwards.
func (r *Repository) Clear() error {
	return r.store.DeleteRecord(entities.RecordKeySessionUser)
}
