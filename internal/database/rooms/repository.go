// Package rooms provides the append-only study room booking log.
package rooms

import (
	"encoding/json"
	"fmt"

	"github.com/culibrary/portal/internal/database"
	"github.com/culibrary/portal/internal/entities"
)

// Repository handles the room-bookings record.
type Repository struct {
	store database.RecordStore
}

func NewRepository(store database.RecordStore) *Repository {
	return &Repository{store: store}
}

// ListAll returns every booking in append order. A missing or corrupt
// record reads as an empty log.
func (r *Repository) ListAll() ([]entities.RoomBooking, error) {
	value, found, err := r.store.GetRecord(entities.RecordKeyRoomBookings)
	if err != nil {
		return nil, fmt.Errorf("failed to read room bookings record: %w", err)
	}
	if !found {
		return []entities.RoomBooking{}, nil
	}

	var bookings []entities.RoomBooking
	if err := json.Unmarshal([]byte(value), &bookings); err != nil {
		return []entities.RoomBooking{}, nil
	}
	return bookings, nil
}

// Append adds one booking to the log and writes the collection back.
func (r *Repository) Append(booking entities.RoomBooking) error {
	bookings, err := r.ListAll()
	if err != nil {
		return err
	}
	bookings = append(bookings, booking)

	payload, err := json.Marshal(bookings)
	if err != nil {
		return fmt.Errorf("failed to serialize room bookings: %w", err)
	}
	return r.store.SetRecord(entities.RecordKeyRoomBookings, string(payload))
}
