package library

import (
	"time"

	"github.com/culibrary/portal/internal/entities"
)

// ReserveBook computes the state both stores should hold after the session
// user reserves bookID: the book is marked unavailable and a reservation
// stamped with now is appended to the user. Inputs are not modified.
//
// Persisting is the caller's responsibility, catalog first and user second,
// so that a failed user write leaves book availability authoritative. There
// is no rollback across the two stores.
//
// Availability is one-way: no operation marks a reserved book available
// again, since the portal has no return flow.
func ReserveBook(user entities.User, books []entities.Book, bookID int, now time.Time) ([]entities.Book, entities.User, error) {
	idx := -1
	for i := range books {
		if books[i].ID == bookID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, entities.User{}, ErrBookNotFound
	}
	if !books[idx].Available {
		return nil, entities.User{}, ErrBookUnavailable
	}

	updated := make([]entities.Book, len(books))
	copy(updated, books)
	updated[idx].Available = false

	reservations := make([]entities.Reservation, len(user.Reservations), len(user.Reservations)+1)
	copy(reservations, user.Reservations)
	user.Reservations = append(reservations, entities.Reservation{BookID: bookID, Date: now})

	return updated, user, nil
}
