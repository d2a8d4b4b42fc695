package library

import (
	"strings"
	"time"

	"github.com/culibrary/portal/internal/entities"
)

// NewRoomBooking builds an append-ready study room booking. Date and both
// time fields are required; people must be at least 1. The id is the
// millisecond timestamp of now.
func NewRoomBooking(userEmail, date, from, to string, people int, now time.Time) (entities.RoomBooking, error) {
	date = strings.TrimSpace(date)
	from = strings.TrimSpace(from)
	to = strings.TrimSpace(to)
	if date == "" || from == "" || to == "" {
		return entities.RoomBooking{}, ErrBookingTimeRequired
	}
	if people < 1 {
		return entities.RoomBooking{}, ErrInvalidPeopleCount
	}

	return entities.RoomBooking{
		ID:     now.UnixMilli(),
		User:   userEmail,
		Date:   date,
		From:   from,
		To:     to,
		People: people,
	}, nil
}
