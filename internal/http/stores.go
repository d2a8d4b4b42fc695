package http

import "github.com/culibrary/portal/internal/entities"

// This file consolidates the store interfaces the controllers consume. Each
// store is satisfied by the matching repository under internal/database;
// tests substitute fakes.

// SessionStore holds the single session user record.
type SessionStore interface {
	Load() (*entities.User, error)
	Save(user *entities.User) error
	Clear() error
}

// CatalogStore holds the book catalog as one collection.
type CatalogStore interface {
	Load() ([]entities.Book, error)
	Save(books []entities.Book) error
	SeedIfAbsent(books []entities.Book) (bool, error)
}

// ComplaintStore is the append-only complaint log.
type ComplaintStore interface {
	Append(complaint entities.Complaint) error
	ListAll() ([]entities.Complaint, error)
}

// RoomBookingStore is the append-only room booking log.
type RoomBookingStore interface {
	Append(booking entities.RoomBooking) error
	ListAll() ([]entities.RoomBooking, error)
}
