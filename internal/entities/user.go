package entities

import "time"

// Favorites groups the user's favorite book ids and author names.
type Favorites struct {
	Books   []int    `json:"books"`
	Authors []string `json:"authors"`
}

// Reservation records a single book reservation made by the session user.
type Reservation struct {
	BookID int       `json:"bookId"`
	Date   time.Time `json:"date"`
}

// User is the single session account. Exactly one user record exists at a
// time; it is created at login, mutated by profile edits, favorite toggles
// and reservations, and removed at logout.
//
// The password is kept as entered. The portal is a demo with no real
// authentication.
type User struct {
	Name           string        `json:"name"`
	Email          string        `json:"email"`
	Phone          string        `json:"phone"`
	Password       string        `json:"password"`
	IssuedHistory  []int         `json:"issuedHistory"`
	ActiveIssues   []int         `json:"activeIssues"`
	PendingReturns []int         `json:"pendingReturns"`
	PendingFine    float64       `json:"pendingFine"`
	Favorites      Favorites     `json:"favorites"`
	Reservations   []Reservation `json:"reservations"`
}
