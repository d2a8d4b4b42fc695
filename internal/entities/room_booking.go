package entities

// RoomBooking is an append-only study room booking. Date and the two time
// fields are kept as the raw form values ("2025-03-14", "10:00"); the portal
// does no calendar arithmetic on them.
type RoomBooking struct {
	ID     int64  `json:"id"`
	User   string `json:"user"`
	Date   string `json:"date"`
	From   string `json:"from"`
	To     string `json:"to"`
	People int    `json:"people"`
}
