package entities

import "time"

// ComplaintTypes is the fixed set of categories a complaint can be filed
// under. "Other" switches the form to a free-text category.
var ComplaintTypes = []string{
	"Book damaged",
	"Missing book",
	"Account issue",
	"Reservation issue",
	"WiFi / Facilities",
	"Other",
}

// ComplaintTypeOther enables the free-text category.
const ComplaintTypeOther = "Other"

// Complaint is an append-only record filed by the session user. IDs are
// millisecond timestamps, matching the append-only log semantics.
type Complaint struct {
	ID      int64     `json:"id"`
	User    string    `json:"user"`
	Type    string    `json:"type"`
	Details string    `json:"details"`
	Date    time.Time `json:"date"`
}
