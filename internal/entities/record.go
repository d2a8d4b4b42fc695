package entities

import "time"

// Record is one persisted key-value row. Every portal collection (the
// catalog, the session user, the complaint and room booking logs) is stored
// as a single JSON document under a well-known key.
type Record struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"uniqueIndex;size:100" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Record) TableName() string {
	return "records"
}

// Well-known record keys.
const (
	RecordKeySessionUser  = "session-user"
	RecordKeyCatalog      = "catalog"
	RecordKeyComplaints   = "complaints"
	RecordKeyRoomBookings = "room-bookings"
)
