package library

import (
	"strings"
	"time"

	"github.com/culibrary/portal/internal/entities"
)

// NewComplaint builds an append-ready complaint for the session user. The
// type must be one of entities.ComplaintTypes; when it is "Other" the free
// text category replaces it if given. The id is the millisecond timestamp
// of now.
func NewComplaint(userEmail, complaintType, otherType, details string, now time.Time) (entities.Complaint, error) {
	complaintType = strings.TrimSpace(complaintType)
	if !isKnownComplaintType(complaintType) {
		return entities.Complaint{}, ErrComplaintTypeUnknown
	}

	if complaintType == entities.ComplaintTypeOther {
		if other := strings.TrimSpace(otherType); other != "" {
			complaintType = other
		}
	}

	return entities.Complaint{
		ID:      now.UnixMilli(),
		User:    userEmail,
		Type:    complaintType,
		Details: strings.TrimSpace(details),
		Date:    now,
	}, nil
}

func isKnownComplaintType(complaintType string) bool {
	for _, known := range entities.ComplaintTypes {
		if complaintType == known {
			return true
		}
	}
	return false
}
