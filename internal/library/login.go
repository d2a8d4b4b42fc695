package library

import (
	"strings"

	"github.com/culibrary/portal/internal/entities"
)

// DefaultPassword fills in for an empty password at login.
const DefaultPassword = "changeme"

// NewSessionUser builds the session user created at login. The email is
// lowercased and must end with the institutional domain suffix; the name
// falls back to the email local part. The account is seeded with the demo
// issue history the portal dashboards render.
func NewSessionUser(name, email, password, domainSuffix string) (entities.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !strings.HasSuffix(email, domainSuffix) {
		return entities.User{}, ErrInvalidEmailDomain
	}

	name = strings.TrimSpace(name)
	if name == "" {
		name, _, _ = strings.Cut(email, "@")
	}

	password = strings.TrimSpace(password)
	if password == "" {
		password = DefaultPassword
	}

	return entities.User{
		Name:           name,
		Email:          email,
		Password:       password,
		IssuedHistory:  []int{2, 5},
		ActiveIssues:   []int{2},
		PendingReturns: []int{2},
		PendingFine:    0,
		Favorites:      entities.Favorites{Books: []int{5}, Authors: []string{"C. Levit"}},
		Reservations:   []entities.Reservation{},
	}, nil
}
