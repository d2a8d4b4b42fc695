package library

import (
	"strings"

	"github.com/culibrary/portal/internal/entities"
)

// ProfileEdit carries the editable profile fields as entered.
type ProfileEdit struct {
	Name     string
	Email    string
	Phone    string
	Password string
}

// ApplyProfileEdit returns the user with the edit applied. The new email is
// lowercased and re-checked against the domain suffix; on failure the user
// is returned unchanged. Issue history, favorites and reservations are not
// editable through the profile.
func ApplyProfileEdit(user entities.User, edit ProfileEdit, domainSuffix string) (entities.User, error) {
	email := strings.ToLower(strings.TrimSpace(edit.Email))
	if !strings.HasSuffix(email, domainSuffix) {
		return user, ErrInvalidEmailDomain
	}

	user.Name = strings.TrimSpace(edit.Name)
	user.Email = email
	user.Phone = strings.TrimSpace(edit.Phone)
	user.Password = strings.TrimSpace(edit.Password)
	return user, nil
}
