package library

import "github.com/culibrary/portal/internal/entities"

// ToggleFavoriteBook removes bookID from the user's favorite books when
// present, otherwise appends it. Applying it twice restores the original
// membership. The id is not checked against the catalog; a favorite can
// outlive its book, and the dashboard drops ids it cannot resolve.
func ToggleFavoriteBook(user entities.User, bookID int) entities.User {
	books := user.Favorites.Books
	for i, id := range books {
		if id == bookID {
			removed := make([]int, 0, len(books)-1)
			removed = append(removed, books[:i]...)
			removed = append(removed, books[i+1:]...)
			user.Favorites.Books = removed
			return user
		}
	}

	added := make([]int, len(books), len(books)+1)
	copy(added, books)
	user.Favorites.Books = append(added, bookID)
	return user
}
