// Package library holds the portal's core catalog logic: the filter query
// and the pure state-transition operations (login, favorites, reservations,
// complaints, room bookings). Nothing in this package touches storage;
// callers load state, apply an operation and persist the result.
package library

import (
	"strings"

	"github.com/culibrary/portal/internal/entities"
)

// Query holds the four optional, conjunctive catalog filter criteria. Text
// is a case-insensitive substring test over "title author"; the rest match
// the respective field exactly when non-empty.
type Query struct {
	Text     string
	Category string
	Author   string
	Language string
}

// IsEmpty reports whether no criterion is set. Whitespace-only text counts
// as unset, matching how FilterBooks trims it.
func (q Query) IsEmpty() bool {
	return strings.TrimSpace(q.Text) == "" && q.Category == "" && q.Author == "" && q.Language == ""
}

// FilterBooks returns the books matching every set criterion, in the
// original catalog order. An empty result is a valid answer.
func FilterBooks(books []entities.Book, q Query) []entities.Book {
	text := strings.ToLower(strings.TrimSpace(q.Text))

	out := make([]entities.Book, 0, len(books))
	for _, book := range books {
		if text != "" && !strings.Contains(strings.ToLower(book.Title+" "+book.Author), text) {
			continue
		}
		if q.Category != "" && book.Category != q.Category {
			continue
		}
		if q.Author != "" && book.Author != q.Author {
			continue
		}
		if q.Language != "" && book.Language != q.Language {
			continue
		}
		out = append(out, book)
	}
	return out
}

// DistinctCategories returns every category once, in first-occurrence order.
func DistinctCategories(books []entities.Book) []string {
	return distinct(books, func(b entities.Book) string { return b.Category })
}

// DistinctAuthors returns every author once, in first-occurrence order.
func DistinctAuthors(books []entities.Book) []string {
	return distinct(books, func(b entities.Book) string { return b.Author })
}

// DistinctLanguages returns every language once, in first-occurrence order.
func DistinctLanguages(books []entities.Book) []string {
	return distinct(books, func(b entities.Book) string { return b.Language })
}

func distinct(books []entities.Book, field func(entities.Book) string) []string {
	seen := make(map[string]bool, len(books))
	out := make([]string, 0, len(books))
	for _, book := range books {
		value := field(book)
		if seen[value] {
			continue
		}
		seen[value] = true
		out = append(out, value)
	}
	return out
}
