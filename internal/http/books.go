package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/culibrary/portal/internal/auth"
	"github.com/culibrary/portal/internal/library"
)

// BooksController serves the catalog: browsing with filters, reservations
// and favorite toggles.
type BooksController struct {
	catalog  CatalogStore
	sessions SessionStore
}

func NewBooksController(catalog CatalogStore, sessions SessionStore) *BooksController {
	return &BooksController{
		catalog:  catalog,
		sessions: sessions,
	}
}

// List returns the catalog, filtered by the optional text, category, author
// and language query parameters.
// GET /api/books
func (bc *BooksController) List(c *gin.Context) {
	books, err := bc.catalog.Load()
	if err != nil {
		respondInternalError(c, err, "load catalog")
		return
	}

	query := library.Query{
		Text:     c.Query("text"),
		Category: c.Query("category"),
		Author:   c.Query("author"),
		Language: c.Query("language"),
	}
	filtered := library.FilterBooks(books, query)

	c.JSON(http.StatusOK, gin.H{
		"books":    filtered,
		"total":    len(filtered),
		"filtered": !query.IsEmpty(),
	})
}

// FilterOptions returns the distinct values used to populate the filter
// dropdowns.
// GET /api/books/filters
func (bc *BooksController) FilterOptions(c *gin.Context) {
	books, err := bc.catalog.Load()
	if err != nil {
		respondInternalError(c, err, "load catalog")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"categories": library.DistinctCategories(books),
		"authors":    library.DistinctAuthors(books),
		"languages":  library.DistinctLanguages(books),
	})
}

// Reserve marks a book unavailable and records the reservation on the
// session user. The catalog is persisted before the user record, so a
// failed session write can leave a book unavailable with no matching
// reservation; availability is the authoritative side.
// POST /api/books/:id/reserve
func (bc *BooksController) Reserve(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	user := auth.CurrentUser(c)

	books, err := bc.catalog.Load()
	if err != nil {
		respondInternalError(c, err, "load catalog")
		return
	}

	updatedBooks, updatedUser, err := library.ReserveBook(*user, books, id, time.Now())
	if err != nil {
		respondOperationError(c, err, "reserve book")
		return
	}

	if err := bc.catalog.Save(updatedBooks); err != nil {
		respondInternalError(c, err, "save catalog")
		return
	}
	if err := bc.sessions.Save(&updatedUser); err != nil {
		respondInternalError(c, err, "save session")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "book reserved",
		"reservations": updatedUser.Reservations,
	})
}

// ToggleFavourite flips the book's membership in the user's favorites.
// POST /api/books/:id/favourite
func (bc *BooksController) ToggleFavourite(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	user := auth.CurrentUser(c)

	updated := library.ToggleFavoriteBook(*user, id)
	if err := bc.sessions.Save(&updated); err != nil {
		respondInternalError(c, err, "save session")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "favourites updated",
		"favorites": updated.Favorites,
	})
}
