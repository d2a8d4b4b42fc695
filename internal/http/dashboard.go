package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/culibrary/portal/internal/auth"
	"github.com/culibrary/portal/internal/entities"
)

// DashboardController aggregates the numbers and lists the landing page
// renders: issue statistics and the user's favorites resolved against the
// catalog.
type DashboardController struct {
	catalog CatalogStore
}

func NewDashboardController(catalog CatalogStore) *DashboardController {
	return &DashboardController{catalog: catalog}
}

type dashboardStats struct {
	IssuedHistory  int     `json:"issuedHistory"`
	ActiveIssues   int     `json:"activeIssues"`
	PendingReturns int     `json:"pendingReturns"`
	PendingFine    float64 `json:"pendingFine"`
}

// Show returns the dashboard payload. Favorite ids with no catalog entry
// are dropped, matching the favorites list the portal always rendered.
// GET /api/dashboard
func (dc *DashboardController) Show(c *gin.Context) {
	user := auth.CurrentUser(c)

	books, err := dc.catalog.Load()
	if err != nil {
		respondInternalError(c, err, "load catalog")
		return
	}

	byID := make(map[int]entities.Book, len(books))
	for _, book := range books {
		byID[book.ID] = book
	}

	favoriteBooks := make([]entities.Book, 0, len(user.Favorites.Books))
	for _, id := range user.Favorites.Books {
		if book, ok := byID[id]; ok {
			favoriteBooks = append(favoriteBooks, book)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"stats": dashboardStats{
			IssuedHistory:  len(user.IssuedHistory),
			ActiveIssues:   len(user.ActiveIssues),
			PendingReturns: len(user.PendingReturns),
			PendingFine:    user.PendingFine,
		},
		"favoriteBooks":   favoriteBooks,
		"favoriteAuthors": user.Favorites.Authors,
		"reservations":    user.Reservations,
	})
}
