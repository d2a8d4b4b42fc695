package http

import (
	"github.com/gin-gonic/gin"

	"github.com/culibrary/portal/internal/auth"
	"github.com/culibrary/portal/internal/database"
)

// RouterConfig carries every dependency the router wires into controllers.
type RouterConfig struct {
	Database   *database.Database
	Sessions   SessionStore
	Catalog    CatalogStore
	Complaints ComplaintStore
	Rooms      RoomBookingStore

	EmailDomain   string
	CSRFSecret    []byte
	SecureCookies bool
	Version       string
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// CSRF runs before the session check so rejected posts never touch the
	// stores.
	if len(cfg.CSRFSecret) > 0 {
		router.Use(auth.CSRFMiddleware(cfg.CSRFSecret, cfg.SecureCookies))
	}

	sessionMiddleware := auth.NewMiddleware(cfg.Sessions)
	router.Use(sessionMiddleware.Handler())

	healthController := NewHealthController(cfg.Database, cfg.Version)
	router.GET("/health", healthController.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.String(200, "pong")
	})

	authController := NewAuthController(cfg.Sessions, cfg.Catalog, cfg.EmailDomain)
	router.POST("/api/auth/login", authController.Login)
	router.POST("/api/auth/logout", authController.Logout)

	booksController := NewBooksController(cfg.Catalog, cfg.Sessions)
	router.GET("/api/books", booksController.List)
	router.GET("/api/books/filters", booksController.FilterOptions)
	router.POST("/api/books/:id/reserve", booksController.Reserve)
	router.POST("/api/books/:id/favourite", booksController.ToggleFavourite)

	dashboardController := NewDashboardController(cfg.Catalog)
	router.GET("/api/dashboard", dashboardController.Show)

	profileController := NewProfileController(cfg.Sessions, cfg.EmailDomain)
	router.GET("/api/profile", profileController.Show)
	router.PUT("/api/profile", profileController.Update)

	complaintsController := NewComplaintsController(cfg.Complaints)
	router.GET("/api/complaints", complaintsController.List)
	router.POST("/api/complaints", complaintsController.Submit)

	roomsController := NewRoomsController(cfg.Rooms)
	router.GET("/api/rooms", roomsController.List)
	router.POST("/api/rooms", roomsController.Book)

	return router
}
