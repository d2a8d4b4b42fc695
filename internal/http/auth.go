package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/culibrary/portal/internal/entities"
	"github.com/culibrary/portal/internal/library"
)

// AuthController handles login and logout. Logging in replaces whatever
// session existed before and seeds the catalog on first use.
type AuthController struct {
	sessions    SessionStore
	catalog     CatalogStore
	emailDomain string
}

func NewAuthController(sessions SessionStore, catalog CatalogStore, emailDomain string) *AuthController {
	return &AuthController{
		sessions:    sessions,
		catalog:     catalog,
		emailDomain: emailDomain,
	}
}

type loginRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login creates the session user.
// POST /api/auth/login
func (ac *AuthController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid login payload")
		return
	}

	user, err := library.NewSessionUser(req.Name, req.Email, req.Password, ac.emailDomain)
	if err != nil {
		respondOperationError(c, err, "log in")
		return
	}

	if err := ac.sessions.Save(&user); err != nil {
		respondInternalError(c, err, "save session")
		return
	}

	if _, err := ac.catalog.SeedIfAbsent(entities.DefaultCatalog()); err != nil {
		respondInternalError(c, err, "seed catalog")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user})
}

// Logout clears the session.
// POST /api/auth/logout
func (ac *AuthController) Logout(c *gin.Context) {
	if err := ac.sessions.Clear(); err != nil {
		respondInternalError(c, err, "clear session")
		return
	}
	respondSuccess(c, "logged out")
}
