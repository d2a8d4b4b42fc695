package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/culibrary/portal/internal/auth"
	"github.com/culibrary/portal/internal/library"
)

// ProfileController reads and edits the session user's profile.
type ProfileController struct {
	sessions    SessionStore
	emailDomain string
}

func NewProfileController(sessions SessionStore, emailDomain string) *ProfileController {
	return &ProfileController{
		sessions:    sessions,
		emailDomain: emailDomain,
	}
}

// Show returns the session user.
// GET /api/profile
func (pc *ProfileController) Show(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"user": auth.CurrentUser(c)})
}

type profileRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// Update applies a profile edit and persists the session user.
// PUT /api/profile
func (pc *ProfileController) Update(c *gin.Context) {
	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid profile payload")
		return
	}
	user := auth.CurrentUser(c)

	updated, err := library.ApplyProfileEdit(*user, library.ProfileEdit{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	}, pc.emailDomain)
	if err != nil {
		respondOperationError(c, err, "update profile")
		return
	}

	if err := pc.sessions.Save(&updated); err != nil {
		respondInternalError(c, err, "save session")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": updated})
}
