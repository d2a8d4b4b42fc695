package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/culibrary/portal/internal/auth"
	"github.com/culibrary/portal/internal/entities"
	"github.com/culibrary/portal/internal/library"
)

// ComplaintsController files and lists complaints for the session user.
type ComplaintsController struct {
	complaints ComplaintStore
}

func NewComplaintsController(complaints ComplaintStore) *ComplaintsController {
	return &ComplaintsController{complaints: complaints}
}

type complaintRequest struct {
	Type    string `json:"type"`
	Other   string `json:"other"`
	Details string `json:"details"`
}

// Submit appends a complaint to the log.
// POST /api/complaints
func (cc *ComplaintsController) Submit(c *gin.Context) {
	var req complaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid complaint payload")
		return
	}
	user := auth.CurrentUser(c)

	complaint, err := library.NewComplaint(user.Email, req.Type, req.Other, req.Details, time.Now())
	if err != nil {
		respondOperationError(c, err, "file complaint")
		return
	}

	if err := cc.complaints.Append(complaint); err != nil {
		respondInternalError(c, err, "save complaint")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"complaint": complaint})
}

// List returns every filed complaint in append order.
// GET /api/complaints
func (cc *ComplaintsController) List(c *gin.Context) {
	complaints, err := cc.complaints.ListAll()
	if err != nil {
		respondInternalError(c, err, "list complaints")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"complaints": complaints,
		"types":      entities.ComplaintTypes,
	})
}
