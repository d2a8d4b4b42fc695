package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/culibrary/portal/internal/auth"
	"github.com/culibrary/portal/internal/library"
)

// RoomsController books study rooms and lists past bookings.
type RoomsController struct {
	bookings RoomBookingStore
}

func NewRoomsController(bookings RoomBookingStore) *RoomsController {
	return &RoomsController{bookings: bookings}
}

type roomBookingRequest struct {
	Date string `json:"date"`
	From string `json:"from"`
	To   string `json:"to"`
	// People defaults to 1 when omitted; an explicit non-positive value is
	// rejected.
	People *int `json:"people"`
}

// Book appends a room booking to the log.
// POST /api/rooms
func (rc *RoomsController) Book(c *gin.Context) {
	var req roomBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid booking payload")
		return
	}
	user := auth.CurrentUser(c)

	people := 1
	if req.People != nil {
		people = *req.People
	}

	booking, err := library.NewRoomBooking(user.Email, req.Date, req.From, req.To, people, time.Now())
	if err != nil {
		respondOperationError(c, err, "book room")
		return
	}

	if err := rc.bookings.Append(booking); err != nil {
		respondInternalError(c, err, "save booking")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"booking": booking})
}

// List returns every room booking in append order.
// GET /api/rooms
func (rc *RoomsController) List(c *gin.Context) {
	bookings, err := rc.bookings.ListAll()
	if err != nil {
		respondInternalError(c, err, "list bookings")
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}
