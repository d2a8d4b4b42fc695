package http

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/culibrary/portal/internal/library"
)

// ErrorResponse is the standard error format for all API errors.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse is a standard success response with optional data.
type SuccessResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

func respondNotFound(c *gin.Context, resource string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Error: resource + " not found"})
}

func respondInternalError(c *gin.Context, err error, action string) {
	log.Printf("ERROR: failed to %s: %v", action, err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to " + action})
}

func respondSuccess(c *gin.Context, message string) {
	c.JSON(http.StatusOK, SuccessResponse{Message: message})
}

// respondOperationError maps a core library error onto its HTTP status:
// validation failures are 400, a missing book 404, an already reserved book
// 409. Anything else is an internal error.
func respondOperationError(c *gin.Context, err error, action string) {
	switch {
	case library.IsValidationError(err):
		respondBadRequest(c, err.Error())
	case errors.Is(err, library.ErrBookNotFound):
		respondNotFound(c, "book")
	case errors.Is(err, library.ErrBookUnavailable):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	default:
		respondInternalError(c, err, action)
	}
}

// parseIDParam parses an integer path parameter, responding 400 on failure.
func parseIDParam(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		respondBadRequest(c, "invalid "+name+" parameter")
		return 0, false
	}
	return id, true
}
