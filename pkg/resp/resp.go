package resp

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/godz1llla/DAMDI-QR-ORG/services"
)

func OK(c *gin.Context, body gin.H) {
	if body == nil {
		body = gin.H{}
	}
	body["success"] = true
	c.JSON(http.StatusOK, body)
}

func Message(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": msg})
}

func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": msg})
}

func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": msg})
}

func Forbidden(c *gin.Context, msg string) {
	c.JSON(http.StatusForbidden, gin.H{"success": false, "message": msg})
}

func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, gin.H{"success": false, "message": msg})
}

func ServerError(c *gin.Context, err error) {
	log.Println("internal error:", err)
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "internal server error"})
}

// limit_reached is HTTP 200 on purpose: the dashboard reads the structured
// body and offers a plan upgrade instead of showing an error page.
func limitReached(c *gin.Context, e *services.LimitReachedError) {
	c.JSON(http.StatusOK, gin.H{
		"success":       false,
		"message":       "limit_reached",
		"limit_type":    e.LimitType,
		"current_count": e.CurrentCount,
		"limit":         e.Limit,
		"plan":          e.Plan,
	})
}

// Error maps a service error to the wire taxonomy.
func Error(c *gin.Context, err error) {
	var limit *services.LimitReachedError
	var validation *services.ValidationError
	switch {
	case errors.As(err, &limit):
		limitReached(c, limit)
	case errors.As(err, &validation):
		BadRequest(c, validation.Msg)
	case errors.Is(err, services.ErrNotFound):
		NotFound(c, "not found")
	case errors.Is(err, services.ErrForbidden):
		Forbidden(c, "forbidden")
	case errors.Is(err, services.ErrConflict):
		BadRequest(c, "already exists")
	case errors.Is(err, services.ErrInvalidMenuItem):
		BadRequest(c, "invalid menu item")
	case errors.Is(err, services.ErrInvalidTransition):
		BadRequest(c, "invalid status transition")
	default:
		ServerError(c, err)
	}
}
