package middleware

import (
	"regexp"

	"reelskills-backend/internal/delivery/http/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// Client supplied ids are echoed only when they look like ids.
var requestIDPattern = regexp.MustCompile(`^[A-Za-z0-9._-]{8,64}$`)

// RequestID tags every request with an id, exposed in the response envelope
// and the X-Request-ID header.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if !requestIDPattern.MatchString(id) {
			id = uuid.NewString()
		}
		c.Set(response.RequestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}
