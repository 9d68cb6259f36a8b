package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/inventa-app/inventa-api/internal/presentation/http/dto/response"
)

const dateLayout = "2006-01-02"

// parseIDParam parses the :id path parameter. On failure it writes the error
// response and returns false.
func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid ID format")
		return uuid.Nil, false
	}
	return id, true
}

// parseDate parses a YYYY-MM-DD date string
func parseDate(value string) (time.Time, error) {
	return time.Parse(dateLayout, value)
}

// parseOptionalDate parses a YYYY-MM-DD date string into a pointer, treating
// the empty string as absent.
func parseOptionalDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := parseDate(value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// limitQuery reads an integer "limit" query parameter with a default
func limitQuery(c *gin.Context, def int) int {
	var q struct {
		Limit int `form:"limit"`
	}
	if err := c.ShouldBindQuery(&q); err != nil || q.Limit <= 0 {
		return def
	}
	return q.Limit
}
