package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/errors"
)

// ParseIDParam parses a numeric ID from a URL path parameter.
// entityName is used in error messages (e.g., "ticket").
func ParseIDParam(c *gin.Context, paramName, entityName string) (uint, error) {
	raw := c.Param(paramName)
	if raw == "" {
		return 0, errors.NewValidationError(entityName + " ID is required")
	}

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid " + entityName + " ID")
	}

	return uint(id), nil
}

// Pagination holds parsed offset pagination parameters.
type Pagination struct {
	Skip  int
	Limit int
}

// ParsePagination parses skip/limit query parameters with defaults applied.
// Skip defaults to 0 and is never negative; limit defaults to DefaultListLimit
// and is clamped to [1, MaxListLimit].
func ParsePagination(c *gin.Context) Pagination {
	skip := parseQueryInt(c, "skip", 0)
	if skip < 0 {
		skip = 0
	}

	limit := parseQueryInt(c, "limit", constants.DefaultListLimit)
	if limit < 1 {
		limit = constants.DefaultListLimit
	}
	if limit > constants.MaxListLimit {
		limit = constants.MaxListLimit
	}

	return Pagination{Skip: skip, Limit: limit}
}

// parseQueryInt parses an integer query parameter with a default value.
func parseQueryInt(c *gin.Context, key string, defaultVal int) int {
	if val := c.Query(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}
