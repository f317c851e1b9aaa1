package pagination

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// Params holds pagination parameters from a request
type Params struct {
	Limit  int
	Offset int
}

// parses limit/offset query parameters with defaults and a cap
func FromQuery(c *gin.Context, defaultLimit, maxLimit int) Params {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))   //nolint:errcheck
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0")) //nolint:errcheck

	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	if offset < 0 {
		offset = 0
	}

	return Params{
		Limit:  limit,
		Offset: offset,
	}
}
