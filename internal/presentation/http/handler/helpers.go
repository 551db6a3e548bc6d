package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// parseIDParam extracts a numeric path parameter, returning 0 and false when
// the value is missing or not a positive integer.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
