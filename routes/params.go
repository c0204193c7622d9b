package routes

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// parseIDParam coerces the :id path parameter into a positive integer. A
// non-numeric or non-positive value is a client error, answered here.
func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}

// internalError hides store failure detail from the caller and records it for
// the request logger.
func internalError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
