package response

import (
	"log"
	"net/http"
	"strconv"

	"github.com/cubehq/dailycube-backend/pkg/apperror"
	"github.com/gin-gonic/gin"
)

// GetFID retrieves a numeric user id from a query parameter
func GetFID(c *gin.Context, param string) (uint64, error) {
	raw := c.Query(param)
	if raw == "" {
		return 0, apperror.ErrBadRequest
	}

	fid, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || fid == 0 {
		return 0, apperror.ErrInvalidInput
	}

	return fid, nil
}

// ResponseError standardized error response
func ResponseError(c *gin.Context, err error) {
	code := apperror.MapErrorToStatus(err)

	// Unclassified errors carry driver and infrastructure detail that
	// must stay in the logs, not in the response body.
	if code == http.StatusInternalServerError {
		log.Printf("[Internal Error]: %v", err)
		c.JSON(code, gin.H{"error": apperror.ErrInternal.Error()})
		return
	}

	c.JSON(code, gin.H{"error": err.Error()})
}
