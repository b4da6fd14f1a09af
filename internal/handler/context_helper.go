package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	appErrors "github.com/scholardesk/research-hub-api/pkg/errors"
	"github.com/scholardesk/research-hub-api/pkg/response"
)

// idParam parses the :id path segment. Non-numeric IDs cannot match any row,
// so they surface as the same not-found the lookup would produce.
func idParam(c *gin.Context, notFoundMsg string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, notFoundMsg))
		return 0, false
	}
	return id, true
}
