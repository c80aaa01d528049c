package middleware

import (
	"fmt"
	"net/http"

	"github.com/osa911/astrobooking/internal/api/dto/common"

	"github.com/gin-gonic/gin"
)

// multipartOverhead leaves room for form fields and part headers around
// the largest allowed upload
const multipartOverhead = 1 << 20

// BodyLimit caps request bodies before anything parses them. Reads past the
// limit fail with *http.MaxBytesError, which handlers report as 413.
func BodyLimit(maxUploadBytes int64) gin.HandlerFunc {
	limit := maxUploadBytes + multipartOverhead

	return func(c *gin.Context) {
		if c.Request.ContentLength > limit {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge,
				common.NewErrorResponse(fmt.Sprintf(common.MsgFileTooLargeFormat, maxUploadBytes>>20)))
			return
		}
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		}
		c.Next()
	}
}
