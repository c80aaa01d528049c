package utils

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/osa911/astrobooking/internal/api/dto/common"
	"github.com/osa911/astrobooking/internal/logging"
	"github.com/osa911/astrobooking/internal/service"

	"github.com/gin-gonic/gin"
)

// HandleAPIError maps service errors to a status and a client-safe message.
// The error itself only reaches the server log.
func HandleAPIError(c *gin.Context, err error, maxUploadBytes int64) {
	status := http.StatusInternalServerError
	message := common.MsgInternalServerError

	var tooLarge *http.MaxBytesError
	switch {
	case errors.Is(err, service.ErrAttachmentRejected):
		status = http.StatusBadRequest
		message = common.MsgInvalidFileType
	case errors.Is(err, service.ErrAttachmentTooLarge), errors.As(err, &tooLarge):
		status = http.StatusRequestEntityTooLarge
		message = fmt.Sprintf(common.MsgFileTooLargeFormat, maxUploadBytes>>20)
	case errors.Is(err, service.ErrValidation):
		status = http.StatusBadRequest
		message = common.MsgInvalidForm
	}

	logger := logging.GetLogger()
	logger.LogHTTPError(
		c.Request.Method,
		c.Request.URL.Path,
		GetRealIP(c),
		status,
		message,
		err,
	)

	HandleError(c, status, message)
}
