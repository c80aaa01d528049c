package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/osa911/astrobooking/internal/models"
	"github.com/osa911/astrobooking/internal/service"

	"github.com/gin-gonic/gin"
)

// Mailer sends the admin and user emails for a submission
type Mailer interface {
	SendBooking(ctx context.Context, sub models.Submission, upload *models.Attachment) error
	SendContact(ctx context.Context, sub models.Submission, upload *models.Attachment) error
}

// readUpload returns the checked attachment in field, or nil when the
// request carries none.
func readUpload(c *gin.Context, guard *service.AttachmentGuard, field, fallbackName string) (*models.Attachment, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, err
		}
		// missing file, or a body that is not multipart at all
		return nil, nil
	}
	return guard.CheckUpload(fh, fallbackName)
}

func bindError(err error) error {
	return fmt.Errorf("%w: %w", service.ErrValidation, err)
}
