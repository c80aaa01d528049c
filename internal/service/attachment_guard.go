package service

import (
	"fmt"
	"io"
	"mime/multipart"

	"github.com/gabriel-vasile/mimetype"
	"github.com/osa911/astrobooking/internal/api/sanitization"
	"github.com/osa911/astrobooking/internal/models"
)

// AllowedImageTypes lists the detected types an upload may have
var AllowedImageTypes = []string{"image/jpeg", "image/png", "image/webp"}

// AttachmentGuard decides whether an upload may be forwarded by mail. The
// decision is made from the file's bytes; the client's filename and
// Content-Type are never trusted.
type AttachmentGuard struct {
	maxBytes int64
}

func NewAttachmentGuard(maxBytes int64) *AttachmentGuard {
	return &AttachmentGuard{maxBytes: maxBytes}
}

// MaxBytes is the largest accepted upload
func (g *AttachmentGuard) MaxBytes() int64 {
	return g.maxBytes
}

// Check inspects content and returns the attachment to forward. The
// filename is sanitized, falling back to fallbackName.
func (g *AttachmentGuard) Check(filename string, content []byte, fallbackName string) (*models.Attachment, error) {
	if g.maxBytes > 0 && int64(len(content)) > g.maxBytes {
		return nil, fmt.Errorf("%w: %d bytes", ErrAttachmentTooLarge, len(content))
	}

	contentType, ok := detectImageType(content)
	if !ok {
		return nil, fmt.Errorf("%w: detected %s", ErrAttachmentRejected, mimetype.Detect(content).String())
	}

	return &models.Attachment{
		Filename:    sanitization.SanitizeFilename(filename, fallbackName),
		ContentType: contentType,
		Content:     content,
	}, nil
}

// CheckUpload reads a multipart file and runs Check on its contents
func (g *AttachmentGuard) CheckUpload(fh *multipart.FileHeader, fallbackName string) (*models.Attachment, error) {
	if g.maxBytes > 0 && fh.Size > g.maxBytes {
		return nil, fmt.Errorf("%w: %d bytes", ErrAttachmentTooLarge, fh.Size)
	}

	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload: %w", err)
	}
	defer f.Close()

	limit := g.maxBytes
	if limit <= 0 {
		limit = fh.Size
	}
	content, err := io.ReadAll(io.LimitReader(f, limit+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}

	return g.Check(fh.Filename, content, fallbackName)
}

// detectImageType walks up the detected type's ancestry so subtypes such as
// APNG count as their allowed parent.
func detectImageType(content []byte) (string, bool) {
	for m := mimetype.Detect(content); m != nil; m = m.Parent() {
		if mimetype.EqualsAny(m.String(), AllowedImageTypes...) {
			return m.String(), true
		}
	}
	return "", false
}
