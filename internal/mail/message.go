// Package mail builds MIME messages and hands them to an SMTP relay or
// Amazon SES.
package mail

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/gabriel-vasile/mimetype"
)

// Attachment is a file carried by a message. Content is either given inline
// or read from Path when the message is built. A non-empty ContentID makes
// the part inline so HTML can reference it as cid:<ContentID>.
type Attachment struct {
	Filename    string
	ContentType string
	Content     []byte
	Path        string
	ContentID   string
}

// Inline reports whether the attachment is referenced from the HTML body
func (a Attachment) Inline() bool {
	return a.ContentID != ""
}

// load resolves a path reference into content and fills a missing type
func (a Attachment) load() (Attachment, error) {
	if a.Content == nil && a.Path != "" {
		content, err := os.ReadFile(a.Path)
		if err != nil {
			return a, fmt.Errorf("failed to read attachment %s: %w", a.Path, err)
		}
		a.Content = content
	}
	if a.ContentType == "" {
		a.ContentType = mimetype.Detect(a.Content).String()
	}
	return a, nil
}

// Message is one outbound email
type Message struct {
	From        string
	To          string
	Subject     string
	HTML        string
	Text        string
	Attachments []Attachment
}

var (
	ErrNoSender    = errors.New("message has no sender")
	ErrNoRecipient = errors.New("message has no recipient")
)

// Validate checks the envelope fields
func (m *Message) Validate() error {
	if m.From == "" {
		return ErrNoSender
	}
	if m.To == "" {
		return ErrNoRecipient
	}
	return nil
}

// Transport delivers a message. Implementations must respect ctx deadlines.
type Transport interface {
	Send(ctx context.Context, msg *Message) error
	Name() string
}
