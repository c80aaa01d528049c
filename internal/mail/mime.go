package mail

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"mime/quotedprintable"
	netmail "net/mail"
	"net/textproto"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/osa911/astrobooking/internal/api/sanitization"
)

const lineLength = 76

// Build renders msg as an RFC 5322 message. The HTML body and its inline
// parts travel in a multipart/related part nested inside multipart/mixed,
// followed by the regular attachments.
func Build(msg *Message, now time.Time) ([]byte, error) {
	if err := msg.Validate(); err != nil {
		return nil, err
	}

	var inline, attached []Attachment
	for _, a := range msg.Attachments {
		loaded, err := a.load()
		if err != nil {
			return nil, err
		}
		if loaded.Inline() {
			inline = append(inline, loaded)
		} else {
			attached = append(attached, loaded)
		}
	}

	var buf bytes.Buffer
	mixed := multipart.NewWriter(&buf)
	if err := mixed.SetBoundary(newBoundary()); err != nil {
		return nil, err
	}

	header := func(key, value string) {
		fmt.Fprintf(&buf, "%s: %s\r\n", key, value)
	}
	header("From", sanitization.SanitizeHeader(msg.From))
	header("To", sanitization.SanitizeHeader(msg.To))
	header("Subject", mime.QEncoding.Encode("utf-8", sanitization.SanitizeHeader(msg.Subject)))
	header("Date", now.Format(time.RFC1123Z))
	header("Message-ID", fmt.Sprintf("<%s@%s>", uuid.New().String(), domainOf(msg.From)))
	header("MIME-Version", "1.0")
	header("Content-Type", mime.FormatMediaType("multipart/mixed", map[string]string{"boundary": mixed.Boundary()}))
	buf.WriteString("\r\n")

	relatedBoundary := newBoundary()
	relatedPart, err := mixed.CreatePart(textproto.MIMEHeader{
		"Content-Type": {mime.FormatMediaType("multipart/related", map[string]string{"boundary": relatedBoundary})},
	})
	if err != nil {
		return nil, err
	}
	if err := writeRelated(relatedPart, relatedBoundary, msg, inline); err != nil {
		return nil, err
	}

	for _, a := range attached {
		if err := writeBinaryPart(mixed, a, "attachment"); err != nil {
			return nil, err
		}
	}

	if err := mixed.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeRelated(w io.Writer, boundary string, msg *Message, inline []Attachment) error {
	related := multipart.NewWriter(w)
	if err := related.SetBoundary(boundary); err != nil {
		return err
	}

	body := msg.HTML
	contentType := "text/html; charset=UTF-8"
	if body == "" {
		body = msg.Text
		contentType = "text/plain; charset=UTF-8"
	}

	part, err := related.CreatePart(textproto.MIMEHeader{
		"Content-Type":              {contentType},
		"Content-Transfer-Encoding": {"quoted-printable"},
	})
	if err != nil {
		return err
	}
	qp := quotedprintable.NewWriter(part)
	if _, err := qp.Write([]byte(body)); err != nil {
		return err
	}
	if err := qp.Close(); err != nil {
		return err
	}

	for _, a := range inline {
		if err := writeBinaryPart(related, a, "inline"); err != nil {
			return err
		}
	}
	return related.Close()
}

func writeBinaryPart(w *multipart.Writer, a Attachment, disposition string) error {
	h := textproto.MIMEHeader{
		"Content-Type":              {a.ContentType},
		"Content-Transfer-Encoding": {"base64"},
	}
	if a.Filename != "" {
		h.Set("Content-Disposition", mime.FormatMediaType(disposition, map[string]string{"filename": a.Filename}))
	} else {
		h.Set("Content-Disposition", disposition)
	}
	if a.Inline() {
		h.Set("Content-ID", "<"+sanitization.SanitizeHeader(a.ContentID)+">")
	}

	part, err := w.CreatePart(h)
	if err != nil {
		return err
	}

	encoded := base64.StdEncoding.EncodeToString(a.Content)
	for len(encoded) > lineLength {
		if _, err := io.WriteString(part, encoded[:lineLength]+"\r\n"); err != nil {
			return err
		}
		encoded = encoded[lineLength:]
	}
	_, err = io.WriteString(part, encoded+"\r\n")
	return err
}

func newBoundary() string {
	return "=_" + strings.ReplaceAll(uuid.New().String(), "-", "")
}

func domainOf(address string) string {
	if parsed, err := netmail.ParseAddress(address); err == nil {
		address = parsed.Address
	}
	if at := strings.LastIndex(address, "@"); at >= 0 && at < len(address)-1 {
		return address[at+1:]
	}
	return "localhost"
}

// envelopeAddress strips a display name so the address can be used in
// MAIL FROM and RCPT TO.
func envelopeAddress(address string) (string, error) {
	parsed, err := netmail.ParseAddress(address)
	if err != nil {
		return "", fmt.Errorf("invalid address %q: %w", address, err)
	}
	return parsed.Address, nil
}
