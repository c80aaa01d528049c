package service

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/osa911/astrobooking/internal/logging"
	"github.com/osa911/astrobooking/internal/mail"
	"github.com/osa911/astrobooking/internal/models"
	"github.com/osa911/astrobooking/internal/templates"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTransport records messages and fails the send numbered failAt (1-based)
type fakeTransport struct {
	mu       sync.Mutex
	sent     []*mail.Message
	failAt   int
	err      error
	deadline time.Duration
	calls    int
}

func (f *fakeTransport) Name() string { return "fake" }

func (f *fakeTransport) Send(ctx context.Context, msg *mail.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls++
	if d, ok := ctx.Deadline(); ok {
		f.deadline = time.Until(d)
	}
	if f.calls == f.failAt {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

func newTestDispatcher(t *testing.T, transport mail.Transport, cfg DispatcherConfig) *Dispatcher {
	t.Helper()
	renderer, err := templates.NewRenderer()
	require.NoError(t, err)
	return NewDispatcher(cfg, transport, renderer, logging.NewWriterLogger(&bytes.Buffer{}, "error"))
}

func writeLogo(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "logo_icon.jpg")
	require.NoError(t, os.WriteFile(path, jpegSample, 0o600))
	return path
}

func sampleBooking() models.Submission {
	return models.NewBookingSubmission(models.Booking{
		FullName:         "Test User",
		Phone:            "9999999999",
		Email:            "a@b.com",
		ConsultationType: "Quick Guidance",
		UTRNumber:        "TEST-1",
	})
}

func TestSendBookingSendsAdminThenUser(t *testing.T) {
	transport := &fakeTransport{}
	d := newTestDispatcher(t, transport, DispatcherConfig{
		From:     "bookings@astro.example",
		Admin:    "admin@astro.example",
		LogoPath: writeLogo(t),
	})

	upload := &models.Attachment{Filename: "screenshot.jpg", ContentType: "image/jpeg", Content: jpegSample}
	require.NoError(t, d.SendBooking(context.Background(), sampleBooking(), upload))

	require.Len(t, transport.sent, 2)
	admin, user := transport.sent[0], transport.sent[1]

	assert.Equal(t, "admin@astro.example", admin.To)
	assert.Equal(t, "New Application: Test User - Quick Guidance", admin.Subject)
	require.Len(t, admin.Attachments, 2)
	assert.Equal(t, templates.LogoContentID, admin.Attachments[0].ContentID)
	assert.Equal(t, "screenshot.jpg", admin.Attachments[1].Filename)
	assert.Contains(t, admin.HTML, "cid:"+admin.Attachments[0].ContentID)

	assert.Equal(t, "a@b.com", user.To)
	assert.Equal(t, SubjectBookingUser, user.Subject)
	require.Len(t, user.Attachments, 1)
	assert.Equal(t, templates.LogoContentID, user.Attachments[0].ContentID)

	for _, msg := range transport.sent {
		assert.Equal(t, "bookings@astro.example", msg.From)
	}
}

func TestSendBookingMatchSubject(t *testing.T) {
	transport := &fakeTransport{}
	d := newTestDispatcher(t, transport, DispatcherConfig{From: "f@x.com", Admin: "admin@x.com"})

	sub := models.NewBookingSubmission(models.Booking{
		FullName:         "Asha",
		Email:            "a@b.com",
		ConsultationType: "Kundli Milan",
		Girl:             models.Profile{Name: "G"},
		Boy:              models.Profile{Name: "B"},
	})
	require.NoError(t, d.SendBooking(context.Background(), sub, nil))

	require.Len(t, transport.sent, 2)
	assert.Equal(t, "New Application: Marriage Match - Kundli Milan", transport.sent[0].Subject)
	assert.Empty(t, transport.sent[0].Attachments)
}

func TestSendContact(t *testing.T) {
	transport := &fakeTransport{}
	d := newTestDispatcher(t, transport, DispatcherConfig{From: "f@x.com", Admin: "admin@x.com", LogoPath: writeLogo(t)})

	sub := models.NewContactSubmission(models.Contact{FirstName: "Ravi", LastName: "K", Email: "r@x.com", Message: "Hello"})
	require.NoError(t, d.SendContact(context.Background(), sub, nil))

	require.Len(t, transport.sent, 2)
	assert.Equal(t, "New Contact Inquiry: Ravi K", transport.sent[0].Subject)
	assert.Len(t, transport.sent[0].Attachments, 1)
	assert.Equal(t, "r@x.com", transport.sent[1].To)
	assert.Equal(t, SubjectContactUser, transport.sent[1].Subject)
}

func TestAdminFailureAbortsUserEmail(t *testing.T) {
	sendErr := errors.New("connection refused")
	transport := &fakeTransport{failAt: 1, err: sendErr}
	d := newTestDispatcher(t, transport, DispatcherConfig{From: "f@x.com", Admin: "admin@x.com"})

	err := d.SendBooking(context.Background(), sampleBooking(), nil)
	assert.ErrorIs(t, err, ErrTransport)
	assert.ErrorIs(t, err, sendErr)
	assert.Equal(t, 1, transport.calls)
	assert.Empty(t, transport.sent)
}

func TestUserFailureAfterAdminSent(t *testing.T) {
	transport := &fakeTransport{failAt: 2, err: errors.New("mailbox unavailable")}
	d := newTestDispatcher(t, transport, DispatcherConfig{From: "f@x.com", Admin: "admin@x.com"})

	err := d.SendBooking(context.Background(), sampleBooking(), nil)
	assert.ErrorIs(t, err, ErrTransport)
	assert.Equal(t, 2, transport.calls)
	assert.Len(t, transport.sent, 1)
}

func TestMissingAdminAddress(t *testing.T) {
	transport := &fakeTransport{}
	d := newTestDispatcher(t, transport, DispatcherConfig{From: "f@x.com"})

	err := d.SendBooking(context.Background(), sampleBooking(), nil)
	assert.ErrorIs(t, err, ErrTransport)
	assert.Zero(t, transport.calls)
}

func TestSendTimeoutApplied(t *testing.T) {
	transport := &fakeTransport{}
	d := newTestDispatcher(t, transport, DispatcherConfig{From: "f@x.com", Admin: "admin@x.com", SendTimeout: 3 * time.Second})

	require.NoError(t, d.SendBooking(context.Background(), sampleBooking(), nil))
	assert.Greater(t, transport.deadline, time.Duration(0))
	assert.LessOrEqual(t, transport.deadline, 3*time.Second)
}

func TestSendProbe(t *testing.T) {
	transport := &fakeTransport{}
	d := newTestDispatcher(t, transport, DispatcherConfig{From: "f@x.com"})

	require.NoError(t, d.SendProbe(context.Background(), "me@x.com"))
	require.Len(t, transport.sent, 1)
	assert.Equal(t, SubjectProbe, transport.sent[0].Subject)
	assert.NotEmpty(t, transport.sent[0].Text)
	assert.Empty(t, transport.sent[0].HTML)
}
