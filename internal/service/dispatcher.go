package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/osa911/astrobooking/internal/logging"
	"github.com/osa911/astrobooking/internal/mail"
	"github.com/osa911/astrobooking/internal/models"
	"github.com/osa911/astrobooking/internal/templates"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	SubjectBookingUser = "Divine Journey Begins - Booking Received"
	SubjectContactUser = "We received your message - AstroSharma"
	SubjectProbe       = "AstroSharma Test Email"

	probeText = "This is a test email from your Astro application to verify SMTP settings."

	defaultSendTimeout = 20 * time.Second
	logoFilename       = "logo.jpg"
)

// DispatcherConfig holds the addresses and limits the dispatcher works with
type DispatcherConfig struct {
	From        string
	Admin       string
	LogoPath    string
	SendTimeout time.Duration
}

// Dispatcher turns a submission into the admin and user emails and sends
// them, admin first. The first failed send aborts the pair and nothing is
// retried.
type Dispatcher struct {
	cfg       DispatcherConfig
	transport mail.Transport
	renderer  *templates.Renderer
	logger    *logging.Logger
	tracer    trace.Tracer
}

func NewDispatcher(cfg DispatcherConfig, transport mail.Transport, renderer *templates.Renderer, logger *logging.Logger) *Dispatcher {
	if cfg.SendTimeout <= 0 {
		cfg.SendTimeout = defaultSendTimeout
	}
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Dispatcher{
		cfg:       cfg,
		transport: transport,
		renderer:  renderer,
		logger:    logger,
		tracer:    otel.Tracer("github.com/osa911/astrobooking/internal/service"),
	}
}

// BookingAdminSubject names the client, or the match when two profiles
// were submitted.
func BookingAdminSubject(sub models.Submission) string {
	b, _ := sub.Booking()
	name := b.FullName
	if sub.Kind() == models.KindMatchConsultation {
		name = "Marriage Match"
	}
	return fmt.Sprintf("New Application: %s - %s", name, b.ConsultationType)
}

func ContactAdminSubject(sub models.Submission) string {
	c, _ := sub.Contact()
	return "New Contact Inquiry: " + c.FullName()
}

// SendBooking mails a consultation booking. upload may be nil.
func (d *Dispatcher) SendBooking(ctx context.Context, sub models.Submission, upload *models.Attachment) error {
	bodies, err := d.renderer.Booking(sub)
	if err != nil {
		return err
	}
	return d.sendPair(ctx, sub, bodies, BookingAdminSubject(sub), SubjectBookingUser, upload)
}

// SendContact mails a contact inquiry. upload may be nil.
func (d *Dispatcher) SendContact(ctx context.Context, sub models.Submission, upload *models.Attachment) error {
	bodies, err := d.renderer.Contact(sub, upload != nil)
	if err != nil {
		return err
	}
	return d.sendPair(ctx, sub, bodies, ContactAdminSubject(sub), SubjectContactUser, upload)
}

// SendProbe sends a plain text message to check the transport settings
func (d *Dispatcher) SendProbe(ctx context.Context, to string) error {
	msg := &mail.Message{
		From:    d.cfg.From,
		To:      to,
		Subject: SubjectProbe,
		Text:    probeText,
	}
	return d.send(ctx, "probe", msg)
}

func (d *Dispatcher) sendPair(ctx context.Context, sub models.Submission, bodies templates.Bodies, adminSubject, userSubject string, upload *models.Attachment) error {
	if d.cfg.Admin == "" {
		return fmt.Errorf("%w: admin address is not configured", ErrTransport)
	}

	adminAttachments := d.logo()
	if upload != nil {
		adminAttachments = append(adminAttachments, mail.Attachment{
			Filename:    upload.Filename,
			ContentType: upload.ContentType,
			Content:     upload.Content,
		})
	}

	admin := &mail.Message{
		From:        d.cfg.From,
		To:          d.cfg.Admin,
		Subject:     adminSubject,
		HTML:        bodies.Admin,
		Attachments: adminAttachments,
	}
	user := &mail.Message{
		From:        d.cfg.From,
		To:          sub.RecipientEmail(),
		Subject:     userSubject,
		HTML:        bodies.User,
		Attachments: d.logo(),
	}

	if err := d.send(ctx, templates.AudienceAdmin.String(), admin); err != nil {
		return err
	}
	return d.send(ctx, templates.AudienceUser.String(), user)
}

func (d *Dispatcher) logo() []mail.Attachment {
	if d.cfg.LogoPath == "" {
		return nil
	}
	return []mail.Attachment{{
		Filename:  logoFilename,
		Path:      d.cfg.LogoPath,
		ContentID: templates.LogoContentID,
	}}
}

func (d *Dispatcher) send(ctx context.Context, audience string, msg *mail.Message) error {
	ctx, cancel := context.WithTimeout(ctx, d.cfg.SendTimeout)
	defer cancel()

	ctx, span := d.tracer.Start(ctx, "mail.send", trace.WithAttributes(
		attribute.String("mail.audience", audience),
		attribute.String("mail.transport", d.transport.Name()),
		attribute.Int("mail.attachments", len(msg.Attachments)),
	))
	defer span.End()

	start := time.Now()
	if err := d.transport.Send(ctx, msg); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "send failed")
		d.logger.Error("Failed to send %s email via %s after %v: %v", audience, d.transport.Name(), time.Since(start), err)
		if errors.Is(err, ErrTransport) {
			return err
		}
		return fmt.Errorf("%w: %s email: %w", ErrTransport, audience, err)
	}

	d.logger.Info("Sent %s email via %s in %v", audience, d.transport.Name(), time.Since(start))
	return nil
}
