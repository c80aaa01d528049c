// Package templates renders the HTML bodies of booking and contact emails
// from embedded Liquid templates.
package templates

import (
	"embed"
	"fmt"
	"time"

	"github.com/osa911/astrobooking/internal/api/sanitization"
	"github.com/osa911/astrobooking/internal/models"
	"github.com/osteele/liquid"
)

// LogoContentID links the layout's <img> to the inline logo part
const LogoContentID = "logo"

const brand = "AstroSharma"

//go:embed files/*.liquid
var files embed.FS

// Audience selects which copy of an email is rendered
type Audience int

const (
	AudienceAdmin Audience = iota
	AudienceUser
)

func (a Audience) String() string {
	if a == AudienceAdmin {
		return "admin"
	}
	return "user"
}

// Bodies holds the rendered HTML for both recipients of one submission
type Bodies struct {
	Admin string
	User  string
}

// Renderer renders email bodies. It is safe for concurrent use.
type Renderer struct {
	templates map[string]*liquid.Template
	now       func() time.Time
}

// Option customizes a Renderer
type Option func(*Renderer)

// WithClock fixes the clock used for the copyright year
func WithClock(now func() time.Time) Option {
	return func(r *Renderer) {
		r.now = now
	}
}

// NewRenderer parses every embedded template
func NewRenderer(opts ...Option) (*Renderer, error) {
	engine := liquid.NewEngine()

	r := &Renderer{
		templates: make(map[string]*liquid.Template),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}

	entries, err := files.ReadDir("files")
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	for _, entry := range entries {
		source, err := files.ReadFile("files/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("failed to read template %s: %w", entry.Name(), err)
		}
		tpl, parseErr := engine.ParseTemplate(source)
		if parseErr != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", entry.Name(), parseErr)
		}
		r.templates[entry.Name()] = tpl
	}

	return r, nil
}

// Document wraps a message and details fragment in the shared layout.
// title and message are inserted as markup; callers escape user text.
func (r *Renderer) Document(title, message, details, headerWidth string) (string, error) {
	return r.render("layout.liquid", liquid.Bindings{
		"title":        title,
		"message":      message,
		"details":      details,
		"header_width": headerWidth,
		"logo_cid":     LogoContentID,
		"brand":        brand,
		"year":         r.now().Year(),
	})
}

// Booking renders the admin and user bodies for a consultation booking.
// The details layout follows the submission kind.
func (r *Renderer) Booking(s models.Submission) (Bodies, error) {
	b, ok := s.Booking()
	if !ok {
		return Bodies{}, fmt.Errorf("submission %s is not a booking", s.Kind())
	}

	details := "booking_standard.liquid"
	if s.Kind() == models.KindMatchConsultation {
		details = "booking_match.liquid"
	}

	var bodies Bodies
	for _, audience := range []Audience{AudienceAdmin, AudienceUser} {
		bindings := bookingBindings(b, s.Kind(), audience)

		detailsHTML, err := r.render(details, bindings)
		if err != nil {
			return Bodies{}, err
		}
		messageHTML, err := r.render("booking_message.liquid", bindings)
		if err != nil {
			return Bodies{}, err
		}

		title := "Booking Confirmation"
		if audience == AudienceAdmin {
			title = "New Booking Received"
		}
		doc, err := r.Document(title, messageHTML, detailsHTML, "40%")
		if err != nil {
			return Bodies{}, err
		}
		bodies.set(audience, doc)
	}

	return bodies, nil
}

// Contact renders the admin and user bodies for a contact inquiry
func (r *Renderer) Contact(s models.Submission, hasAttachment bool) (Bodies, error) {
	c, ok := s.Contact()
	if !ok {
		return Bodies{}, fmt.Errorf("submission %s is not a contact inquiry", s.Kind())
	}

	var bodies Bodies
	for _, audience := range []Audience{AudienceAdmin, AudienceUser} {
		bindings := liquid.Bindings{
			"admin":          audience == AudienceAdmin,
			"has_attachment": hasAttachment,
			"fullName":       sanitization.EscapeHTML(c.FullName()),
			"email":          sanitization.EscapeHTML(c.Email),
			"message":        sanitization.EscapeHTML(c.Message),
		}

		detailsHTML, err := r.render("contact_details.liquid", bindings)
		if err != nil {
			return Bodies{}, err
		}
		messageHTML, err := r.render("contact_message.liquid", bindings)
		if err != nil {
			return Bodies{}, err
		}

		title := "Namaste " + sanitization.EscapeHTML(c.FirstName)
		if audience == AudienceAdmin {
			title = "New Contact Inquiry"
		}
		doc, err := r.Document(title, messageHTML, detailsHTML, "30%")
		if err != nil {
			return Bodies{}, err
		}
		bodies.set(audience, doc)
	}

	return bodies, nil
}

func (r *Renderer) render(name string, bindings liquid.Bindings) (string, error) {
	tpl, ok := r.templates[name]
	if !ok {
		return "", fmt.Errorf("template %s not found", name)
	}
	out, err := tpl.RenderString(bindings)
	if err != nil {
		return "", fmt.Errorf("failed to render %s: %w", name, err)
	}
	return out, nil
}

func (b *Bodies) set(audience Audience, html string) {
	if audience == AudienceAdmin {
		b.Admin = html
		return
	}
	b.User = html
}
