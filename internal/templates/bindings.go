package templates

import (
	"strings"

	"github.com/osa911/astrobooking/internal/api/sanitization"
	"github.com/osa911/astrobooking/internal/models"
	"github.com/osteele/liquid"
)

// text escapes a value for the template. Empty values become nil so Liquid
// treats them as false in conditionals.
func text(value string) any {
	if value == "" {
		return nil
	}
	return sanitization.EscapeHTML(value)
}

func clock(value string) any {
	return text(FormatTime(value))
}

func profile(p models.Profile) any {
	if p.IsZero() {
		return nil
	}
	return map[string]any{
		"name":    text(p.Name),
		"dob":     text(p.DOB),
		"time":    clock(p.Time),
		"place":   text(p.Place),
		"pincode": text(p.Pincode),
	}
}

func bookingBindings(b models.Booking, kind models.SubmissionKind, audience Audience) liquid.Bindings {
	question := b.Question
	if strings.TrimSpace(question) == "N/A" {
		question = ""
	}

	bindings := liquid.Bindings{
		"admin":             audience == AudienceAdmin,
		"fullName":          text(b.FullName),
		"consultationType":  text(b.ConsultationType),
		"price":             text(b.Price),
		"phone":             text(b.Phone),
		"email":             text(b.Email),
		"utrNumber":         text(b.UTRNumber),
		"dob":               text(b.DOB),
		"birthTime":         clock(b.BirthTime),
		"birthPlace":        text(b.BirthPlace),
		"pincode":           text(b.Pincode),
		"question":          text(question),
		"startDate":         text(b.StartDate),
		"endDate":           text(b.EndDate),
		"muhurthamLocation": text(b.MuhurthamLocation),
		"extras":            extras(b, kind),
	}

	if kind == models.KindMatchConsultation {
		bindings["girl"] = profile(b.Girl)
		bindings["boy"] = profile(b.Boy)
		bindings["girl2"] = profile(b.Girl2)
		bindings["boy2"] = profile(b.Boy2)
	}

	return bindings
}

// extras lists submitted fields the chosen layout has no dedicated row for,
// so the admin copy still carries everything the client sent.
func extras(b models.Booking, kind models.SubmissionKind) []map[string]any {
	var rows []map[string]any
	add := func(label, value string) {
		if value == "" {
			return
		}
		rows = append(rows, map[string]any{"label": label, "value": sanitization.EscapeHTML(value)})
	}

	switch kind {
	case models.KindMatchConsultation:
		add("Service", b.ConsultationType)
		add("DOB", b.DOB)
		add("Time", FormatTime(b.BirthTime))
		add("Place", b.BirthPlace)
		add("Pincode", b.Pincode)
	default:
		for _, p := range []struct {
			label   string
			profile models.Profile
		}{
			{"Girl", b.Girl},
			{"Boy", b.Boy},
			{"Second Girl", b.Girl2},
			{"Second Boy", b.Boy2},
		} {
			add(p.label+" Name", p.profile.Name)
			add(p.label+" DOB", p.profile.DOB)
			add(p.label+" Time", FormatTime(p.profile.Time))
			add(p.label+" Place", p.profile.Place)
			add(p.label+" Pincode", p.profile.Pincode)
		}
	}

	return rows
}
