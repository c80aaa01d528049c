package models

import "strings"

// SubmissionKind tags which form shape a submission was received as
type SubmissionKind string

const (
	KindStandardConsultation SubmissionKind = "standard_consultation"
	KindMatchConsultation    SubmissionKind = "match_consultation"
	KindContactInquiry       SubmissionKind = "contact_inquiry"
)

// Profile is one person's birth details in a compatibility match
type Profile struct {
	Name    string
	DOB     string
	Time    string
	Place   string
	Pincode string
}

// IsZero reports whether every field of the profile was left blank
func (p Profile) IsZero() bool {
	return p == Profile{}
}

// Booking holds the fields of a consultation request
type Booking struct {
	FullName          string
	DOB               string
	BirthTime         string
	BirthPlace        string
	Pincode           string
	Question          string
	Phone             string
	Email             string
	ConsultationType  string
	Price             string
	UTRNumber         string
	StartDate         string
	EndDate           string
	MuhurthamLocation string

	Girl  Profile
	Boy   Profile
	Girl2 Profile
	Boy2  Profile
}

// IsMatch reports whether both primary match profiles are named
func (b Booking) IsMatch() bool {
	return strings.TrimSpace(b.Girl.Name) != "" && strings.TrimSpace(b.Boy.Name) != ""
}

// Contact holds the fields of a contact form inquiry
type Contact struct {
	FirstName string
	LastName  string
	Email     string
	Message   string
}

// FullName joins first and last name
func (c Contact) FullName() string {
	return c.FirstName + " " + c.LastName
}

// Submission is a validated, read-only form submission. The variant is
// decided once by the constructor and never re-derived downstream.
type Submission struct {
	kind    SubmissionKind
	booking Booking
	contact Contact
}

// NewBookingSubmission tags a booking as a standard or match consultation
func NewBookingSubmission(b Booking) Submission {
	kind := KindStandardConsultation
	if b.IsMatch() {
		kind = KindMatchConsultation
	}
	return Submission{kind: kind, booking: b}
}

// NewContactSubmission wraps a contact inquiry
func NewContactSubmission(c Contact) Submission {
	return Submission{kind: KindContactInquiry, contact: c}
}

func (s Submission) Kind() SubmissionKind {
	return s.kind
}

// Booking returns the booking fields for either consultation kind
func (s Submission) Booking() (Booking, bool) {
	return s.booking, s.kind == KindStandardConsultation || s.kind == KindMatchConsultation
}

// Contact returns the contact fields for a contact inquiry
func (s Submission) Contact() (Contact, bool) {
	return s.contact, s.kind == KindContactInquiry
}

// RecipientEmail is the submitter's own address
func (s Submission) RecipientEmail() string {
	if s.kind == KindContactInquiry {
		return s.contact.Email
	}
	return s.booking.Email
}
