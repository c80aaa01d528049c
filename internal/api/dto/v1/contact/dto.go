package contact

import "github.com/osa911/astrobooking/internal/models"

// ContactRequest represents a contact form submission
type ContactRequest struct {
	FirstName string `form:"firstName" json:"firstName" binding:"required,min=2,max=50"`
	LastName  string `form:"lastName" json:"lastName" binding:"required,min=2,max=50"`
	Email     string `form:"email" json:"email" binding:"required,email"`
	Message   string `form:"message" json:"message" binding:"required,min=3,max=1000"`
}

// ToModel converts the validated request into the domain contact
func (r *ContactRequest) ToModel() models.Contact {
	return models.Contact{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Message:   r.Message,
	}
}
