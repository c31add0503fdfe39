package dto

// ContactRequest is the public contact form payload. Everything beyond the
// name is optional; the relay forwards whatever was filled in.
type ContactRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=128"`
	Phone   string `json:"phone" validate:"omitempty,max=32"`
	Service string `json:"service" validate:"omitempty,max=128"`
	Message string `json:"message" validate:"omitempty,max=2000"`
}
