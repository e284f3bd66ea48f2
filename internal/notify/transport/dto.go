package transport

// ContactRequest is a storefront inquiry forwarded to the shop admin.
type ContactRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" validate:"omitempty,email,max=255"`
	Number  string `json:"number" validate:"omitempty,max=30"`
	Message string `json:"message" validate:"required,min=5,max=2000"`
}

type ContactResponse struct {
	Status string `json:"status"`
}
