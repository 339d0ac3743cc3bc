package contact

type (
	ContactRequest struct {
		Name    string `json:"name" validate:"required,min=2,max=250"`
		Email   string `json:"email" validate:"required,email"`
		Phone   string `json:"phone" validate:"required,max=50"`
		Message string `json:"message" validate:"required"`
	}

	ContactResponse struct {
		Message string `json:"message"`
	}

	PageResponse struct {
		Title string `json:"title"`
		Body  string `json:"body"`
	}
)
