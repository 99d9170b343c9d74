package contact

// CreateContactDTO is the request body for a contact form submission.
type CreateContactDTO struct {
	Name    string  `json:"name"    binding:"required,min=2,max=100"`
	Email   string  `json:"email"   binding:"required,email"`
	Phone   *string `json:"phone"   binding:"omitempty,max=20"`
	Subject string  `json:"subject" binding:"required"`
	Message string  `json:"message" binding:"required,min=10,max=2000"`
}

// ListQuery holds query params for listing submissions.
type ListQuery struct {
	Limit int64 `form:"limit,default=50"`
	Skip  int64 `form:"skip,default=0"`
}
