package dto

// CompanyPayload mirrors the embedded company subdocument.
type CompanyPayload struct {
	Name         string `json:"name" binding:"required"`
	ContactEmail string `json:"contactEmail" binding:"required" validate:"omitempty,email"`
	ContactPhone string `json:"contactPhone" binding:"required"`
}

type CreateJobRequest struct {
	Title       string         `json:"title" binding:"required"`
	Type        string         `json:"type"`
	Description string         `json:"description" binding:"required"`
	Company     CompanyPayload `json:"company" binding:"required"`
}

// UpdateJobRequest merges only the fields present in the body;
// untouched fields keep their stored values.
type UpdateJobRequest struct {
	Title       *string         `json:"title"`
	Type        *string         `json:"type"`
	Description *string         `json:"description"`
	Company     *CompanyPayload `json:"company"`
}
