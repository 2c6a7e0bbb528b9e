package dto

// CreateFormationRequest represents formation creation data
type CreateFormationRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Duration    int    `json:"duration" binding:"required,gt=0"` // hours
}
