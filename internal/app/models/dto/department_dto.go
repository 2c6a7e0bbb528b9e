package dto

// CreateDepartmentRequest represents department creation data
type CreateDepartmentRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}
