package dto

import "github.com/mbenali/gestion-etudiants/internal/app/models"

// CreateStudentRequest represents student creation data.
// Role defaults to "user" when omitted; any value outside the closed
// enum is rejected at binding time.
type CreateStudentRequest struct {
	Name         string  `json:"name" binding:"required"`
	Age          int     `json:"age" binding:"required,gt=0"`
	Major        *string `json:"major"`
	Email        string  `json:"email" binding:"required,email"`
	Password     string  `json:"password" binding:"required"`
	Role         string  `json:"role" binding:"omitempty,oneof=user admin"`
	DepartmentID int64   `json:"departmentId" binding:"required,gt=0"`
}

// UpdateStudentRequest replaces every stored field; partial updates are
// not supported.
type UpdateStudentRequest = CreateStudentRequest

// StudentResponse represents a student without the password hash
type StudentResponse struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Age          int     `json:"age"`
	Major        *string `json:"major,omitempty"`
	Email        string  `json:"email"`
	Role         string  `json:"role"`
	DepartmentID int64   `json:"departmentId"`
}

// NewStudentResponse maps a student model to its API shape
func NewStudentResponse(s *models.Student) *StudentResponse {
	if s == nil {
		return nil
	}
	return &StudentResponse{
		ID:           s.ID,
		Name:         s.Name,
		Age:          s.Age,
		Major:        s.Major,
		Email:        s.Email,
		Role:         string(s.Role),
		DepartmentID: s.DepartmentID,
	}
}

// NewStudentResponseList maps a slice of students
func NewStudentResponseList(students []*models.Student) []*StudentResponse {
	out := make([]*StudentResponse, 0, len(students))
	for _, s := range students {
		out = append(out, NewStudentResponse(s))
	}
	return out
}
