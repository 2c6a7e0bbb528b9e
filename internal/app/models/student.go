package models

// Student defines the student model based on the 'students' table
type Student struct {
	ID           int64    `json:"id" db:"id"`
	Name         string   `json:"name" db:"name"`
	Age          int      `json:"age" db:"age"`
	Major        *string  `json:"major,omitempty" db:"major"` // Pointer for potential NULL
	Email        string   `json:"email" db:"email"`
	Password     string   `json:"-" db:"password"` // bcrypt hash, excluded from JSON
	Role         RoleType `json:"role" db:"role"`
	DepartmentID int64    `json:"departmentId" db:"department_id"`

	// Relation (populated when needed)
	Department *Department `json:"department,omitempty"`
}

// IsAdmin reports whether the student holds the admin role
func (s *Student) IsAdmin() bool {
	return s.Role == RoleAdmin
}
