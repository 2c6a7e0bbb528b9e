package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mbenali/gestion-etudiants/internal/app/models"
)

// IDepartmentRepository defines department persistence operations
type IDepartmentRepository interface {
	Create(ctx context.Context, department *models.Department) error
	GetByID(ctx context.Context, id int64) (*models.Department, error)
	GetAll(ctx context.Context) ([]*models.Department, error)
}

// IFormationRepository defines formation persistence operations
type IFormationRepository interface {
	Create(ctx context.Context, formation *models.Formation) error
	GetByID(ctx context.Context, id int64) (*models.Formation, error)
	GetAll(ctx context.Context) ([]*models.Formation, error)
}

// IStudentRepository defines student persistence operations
type IStudentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetByEmail(ctx context.Context, email string) (*models.Student, error)
	GetAll(ctx context.Context) ([]*models.Student, error)
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id int64) error
}

// IEnrollmentRepository defines student-formation association operations
type IEnrollmentRepository interface {
	Add(ctx context.Context, studentID, formationID int64) error
	Remove(ctx context.Context, studentID, formationID int64) error
	ListFormationsByStudentID(ctx context.Context, studentID int64) ([]*models.Formation, error)
}

// Repositories holds all repository instances
type Repositories struct {
	DepartmentRepository *DepartmentRepository
	FormationRepository  *FormationRepository
	StudentRepository    *StudentRepository
	EnrollmentRepository *EnrollmentRepository
}

// NewRepositories creates all repositories over a shared pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		DepartmentRepository: NewDepartmentRepository(db),
		FormationRepository:  NewFormationRepository(db),
		StudentRepository:    NewStudentRepository(db),
		EnrollmentRepository: NewEnrollmentRepository(db),
	}
}
