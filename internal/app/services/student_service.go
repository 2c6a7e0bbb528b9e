package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mbenali/gestion-etudiants/internal/app/models"
	"github.com/mbenali/gestion-etudiants/internal/app/models/dto"
	"github.com/mbenali/gestion-etudiants/internal/app/repositories"
	"github.com/mbenali/gestion-etudiants/internal/pkg/apperrors"
	"github.com/mbenali/gestion-etudiants/internal/pkg/auth"
)

// StudentService handles student CRUD operations
type StudentService struct {
	studentRepo    repositories.IStudentRepository
	departmentRepo repositories.IDepartmentRepository
	logger         zerolog.Logger
}

// NewStudentService creates a new student service instance
func NewStudentService(
	studentRepo repositories.IStudentRepository,
	departmentRepo repositories.IDepartmentRepository,
	logger zerolog.Logger,
) *StudentService {
	return &StudentService{
		studentRepo:    studentRepo,
		departmentRepo: departmentRepo,
		logger:         logger,
	}
}

// checkDepartmentExists validates the department reference before any row
// is written, so the caller gets a precise error instead of a raw foreign
// key rejection.
func (s *StudentService) checkDepartmentExists(ctx context.Context, departmentID int64) error {
	_, err := s.departmentRepo.GetByID(ctx, departmentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrDepartmentNotFound) {
			return apperrors.ErrDepartmentNotFound
		}
		return fmt.Errorf("error checking department: %w", err)
	}
	return nil
}

// roleFromRequest resolves the role field, defaulting to user
func roleFromRequest(role string) (models.RoleType, error) {
	if role == "" {
		return models.RoleUser, nil
	}
	r := models.RoleType(role)
	if !r.Valid() {
		return "", apperrors.ErrInvalidRole
	}
	return r, nil
}

// CreateStudent creates a new student with a hashed password
func (s *StudentService) CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error) {
	role, err := roleFromRequest(req.Role)
	if err != nil {
		return nil, err
	}

	if err := s.checkDepartmentExists(ctx, req.DepartmentID); err != nil {
		return nil, err
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	student := &models.Student{
		Name:         req.Name,
		Age:          req.Age,
		Major:        req.Major,
		Email:        req.Email,
		Password:     hashedPassword,
		Role:         role,
		DepartmentID: req.DepartmentID,
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("studentId", student.ID).Str("email", student.Email).Msg("Student created")
	return student, nil
}

// GetStudentByID retrieves a student by ID
func (s *StudentService) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	if id <= 0 {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, "invalid student ID")
	}

	return s.studentRepo.GetByID(ctx, id)
}

// GetAllStudents retrieves all students
func (s *StudentService) GetAllStudents(ctx context.Context) ([]*models.Student, error) {
	students, err := s.studentRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}

	return students, nil
}

// UpdateStudent performs a full-field replace of an existing student after
// re-validating the department reference. Partial updates are not supported.
func (s *StudentService) UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*models.Student, error) {
	role, err := roleFromRequest(req.Role)
	if err != nil {
		return nil, err
	}

	// The target must exist before touching anything else
	if _, err := s.studentRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	if err := s.checkDepartmentExists(ctx, req.DepartmentID); err != nil {
		return nil, err
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	student := &models.Student{
		ID:           id,
		Name:         req.Name,
		Age:          req.Age,
		Major:        req.Major,
		Email:        req.Email,
		Password:     hashedPassword,
		Role:         role,
		DepartmentID: req.DepartmentID,
	}

	if err := s.studentRepo.Update(ctx, student); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("studentId", id).Msg("Student updated")
	return student, nil
}

// DeleteStudent deletes a student; enrollment rows cascade in the store
func (s *StudentService) DeleteStudent(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.NewCustomError(apperrors.ErrValidationFailed, "invalid student ID")
	}

	if err := s.studentRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("studentId", id).Msg("Student deleted")
	return nil
}
