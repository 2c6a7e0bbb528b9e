package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/mbenali/gestion-etudiants/internal/app/models"
	"github.com/mbenali/gestion-etudiants/internal/app/repositories"
	"github.com/mbenali/gestion-etudiants/internal/pkg/apperrors"
)

// DepartmentService handles department-related operations
type DepartmentService struct {
	departmentRepo repositories.IDepartmentRepository
}

// NewDepartmentService creates a new department service instance
func NewDepartmentService(departmentRepo repositories.IDepartmentRepository) *DepartmentService {
	return &DepartmentService{
		departmentRepo: departmentRepo,
	}
}

// CreateDepartment creates a new department
func (s *DepartmentService) CreateDepartment(ctx context.Context, department *models.Department) error {
	if strings.TrimSpace(department.Name) == "" {
		return apperrors.NewCustomError(apperrors.ErrValidationFailed, "department name cannot be empty")
	}

	if err := s.departmentRepo.Create(ctx, department); err != nil {
		return err
	}
	return nil
}

// GetDepartmentByID retrieves a department by ID
func (s *DepartmentService) GetDepartmentByID(ctx context.Context, id int64) (*models.Department, error) {
	if id <= 0 {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, "invalid department ID")
	}

	department, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return department, nil
}

// GetAllDepartments retrieves all departments
func (s *DepartmentService) GetAllDepartments(ctx context.Context) ([]*models.Department, error) {
	departments, err := s.departmentRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving departments: %w", err)
	}

	return departments, nil
}
