package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbenali/gestion-etudiants/internal/app/models"
	"github.com/mbenali/gestion-etudiants/internal/pkg/apperrors"
)

func TestDepartmentService_CreateDepartment(t *testing.T) {
	service := NewDepartmentService(newFakeDepartmentRepo())

	department := &models.Department{Name: "Computer Science", Description: "CS department"}
	require.NoError(t, service.CreateDepartment(context.Background(), department))
	assert.NotZero(t, department.ID)

	err := service.CreateDepartment(context.Background(), &models.Department{Name: "Computer Science"})
	assert.ErrorIs(t, err, apperrors.ErrDepartmentAlreadyExists)
}

func TestDepartmentService_CreateDepartment_EmptyName(t *testing.T) {
	service := NewDepartmentService(newFakeDepartmentRepo())

	err := service.CreateDepartment(context.Background(), &models.Department{Name: "  "})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestDepartmentService_GetDepartmentByID(t *testing.T) {
	repo := newFakeDepartmentRepo()
	service := NewDepartmentService(repo)
	created := seedDepartment(t, repo, "Mathematics")

	department, err := service.GetDepartmentByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mathematics", department.Name)

	_, err = service.GetDepartmentByID(context.Background(), 999)
	assert.ErrorIs(t, err, apperrors.ErrDepartmentNotFound)
}

func TestFormationService_CreateFormation_Validation(t *testing.T) {
	service := NewFormationService(newFakeFormationRepo())

	err := service.CreateFormation(context.Background(), &models.Formation{Title: "", Duration: 10})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	err = service.CreateFormation(context.Background(), &models.Formation{Title: "Go", Duration: 0})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	err = service.CreateFormation(context.Background(), &models.Formation{Title: "Go", Duration: 40})
	assert.NoError(t, err)
}
