package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbenali/gestion-etudiants/internal/app/models"
	"github.com/mbenali/gestion-etudiants/internal/app/models/dto"
	"github.com/mbenali/gestion-etudiants/internal/pkg/apperrors"
	"github.com/mbenali/gestion-etudiants/internal/pkg/auth"
)

func newStudentServiceForTest(t *testing.T) (*StudentService, *fakeStudentRepo, *fakeDepartmentRepo) {
	t.Helper()
	studentRepo := newFakeStudentRepo()
	departmentRepo := newFakeDepartmentRepo()
	service := NewStudentService(studentRepo, departmentRepo, zerolog.Nop())
	return service, studentRepo, departmentRepo
}

func seedDepartment(t *testing.T, repo *fakeDepartmentRepo, name string) *models.Department {
	t.Helper()
	department := &models.Department{Name: name}
	require.NoError(t, repo.Create(context.Background(), department))
	return department
}

func major(s string) *string { return &s }

func TestStudentService_CreateStudent(t *testing.T) {
	service, _, departmentRepo := newStudentServiceForTest(t)
	dept := seedDepartment(t, departmentRepo, "Computer Science")

	student, err := service.CreateStudent(context.Background(), &dto.CreateStudentRequest{
		Name:         "Alice Martin",
		Age:          21,
		Major:        major("Software Engineering"),
		Email:        "alice@example.com",
		Password:     "s3cret",
		DepartmentID: dept.ID,
	})
	require.NoError(t, err)

	assert.NotZero(t, student.ID)
	assert.Equal(t, models.RoleUser, student.Role, "role defaults to user")
	assert.NotEqual(t, "s3cret", student.Password, "password must be stored hashed")
	assert.True(t, auth.CheckPassword(student.Password, "s3cret"))
}

func TestStudentService_CreateStudent_AdminRole(t *testing.T) {
	service, _, departmentRepo := newStudentServiceForTest(t)
	dept := seedDepartment(t, departmentRepo, "Mathematics")

	student, err := service.CreateStudent(context.Background(), &dto.CreateStudentRequest{
		Name:         "Bob Admin",
		Age:          35,
		Email:        "bob@example.com",
		Password:     "s3cret",
		Role:         "admin",
		DepartmentID: dept.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, student.Role)
	assert.True(t, student.IsAdmin())
}

func TestStudentService_CreateStudent_InvalidRole(t *testing.T) {
	service, _, departmentRepo := newStudentServiceForTest(t)
	dept := seedDepartment(t, departmentRepo, "Physics")

	_, err := service.CreateStudent(context.Background(), &dto.CreateStudentRequest{
		Name:         "Eve",
		Age:          20,
		Email:        "eve@example.com",
		Password:     "s3cret",
		Role:         "superuser",
		DepartmentID: dept.ID,
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidRole)
}

func TestStudentService_CreateStudent_UnknownDepartment(t *testing.T) {
	service, studentRepo, _ := newStudentServiceForTest(t)

	_, err := service.CreateStudent(context.Background(), &dto.CreateStudentRequest{
		Name:         "Alice Martin",
		Age:          21,
		Email:        "alice@example.com",
		Password:     "s3cret",
		DepartmentID: 42,
	})
	assert.ErrorIs(t, err, apperrors.ErrDepartmentNotFound)
	assert.Empty(t, studentRepo.students, "nothing written on a failed reference check")
}

func TestStudentService_CreateStudent_DuplicateEmail(t *testing.T) {
	service, _, departmentRepo := newStudentServiceForTest(t)
	dept := seedDepartment(t, departmentRepo, "Computer Science")

	req := &dto.CreateStudentRequest{
		Name:         "Alice Martin",
		Age:          21,
		Email:        "alice@example.com",
		Password:     "s3cret",
		DepartmentID: dept.ID,
	}
	_, err := service.CreateStudent(context.Background(), req)
	require.NoError(t, err)

	_, err = service.CreateStudent(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestStudentService_GetStudentByID(t *testing.T) {
	service, studentRepo, _ := newStudentServiceForTest(t)
	created := seedStudent(t, studentRepo, "alice@example.com", "s3cret", models.RoleUser)

	student, err := service.GetStudentByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Email, student.Email)

	_, err = service.GetStudentByID(context.Background(), 999)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestStudentService_UpdateStudent(t *testing.T) {
	service, studentRepo, departmentRepo := newStudentServiceForTest(t)
	seedDepartment(t, departmentRepo, "Computer Science")
	newDept := seedDepartment(t, departmentRepo, "Mathematics")
	created := seedStudent(t, studentRepo, "alice@example.com", "s3cret", models.RoleUser)

	updated, err := service.UpdateStudent(context.Background(), created.ID, &dto.UpdateStudentRequest{
		Name:         "Alice Durand",
		Age:          22,
		Major:        major("Applied Mathematics"),
		Email:        "alice.durand@example.com",
		Password:     "newpass",
		Role:         "admin",
		DepartmentID: newDept.ID,
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Alice Durand", updated.Name)
	assert.Equal(t, newDept.ID, updated.DepartmentID)
	assert.Equal(t, models.RoleAdmin, updated.Role)
	assert.True(t, auth.CheckPassword(updated.Password, "newpass"), "password is re-hashed on update")
}

func TestStudentService_UpdateStudent_NotFound(t *testing.T) {
	service, _, departmentRepo := newStudentServiceForTest(t)
	dept := seedDepartment(t, departmentRepo, "Computer Science")

	_, err := service.UpdateStudent(context.Background(), 999, &dto.UpdateStudentRequest{
		Name:         "Ghost",
		Age:          30,
		Email:        "ghost@example.com",
		Password:     "s3cret",
		DepartmentID: dept.ID,
	})
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestStudentService_UpdateStudent_UnknownDepartment(t *testing.T) {
	service, studentRepo, _ := newStudentServiceForTest(t)
	created := seedStudent(t, studentRepo, "alice@example.com", "s3cret", models.RoleUser)

	_, err := service.UpdateStudent(context.Background(), created.ID, &dto.UpdateStudentRequest{
		Name:         "Alice Martin",
		Age:          21,
		Email:        "alice@example.com",
		Password:     "s3cret",
		DepartmentID: 42,
	})
	assert.ErrorIs(t, err, apperrors.ErrDepartmentNotFound)
}

func TestStudentService_DeleteStudent(t *testing.T) {
	service, studentRepo, _ := newStudentServiceForTest(t)
	created := seedStudent(t, studentRepo, "alice@example.com", "s3cret", models.RoleUser)

	require.NoError(t, service.DeleteStudent(context.Background(), created.ID))

	_, err := service.GetStudentByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)

	err = service.DeleteStudent(context.Background(), created.ID)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestStudentService_GetAllStudents(t *testing.T) {
	service, studentRepo, _ := newStudentServiceForTest(t)
	seedStudent(t, studentRepo, "alice@example.com", "s3cret", models.RoleUser)
	seedStudent(t, studentRepo, "bob@example.com", "s3cret", models.RoleUser)

	students, err := service.GetAllStudents(context.Background())
	require.NoError(t, err)
	assert.Len(t, students, 2)
}
