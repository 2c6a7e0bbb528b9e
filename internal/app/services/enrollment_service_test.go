package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbenali/gestion-etudiants/internal/app/models"
	"github.com/mbenali/gestion-etudiants/internal/pkg/apperrors"
)

type enrollmentFixture struct {
	service   *EnrollmentService
	student   *models.Student
	formation *models.Formation
}

func newEnrollmentFixture(t *testing.T) *enrollmentFixture {
	t.Helper()

	studentRepo := newFakeStudentRepo()
	formationRepo := newFakeFormationRepo()
	enrollmentRepo := newFakeEnrollmentRepo(formationRepo)

	student := seedStudent(t, studentRepo, "alice@example.com", "s3cret", models.RoleUser)

	formation := &models.Formation{Title: "Go Programming", Duration: 40}
	require.NoError(t, formationRepo.Create(context.Background(), formation))

	return &enrollmentFixture{
		service:   NewEnrollmentService(enrollmentRepo, studentRepo, formationRepo, zerolog.Nop()),
		student:   student,
		formation: formation,
	}
}

func TestEnrollmentService_Enroll(t *testing.T) {
	fx := newEnrollmentFixture(t)
	ctx := context.Background()

	require.NoError(t, fx.service.Enroll(ctx, fx.student.ID, fx.formation.ID))

	formations, err := fx.service.ListFormations(ctx, fx.student.ID)
	require.NoError(t, err)
	require.Len(t, formations, 1)
	assert.Equal(t, fx.formation.ID, formations[0].ID)
}

func TestEnrollmentService_Enroll_Duplicate(t *testing.T) {
	fx := newEnrollmentFixture(t)
	ctx := context.Background()

	require.NoError(t, fx.service.Enroll(ctx, fx.student.ID, fx.formation.ID))

	err := fx.service.Enroll(ctx, fx.student.ID, fx.formation.ID)
	assert.ErrorIs(t, err, apperrors.ErrAlreadyEnrolled)

	// The duplicate attempt must not add a second row
	formations, err := fx.service.ListFormations(ctx, fx.student.ID)
	require.NoError(t, err)
	assert.Len(t, formations, 1)
}

func TestEnrollmentService_Enroll_UnknownStudent(t *testing.T) {
	fx := newEnrollmentFixture(t)

	err := fx.service.Enroll(context.Background(), 999, fx.formation.ID)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestEnrollmentService_Enroll_UnknownFormation(t *testing.T) {
	fx := newEnrollmentFixture(t)

	err := fx.service.Enroll(context.Background(), fx.student.ID, 999)
	assert.ErrorIs(t, err, apperrors.ErrFormationNotFound)
}

func TestEnrollmentService_Unenroll(t *testing.T) {
	fx := newEnrollmentFixture(t)
	ctx := context.Background()

	require.NoError(t, fx.service.Enroll(ctx, fx.student.ID, fx.formation.ID))
	require.NoError(t, fx.service.Unenroll(ctx, fx.student.ID, fx.formation.ID))

	formations, err := fx.service.ListFormations(ctx, fx.student.ID)
	require.NoError(t, err)
	assert.Empty(t, formations)
}

func TestEnrollmentService_Unenroll_NotEnrolled(t *testing.T) {
	fx := newEnrollmentFixture(t)

	err := fx.service.Unenroll(context.Background(), fx.student.ID, fx.formation.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotEnrolled)
}

func TestEnrollmentService_EnrollAgainAfterUnenroll(t *testing.T) {
	fx := newEnrollmentFixture(t)
	ctx := context.Background()

	require.NoError(t, fx.service.Enroll(ctx, fx.student.ID, fx.formation.ID))
	require.NoError(t, fx.service.Unenroll(ctx, fx.student.ID, fx.formation.ID))
	require.NoError(t, fx.service.Enroll(ctx, fx.student.ID, fx.formation.ID))

	formations, err := fx.service.ListFormations(ctx, fx.student.ID)
	require.NoError(t, err)
	assert.Len(t, formations, 1)
}

func TestEnrollmentService_ListFormations_UnknownStudent(t *testing.T) {
	fx := newEnrollmentFixture(t)

	_, err := fx.service.ListFormations(context.Background(), 999)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}
