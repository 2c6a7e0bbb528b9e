package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mbenali/gestion-etudiants/internal/app/models"
	"github.com/mbenali/gestion-etudiants/internal/app/repositories"
	"github.com/mbenali/gestion-etudiants/internal/pkg/apperrors"
)

// EnrollmentService manages the student-formation association
type EnrollmentService struct {
	enrollmentRepo repositories.IEnrollmentRepository
	studentRepo    repositories.IStudentRepository
	formationRepo  repositories.IFormationRepository
	logger         zerolog.Logger
}

// NewEnrollmentService creates a new enrollment service instance
func NewEnrollmentService(
	enrollmentRepo repositories.IEnrollmentRepository,
	studentRepo repositories.IStudentRepository,
	formationRepo repositories.IFormationRepository,
	logger zerolog.Logger,
) *EnrollmentService {
	return &EnrollmentService{
		enrollmentRepo: enrollmentRepo,
		studentRepo:    studentRepo,
		formationRepo:  formationRepo,
		logger:         logger,
	}
}

// resolvePair checks both endpoints of the association, student first, so
// the error names the exact missing entity.
func (s *EnrollmentService) resolvePair(ctx context.Context, studentID, formationID int64) error {
	if _, err := s.studentRepo.GetByID(ctx, studentID); err != nil {
		return err
	}
	if _, err := s.formationRepo.GetByID(ctx, formationID); err != nil {
		return err
	}
	return nil
}

// Enroll adds the student to the formation. The uniqueness of the pair is
// enforced by the store, not by a prior read, so concurrent duplicate
// requests resolve to exactly one success and one ErrAlreadyEnrolled.
func (s *EnrollmentService) Enroll(ctx context.Context, studentID, formationID int64) error {
	if err := s.resolvePair(ctx, studentID, formationID); err != nil {
		return err
	}

	if err := s.enrollmentRepo.Add(ctx, studentID, formationID); err != nil {
		return err
	}

	s.logger.Info().
		Int64("studentId", studentID).
		Int64("formationId", formationID).
		Msg("Student enrolled in formation")
	return nil
}

// Unenroll removes the student from the formation. Removing a pair that
// does not exist yields ErrNotEnrolled.
func (s *EnrollmentService) Unenroll(ctx context.Context, studentID, formationID int64) error {
	if err := s.resolvePair(ctx, studentID, formationID); err != nil {
		return err
	}

	if err := s.enrollmentRepo.Remove(ctx, studentID, formationID); err != nil {
		return err
	}

	s.logger.Info().
		Int64("studentId", studentID).
		Int64("formationId", formationID).
		Msg("Student unenrolled from formation")
	return nil
}

// ListFormations returns the formations a student is enrolled in
func (s *EnrollmentService) ListFormations(ctx context.Context, studentID int64) ([]*models.Formation, error) {
	if studentID <= 0 {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, "invalid student ID")
	}

	if _, err := s.studentRepo.GetByID(ctx, studentID); err != nil {
		return nil, err
	}

	formations, err := s.enrollmentRepo.ListFormationsByStudentID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error listing enrollments: %w", err)
	}

	return formations, nil
}
