package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mbenali/gestion-etudiants/internal/app/models"
	"github.com/mbenali/gestion-etudiants/internal/pkg/apperrors"
	"github.com/mbenali/gestion-etudiants/internal/pkg/dberrors"
)

// EnrollmentRepository handles the student-formation association table.
// The primary key over (student_id, formation_id) is the duplicate guard:
// the insert itself is the membership check, so two concurrent enrolls of
// the same pair cannot both succeed.
type EnrollmentRepository struct {
	db *pgxpool.Pool
}

// NewEnrollmentRepository creates a new EnrollmentRepository
func NewEnrollmentRepository(db *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

// Add inserts the enrollment pair. Returns ErrAlreadyEnrolled if the pair
// already exists.
func (r *EnrollmentRepository) Add(ctx context.Context, studentID, formationID int64) error {
	query := squirrel.Insert("student_formations").
		Columns("student_id", "formation_id").
		Values(studentID, formationID).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsUniqueViolation(err, "student_formations_pkey") {
			return apperrors.ErrAlreadyEnrolled
		}
		return fmt.Errorf("error executing query: %w", err)
	}

	return nil
}

// Remove deletes the enrollment pair. Returns ErrNotEnrolled if the pair
// does not exist.
func (r *EnrollmentRepository) Remove(ctx context.Context, studentID, formationID int64) error {
	query := squirrel.Delete("student_formations").
		Where("student_id = ? AND formation_id = ?", studentID, formationID).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrNotEnrolled
	}

	return nil
}

// ListFormationsByStudentID retrieves all formations a student is enrolled in,
// in insertion order.
func (r *EnrollmentRepository) ListFormationsByStudentID(ctx context.Context, studentID int64) ([]*models.Formation, error) {
	query := squirrel.Select("f.id", "f.title", "f.description", "f.duration").
		From("formations f").
		Join("student_formations sf ON sf.formation_id = f.id").
		Where("sf.student_id = ?", studentID).
		OrderBy("f.id").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var formations []*models.Formation
	for rows.Next() {
		var formation models.Formation
		if err := rows.Scan(
			&formation.ID,
			&formation.Title,
			&formation.Description,
			&formation.Duration,
		); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		formations = append(formations, &formation)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return formations, nil
}
