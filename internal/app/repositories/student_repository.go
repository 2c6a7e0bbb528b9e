package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mbenali/gestion-etudiants/internal/app/models"
	"github.com/mbenali/gestion-etudiants/internal/pkg/apperrors"
	"github.com/mbenali/gestion-etudiants/internal/pkg/dberrors"
)

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

// Create creates a new student
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (name, age, major, email, password, role, department_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		student.Name,
		student.Age,
		student.Major,
		student.Email,
		student.Password,
		student.Role,
		student.DepartmentID,
	).Scan(&student.ID)

	if err != nil {
		if dberrors.IsUniqueViolation(err, "students_email_key") {
			return apperrors.ErrEmailAlreadyExists
		}
		// Covers the window where the department disappears between the
		// service-level check and the insert
		if dberrors.IsForeignKeyViolation(err, "students_department_id_fkey") {
			return apperrors.ErrDepartmentNotFound
		}
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetByID retrieves a student by ID
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := `
		SELECT id, name, age, major, email, password, role, department_id
		FROM students
		WHERE id = $1
	`

	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

// GetByEmail retrieves a student by email (the login identity)
func (r *StudentRepository) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	query := `
		SELECT id, name, age, major, email, password, role, department_id
		FROM students
		WHERE email = $1
	`

	return r.scanOne(r.db.QueryRow(ctx, query, email))
}

// GetAll retrieves all students
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	query := `
		SELECT id, name, age, major, email, password, role, department_id
		FROM students
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		var student models.Student
		if err := rows.Scan(
			&student.ID,
			&student.Name,
			&student.Age,
			&student.Major,
			&student.Email,
			&student.Password,
			&student.Role,
			&student.DepartmentID,
		); err != nil {
			return nil, err
		}
		students = append(students, &student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// Update replaces every stored field of an existing student
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	query := `
		UPDATE students
		SET name = $1, age = $2, major = $3, email = $4, password = $5, role = $6, department_id = $7
		WHERE id = $8
	`

	cmdTag, err := r.db.Exec(ctx, query,
		student.Name,
		student.Age,
		student.Major,
		student.Email,
		student.Password,
		student.Role,
		student.DepartmentID,
		student.ID,
	)

	if err != nil {
		if dberrors.IsUniqueViolation(err, "students_email_key") {
			return apperrors.ErrEmailAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err, "students_department_id_fkey") {
			return apperrors.ErrDepartmentNotFound
		}
		return fmt.Errorf("error updating student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// Delete deletes a student by ID. Association rows cascade via the
// student_formations foreign key.
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM students WHERE id = $1`

	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

func (r *StudentRepository) scanOne(row pgx.Row) (*models.Student, error) {
	var student models.Student
	err := row.Scan(
		&student.ID,
		&student.Name,
		&student.Age,
		&student.Major,
		&student.Email,
		&student.Password,
		&student.Role,
		&student.DepartmentID,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return &student, nil
}
