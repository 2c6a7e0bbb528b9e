package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mbenali/gestion-etudiants/internal/app/models"
	"github.com/mbenali/gestion-etudiants/internal/pkg/apperrors"
)

// FormationRepository handles database operations for formations
type FormationRepository struct {
	db *pgxpool.Pool
}

// NewFormationRepository creates a new formation repository
func NewFormationRepository(db *pgxpool.Pool) *FormationRepository {
	return &FormationRepository{
		db: db,
	}
}

// Create creates a new formation
func (r *FormationRepository) Create(ctx context.Context, formation *models.Formation) error {
	query := `
		INSERT INTO formations (title, description, duration)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, formation.Title, formation.Description, formation.Duration).Scan(&formation.ID)
	if err != nil {
		return fmt.Errorf("error creating formation: %w", err)
	}

	return nil
}

// GetByID retrieves a formation by ID
func (r *FormationRepository) GetByID(ctx context.Context, id int64) (*models.Formation, error) {
	query := `
		SELECT id, title, description, duration
		FROM formations
		WHERE id = $1
	`

	var formation models.Formation
	err := r.db.QueryRow(ctx, query, id).Scan(
		&formation.ID,
		&formation.Title,
		&formation.Description,
		&formation.Duration,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrFormationNotFound
		}
		return nil, fmt.Errorf("error retrieving formation: %w", err)
	}

	return &formation, nil
}

// GetAll retrieves all formations
func (r *FormationRepository) GetAll(ctx context.Context) ([]*models.Formation, error) {
	query := `
		SELECT id, title, description, duration
		FROM formations
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
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
			return nil, err
		}
		formations = append(formations, &formation)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return formations, nil
}
