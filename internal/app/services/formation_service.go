package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/mbenali/gestion-etudiants/internal/app/models"
	"github.com/mbenali/gestion-etudiants/internal/app/repositories"
	"github.com/mbenali/gestion-etudiants/internal/pkg/apperrors"
)

// FormationService handles formation-related operations
type FormationService struct {
	formationRepo repositories.IFormationRepository
}

// NewFormationService creates a new formation service instance
func NewFormationService(formationRepo repositories.IFormationRepository) *FormationService {
	return &FormationService{
		formationRepo: formationRepo,
	}
}

// CreateFormation creates a new formation
func (s *FormationService) CreateFormation(ctx context.Context, formation *models.Formation) error {
	if strings.TrimSpace(formation.Title) == "" {
		return apperrors.NewCustomError(apperrors.ErrValidationFailed, "formation title cannot be empty")
	}
	if formation.Duration <= 0 {
		return apperrors.NewCustomError(apperrors.ErrValidationFailed, "formation duration must be positive")
	}

	if err := s.formationRepo.Create(ctx, formation); err != nil {
		return err
	}
	return nil
}

// GetFormationByID retrieves a formation by ID
func (s *FormationService) GetFormationByID(ctx context.Context, id int64) (*models.Formation, error) {
	if id <= 0 {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, "invalid formation ID")
	}

	formation, err := s.formationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return formation, nil
}

// GetAllFormations retrieves all formations
func (s *FormationService) GetAllFormations(ctx context.Context) ([]*models.Formation, error) {
	formations, err := s.formationRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving formations: %w", err)
	}

	return formations, nil
}
