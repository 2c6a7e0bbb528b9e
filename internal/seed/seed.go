package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/mbenali/gestion-etudiants/internal/app/models"
	appRepos "github.com/mbenali/gestion-etudiants/internal/app/repositories"
	"github.com/mbenali/gestion-etudiants/internal/config"
	"github.com/mbenali/gestion-etudiants/internal/pkg/apperrors"
	"github.com/mbenali/gestion-etudiants/internal/pkg/auth"
)

// CreateDefaultData creates the default departments and the bootstrap admin
// account if they don't exist. Re-running is harmless.
func CreateDefaultData(ctx context.Context, cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	departmentRepo := appRepos.NewDepartmentRepository(dbPool)
	studentRepo := appRepos.NewStudentRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data...")
	var finalErr error

	defaultDepartments := []*appModels.Department{
		{Name: "Computer Science", Description: "Département d'informatique"},
		{Name: "Mathematics", Description: "Département de mathématiques"},
	}

	var adminDepartmentID int64
	for _, dept := range defaultDepartments {
		err := departmentRepo.Create(ctx, dept)
		switch {
		case err == nil:
			if adminDepartmentID == 0 {
				adminDepartmentID = dept.ID
			}
		case errors.Is(err, apperrors.ErrDepartmentAlreadyExists):
			// Nothing to do, but the admin account still needs a department
		default:
			lgr.Error().Err(err).Str("department", dept.Name).Msg("Error creating default department")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if adminDepartmentID == 0 {
		departments, err := departmentRepo.GetAll(ctx)
		if err != nil {
			lgr.Error().Err(err).Msg("Error listing departments for admin account")
			return errors.Join(finalErr, err)
		}
		if len(departments) == 0 {
			return errors.Join(finalErr, errors.New("no department available for the admin account"))
		}
		adminDepartmentID = departments[0].ID
	}

	// --- Bootstrap admin account --- //
	_, err := studentRepo.GetByEmail(ctx, cfg.Admin.Email)
	if err == nil {
		return finalErr
	}
	if !errors.Is(err, apperrors.ErrStudentNotFound) {
		lgr.Error().Err(err).Msg("Error checking if admin account exists")
		return errors.Join(finalErr, err)
	}

	lgr.Info().Str("email", cfg.Admin.Email).Msg("Creating default admin account...")

	hashedPassword, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing admin password")
		return errors.Join(finalErr, err)
	}

	admin := &appModels.Student{
		Name:         "Administrator",
		Age:          30,
		Email:        cfg.Admin.Email,
		Password:     hashedPassword,
		Role:         appModels.RoleAdmin,
		DepartmentID: adminDepartmentID,
	}

	if err := studentRepo.Create(ctx, admin); err != nil && !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
		lgr.Error().Err(err).Msg("Error creating default admin account")
		return errors.Join(finalErr, err)
	}

	return finalErr
}
