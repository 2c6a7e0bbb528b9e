package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mbenali/gestion-etudiants/internal/app/models"
	"github.com/mbenali/gestion-etudiants/internal/app/models/dto"
	"github.com/mbenali/gestion-etudiants/internal/app/services"
	"github.com/mbenali/gestion-etudiants/internal/middleware"
)

// FormationController handles formation-related operations
type FormationController struct {
	formationService *services.FormationService
}

// NewFormationController creates a new FormationController
func NewFormationController(formationService *services.FormationService) *FormationController {
	return &FormationController{
		formationService: formationService,
	}
}

// CreateFormation handles formation creation
func (c *FormationController) CreateFormation(ctx *gin.Context) {
	var req dto.CreateFormationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	formation := &models.Formation{
		Title:       req.Title,
		Description: req.Description,
		Duration:    req.Duration,
	}

	if err := c.formationService.CreateFormation(ctx, formation); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      formation,
		Timestamp: time.Now(),
	})
}

// GetFormationByID retrieves a formation by ID
func (c *FormationController) GetFormationByID(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid formation ID")
		errorDetail = errorDetail.WithDetails("Formation ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	formation, err := c.formationService.GetFormationByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      formation,
		Timestamp: time.Now(),
	})
}

// GetAllFormations retrieves all formations
func (c *FormationController) GetAllFormations(ctx *gin.Context) {
	formations, err := c.formationService.GetAllFormations(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      formations,
		Timestamp: time.Now(),
	})
}
