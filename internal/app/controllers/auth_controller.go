package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mbenali/gestion-etudiants/internal/app/models/dto"
	"github.com/mbenali/gestion-etudiants/internal/app/services"
	"github.com/mbenali/gestion-etudiants/internal/middleware"
	"github.com/mbenali/gestion-etudiants/internal/pkg/apperrors"
)

// AuthController handles authentication operations
type AuthController struct {
	authService *services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// Login authenticates a student and returns a bearer token
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	tokenResponse, err := c.authService.Login(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, tokenResponse)
}

// GetProfile returns the student identified by the presented token
func (c *AuthController) GetProfile(ctx *gin.Context) {
	email := ctx.GetString(middleware.ContextEmail)
	if email == "" {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}

	student, err := c.authService.GetProfile(ctx, email)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.NewStudentResponse(student),
		Timestamp: time.Now(),
	})
}
