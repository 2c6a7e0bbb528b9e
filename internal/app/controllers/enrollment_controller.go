package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mbenali/gestion-etudiants/internal/app/models/dto"
	"github.com/mbenali/gestion-etudiants/internal/app/services"
	"github.com/mbenali/gestion-etudiants/internal/middleware"
)

// EnrollmentController handles student-formation enrollment operations
type EnrollmentController struct {
	enrollmentService *services.EnrollmentService
}

// NewEnrollmentController creates a new EnrollmentController
func NewEnrollmentController(enrollmentService *services.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{
		enrollmentService: enrollmentService,
	}
}

// parseEnrollmentParams reads both path IDs of an enrollment route
func parseEnrollmentParams(ctx *gin.Context) (studentID, formationID int64, ok bool) {
	studentID, err := parseIDParam(ctx, "id")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student ID")
		errorDetail = errorDetail.WithDetails("Student ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, 0, false
	}

	formationID, err = parseIDParam(ctx, "formationId")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid formation ID")
		errorDetail = errorDetail.WithDetails("Formation ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, 0, false
	}

	return studentID, formationID, true
}

// Enroll adds a student to a formation
func (c *EnrollmentController) Enroll(ctx *gin.Context) {
	studentID, formationID, ok := parseEnrollmentParams(ctx)
	if !ok {
		return
	}

	if err := c.enrollmentService.Enroll(ctx, studentID, formationID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Student enrolled successfully"},
		Timestamp: time.Now(),
	})
}

// Unenroll removes a student from a formation
func (c *EnrollmentController) Unenroll(ctx *gin.Context) {
	studentID, formationID, ok := parseEnrollmentParams(ctx)
	if !ok {
		return
	}

	if err := c.enrollmentService.Unenroll(ctx, studentID, formationID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Student unenrolled successfully"},
		Timestamp: time.Now(),
	})
}

// ListFormations returns the formations a student is enrolled in
func (c *EnrollmentController) ListFormations(ctx *gin.Context) {
	studentID, err := parseIDParam(ctx, "id")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student ID")
		errorDetail = errorDetail.WithDetails("Student ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	formations, err := c.enrollmentService.ListFormations(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      formations,
		Timestamp: time.Now(),
	})
}
