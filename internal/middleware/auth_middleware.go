package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mbenali/gestion-etudiants/internal/app/models/dto"
	"github.com/mbenali/gestion-etudiants/internal/app/repositories"
	"github.com/mbenali/gestion-etudiants/internal/pkg/apperrors"
	"github.com/mbenali/gestion-etudiants/internal/pkg/auth"
)

// Context keys set by JWTAuth for downstream handlers
const (
	ContextStudentID = "studentID"
	ContextEmail     = "email"
	ContextRole      = "role"
)

// AuthMiddleware for authentication and authorization
type AuthMiddleware struct {
	jwtService  *auth.JWTService
	studentRepo repositories.IStudentRepository
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService, studentRepo repositories.IStudentRepository) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService:  jwtService,
		studentRepo: studentRepo,
	}
}

// abortUnauthorized writes a 401 with a bearer challenge header so clients
// know which authentication scheme the API expects.
func abortUnauthorized(c *gin.Context, code dto.ErrorCode, message, details string) {
	c.Header("WWW-Authenticate", "Bearer")

	errorDetail := dto.NewErrorDetail(code, message)
	if details != "" {
		errorDetail = errorDetail.WithDetails(details)
	}
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
}

// JWTAuth validates the bearer token and resolves its subject to a stored
// student on every request. A token whose subject no longer exists gets the
// same response as an invalid token, so the two cases cannot be told apart.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, dto.ErrorCodeUnauthorized, "Authentication required", "Authorization header missing")
			return
		}

		tokenString, err := auth.ExtractBearerToken(authHeader)
		if err != nil {
			abortUnauthorized(c, dto.ErrorCodeUnauthorized, "Authentication required", "Invalid token format")
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			if errors.Is(err, auth.ErrExpiredToken) {
				abortUnauthorized(c, dto.ErrorCodeExpiredToken, "Authentication failed", "Token has expired")
				return
			}
			abortUnauthorized(c, dto.ErrorCodeInvalidToken, "Authentication failed", "Invalid token")
			return
		}

		student, err := m.studentRepo.GetByEmail(c.Request.Context(), claims.Subject)
		if err != nil {
			if errors.Is(err, apperrors.ErrStudentNotFound) {
				abortUnauthorized(c, dto.ErrorCodeInvalidToken, "Authentication failed", "Invalid token")
				return
			}
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(errorDetail))
			return
		}

		c.Set(ContextStudentID, student.ID)
		c.Set(ContextEmail, student.Email)
		c.Set(ContextRole, string(student.Role))

		c.Next()
	}
}

// RoleRequired checks the stored role of the resolved student, so a role
// change takes effect on the next request rather than at token expiry.
// Must run after JWTAuth.
func (m *AuthMiddleware) RoleRequired(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(ContextRole)
		if !exists {
			abortUnauthorized(c, dto.ErrorCodeUnauthorized, "Authentication required", "Role not found")
			return
		}

		roleStr, ok := role.(string)
		if !ok || roleStr != requiredRole {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "Access denied")
			errorDetail = errorDetail.WithDetails("You don't have sufficient permissions for this operation")

			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(errorDetail))
			return
		}

		c.Next()
	}
}
