package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbenali/gestion-etudiants/internal/app/models/dto"
	"github.com/mbenali/gestion-etudiants/internal/pkg/apperrors"
)

func handleErrorResponse(t *testing.T, err error) (*httptest.ResponseRecorder, dto.ErrorCode) {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	HandleAPIError(c, err)

	var body dto.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	return w, body.Error.Code
}

func TestHandleAPIError_StatusMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{"student not found", apperrors.ErrStudentNotFound, 404, dto.ErrorCodeResourceNotFound},
		{"department not found", apperrors.ErrDepartmentNotFound, 404, dto.ErrorCodeResourceNotFound},
		{"formation not found", apperrors.ErrFormationNotFound, 404, dto.ErrorCodeResourceNotFound},
		{"already enrolled", apperrors.ErrAlreadyEnrolled, 409, dto.ErrorCodeResourceAlreadyExists},
		{"email exists", apperrors.ErrEmailAlreadyExists, 409, dto.ErrorCodeResourceAlreadyExists},
		{"invalid credentials", apperrors.ErrInvalidCredentials, 401, dto.ErrorCodeInvalidCredentials},
		{"permission denied", apperrors.ErrPermissionDenied, 403, dto.ErrorCodeForbidden},
		{"validation failed", apperrors.ErrValidationFailed, 400, dto.ErrorCodeValidationFailed},
		{"unknown error", errors.New("boom"), 500, dto.ErrorCodeInternalServer},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, code := handleErrorResponse(t, tc.err)
			assert.Equal(t, tc.wantStatus, w.Code)
			assert.Equal(t, tc.wantCode, code)
		})
	}
}

func TestHandleAPIError_NotEnrolledIsConflictNotDuplicate(t *testing.T) {
	// Removing an absent pair is a state conflict; it must not carry the
	// "already exists" code that duplicate enrollment uses
	w, code := handleErrorResponse(t, apperrors.ErrNotEnrolled)
	assert.Equal(t, 409, w.Code)
	assert.Equal(t, dto.ErrorCodeConflict, code)

	_, dupCode := handleErrorResponse(t, apperrors.ErrAlreadyEnrolled)
	assert.NotEqual(t, dupCode, code)
}

func TestHandleAPIError_TokenErrorsCarryChallenge(t *testing.T) {
	w, code := handleErrorResponse(t, apperrors.ErrTokenInvalid)
	assert.Equal(t, 401, w.Code)
	assert.Equal(t, dto.ErrorCodeInvalidToken, code)
	assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))

	w, code = handleErrorResponse(t, apperrors.ErrTokenExpired)
	assert.Equal(t, 401, w.Code)
	assert.Equal(t, dto.ErrorCodeExpiredToken, code)
	assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
}

func TestHandleAPIError_WrappedErrorsUnwrap(t *testing.T) {
	wrapped := apperrors.NewCustomError(apperrors.ErrValidationFailed, "formation duration must be positive")

	w, code := handleErrorResponse(t, wrapped)
	assert.Equal(t, 400, w.Code)
	assert.Equal(t, dto.ErrorCodeValidationFailed, code)
}
