package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	apperrors "lpg-backoffice/internal/errors"
	"lpg-backoffice/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"validation sentinel", apperrors.ErrPaymentExceedsBill, http.StatusBadRequest, "payment exceeds"},
		{"wrapped not found", fmt.Errorf("load: %w", apperrors.ErrCustomerNotFound), http.StatusNotFound, "customer not found"},
		{"already exists", apperrors.ErrCustomerExists, http.StatusConflict, "already exists"},
		{"authentication", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, "invalid email or password"},
		{"authorization", apperrors.ErrNoTenant, http.StatusForbidden, "not attached to a tenant"},
		{"unexpected", errors.New("connection reset"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := testutils.CreateTestGinContext()
			respondError(c, tt.err)
			testutils.AssertErrorResponse(t, rec, tt.status, tt.message)
		})
	}
}

func TestRespondErrorDetails(t *testing.T) {
	t.Run("otp reason", func(t *testing.T) {
		c, rec := testutils.CreateTestGinContext()
		respondError(c, fmt.Errorf("verify: %w", apperrors.ErrOTPExpired))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "EXPIRED", body["reason"])
		assert.Equal(t, "verification code has expired", body["error"])
	})

	t.Run("otp invalid keeps generic message", func(t *testing.T) {
		c, rec := testutils.CreateTestGinContext()
		respondError(c, fmt.Errorf("reserve: %w", apperrors.ErrOTPInvalid))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "INVALID", body["reason"])
		assert.Equal(t, "verification code is invalid", body["error"])
	})

	t.Run("validator field errors", func(t *testing.T) {
		type payload struct {
			Name string `validate:"required"`
		}
		verr := validator.New().Struct(payload{})
		require.Error(t, verr)

		c, rec := testutils.CreateTestGinContext()
		respondError(c, fmt.Errorf("validation failed: %w", verr))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		var body struct {
			Details map[string]string `json:"details"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "required", body.Details["name"])
	})
}
