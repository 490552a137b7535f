package dto

import (
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestErrorResponse_WithRequestID(t *testing.T) {
	err := NewError(ErrCodeInternal, "test error").WithRequestID("test-id")

	assert.Equal(t, "test-id", err.RequestID)
	assert.Equal(t, ErrCodeInternal, err.Error)
	assert.Equal(t, "test error", err.Message)
}

func TestErrorResponse_WithDetail(t *testing.T) {
	base := NewError("NOT_FOUND", "Not found")
	withReason := base.WithDetail("reason", "Menu not found")
	withBoth := withReason.WithDetail("field", "id")

	assert.Nil(t, base.Details)
	assert.Equal(t, map[string]string{"reason": "Menu not found"}, withReason.Details)
	assert.Equal(t, map[string]string{"reason": "Menu not found", "field": "id"}, withBoth.Details)
}

func TestErrCodeFromStatus(t *testing.T) {
	tests := []struct {
		status       int
		expectedCode string
	}{
		{http.StatusBadRequest, ErrCodeInvalidRequest},
		{http.StatusNotFound, ErrCodeNotFound},
		{http.StatusConflict, ErrCodeConflict},
		{http.StatusTooManyRequests, ErrCodeRateLimit},
		{http.StatusRequestTimeout, ErrCodeTimeout},
		{http.StatusGatewayTimeout, ErrCodeTimeout},
		{http.StatusServiceUnavailable, ErrCodeUnavailable},
		{http.StatusInternalServerError, ErrCodeInternal},
		{http.StatusBadGateway, ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(strconv.Itoa(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.expectedCode, ErrCodeFromStatus(tt.status))
		})
	}
}

func TestNewError(t *testing.T) {
	before := time.Now()
	err := NewError(ErrCodeConflict, "Conflict")

	assert.Equal(t, ErrCodeConflict, err.Error)
	assert.Equal(t, "Conflict", err.Message)
	assert.False(t, err.Timestamp.Before(before))
	assert.Empty(t, err.RequestID)
}
