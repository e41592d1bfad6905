package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prepwise/internal/service"
)

func TestWriteServiceErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"interview not found", service.ErrInterviewNotFound, http.StatusNotFound},
		{"template not found", service.ErrTemplateNotFound, http.StatusNotFound},
		{"inactive template", service.ErrTemplateUnavailable, http.StatusNotFound},
		{"no test cases", service.ErrNoTestCases, http.StatusBadRequest},
		{"empty transcript", service.ErrEmptyTranscript, http.StatusBadRequest},
		{"score out of range", service.ErrScoreOutOfRange, http.StatusBadRequest},
		{"runner failed", service.ErrRunnerFailed, http.StatusBadGateway},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeServiceError(rec, tt.err)

			assert.Equal(t, tt.want, rec.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestLoginEndpoint(t *testing.T) {
	h := NewAuthHandler(service.NewAuthService())

	body, _ := json.Marshal(map[string]string{"username": "admin", "password": "password123"})
	req := httptest.NewRequest("POST", "/v1/auth/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.Login(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["token"])
}

func TestLoginEndpointRejectsBadCredentials(t *testing.T) {
	h := NewAuthHandler(service.NewAuthService())

	body, _ := json.Marshal(map[string]string{"username": "admin", "password": "nope"})
	req := httptest.NewRequest("POST", "/v1/auth/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.Login(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCandidateTokenEndpointRequiresUserID(t *testing.T) {
	h := NewAuthHandler(service.NewAuthService())

	body, _ := json.Marshal(map[string]string{"name": "Jordan"})
	req := httptest.NewRequest("POST", "/v1/auth/candidate", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.CandidateToken(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
