package failure_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"tide/shared/failure"
)

func TestFailureCodes(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{
			name:     "bad request",
			err:      failure.BadRequest(errors.New("missing room number")),
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "bad request from string",
			err:      failure.BadRequestFromString("field 'number' is required"),
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "not found",
			err:      failure.NotFound("room not found"),
			wantCode: http.StatusNotFound,
		},
		{
			name:     "conflict",
			err:      failure.Conflict("room number already exists"),
			wantCode: http.StatusConflict,
		},
		{
			name:     "internal",
			err:      failure.InternalError(errors.New("boom")),
			wantCode: http.StatusInternalServerError,
		},
		{
			name:     "plain error defaults to internal",
			err:      errors.New("boom"),
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, failure.GetCode(tt.err))
		})
	}
}

func TestBadRequestNilError(t *testing.T) {
	assert.NoError(t, failure.BadRequest(nil))
	assert.NoError(t, failure.InternalError(nil))
}

func TestIsClientError(t *testing.T) {
	assert.True(t, failure.IsClientError(failure.NotFound("guest not found")))
	assert.True(t, failure.IsClientError(failure.BadRequestFromString("invalid")))
	assert.False(t, failure.IsClientError(errors.New("boom")))
}
