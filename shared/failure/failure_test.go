package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"tripgate/shared/failure"
)

func TestFailureConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{
			name:     "bad request from error",
			err:      failure.BadRequest(errors.New("malformed date range")),
			wantCode: http.StatusBadRequest,
			wantMsg:  "malformed date range",
		},
		{
			name:     "bad request from string",
			err:      failure.BadRequestFromString("Minimum 30 days required"),
			wantCode: http.StatusBadRequest,
			wantMsg:  "Minimum 30 days required",
		},
		{
			name:     "unauthorized",
			err:      failure.Unauthorized("missing session"),
			wantCode: http.StatusUnauthorized,
			wantMsg:  "missing session",
		},
		{
			name:     "not found",
			err:      failure.NotFound("journey not found"),
			wantCode: http.StatusNotFound,
			wantMsg:  "journey not found",
		},
		{
			name:     "conflict",
			err:      failure.Conflict("seat already booked"),
			wantCode: http.StatusConflict,
			wantMsg:  "seat already booked",
		},
		{
			name:     "forbidden",
			err:      failure.Forbidden("admin only"),
			wantCode: http.StatusForbidden,
			wantMsg:  "admin only",
		},
		{
			name:     "internal error",
			err:      failure.InternalError(errors.New("boom")),
			wantCode: http.StatusInternalServerError,
			wantMsg:  "boom",
		},
		{
			name:     "upstream status carried through",
			err:      failure.Upstream(http.StatusUnprocessableEntity, "dates unavailable"),
			wantCode: http.StatusUnprocessableEntity,
			wantMsg:  "dates unavailable",
		},
		{
			name:     "upstream unreachable",
			err:      failure.UpstreamUnavailable(errors.New("dial tcp: connection refused")),
			wantCode: http.StatusBadGateway,
			wantMsg:  "core api unreachable: dial tcp: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.err)
			assert.Equal(t, tt.wantCode, failure.GetCode(tt.err))
			assert.Equal(t, tt.wantMsg, tt.err.Error())
		})
	}
}

func TestGetCode_NonFailure(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(errors.New("plain error")))
}

func TestGetCode_Wrapped(t *testing.T) {
	err := fmt.Errorf("creating booking: %w", failure.NotFound("room not found"))

	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestNilConstructors(t *testing.T) {
	assert.NoError(t, failure.BadRequest(nil))
	assert.NoError(t, failure.InternalError(nil))
}
