package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondInternalError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondInternalError(rec, errors.New("the provided hex string is not a valid ObjectID"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t,
		`{"message":"Internal Server Error","error":"the provided hex string is not a valid ObjectID"}`,
		rec.Body.String())
}

func TestRespondNotFound(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondNotFound(rec, "Schedule not found.")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Schedule not found."}`, rec.Body.String())
}

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"valid", `{"scheduleId":"a"}`, false},
		{"unknown fields ignored", `{"scheduleId":"a","extra":1}`, false},
		{"empty", ``, true},
		{"malformed", `{"scheduleId":`, true},
		{"wrong type", `{"scheduleId":1}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))

			var v struct {
				ScheduleID string `json:"scheduleId"`
			}
			err := DecodeJSON(req, &v)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "a", v.ScheduleID)
		})
	}
}
