package slotsapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtSchedule/internal/bookingflow"
	"github.com/m04kA/SMC-CourtSchedule/pkg/logger"
)

var _ bookingflow.Booker = (*Booker)(nil)

func newServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/", time.Second, logger.NewNop())
}

func respond(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func TestClient_GetSlots(t *testing.T) {
	var got getSlotsRequest
	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/getslots", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		respond(w, http.StatusOK, `{"slots":[{"courtNumber":2,"start_time":14,"customer_name":"Alice"}]}`)
	})

	slots, err := client.GetSlots(context.Background(), "club-1", "2024-05-01")
	require.NoError(t, err)

	assert.Equal(t, getSlotsRequest{ScheduleID: "club-1", Date: "2024-05-01"}, got)
	assert.Equal(t, []Slot{{CourtNumber: 2, StartTime: 14, CustomerName: "Alice"}}, slots)
}

func TestClient_GetSlots_NullSlots(t *testing.T) {
	client := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		respond(w, http.StatusOK, `{"slots":null}`)
	})

	slots, err := client.GetSlots(context.Background(), "club-1", "2024-05-01")
	require.NoError(t, err)
	assert.NotNil(t, slots)
	assert.Empty(t, slots)
}

func TestClient_StatusMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"not found", http.StatusNotFound, `{"message":"Schedule not found."}`, ErrScheduleNotFound},
		{"conflict", http.StatusConflict, `{"message":"Slot is already booked."}`, ErrSlotTaken},
		{"bad request", http.StatusBadRequest, `{"message":"invalid request body"}`, ErrBadRequest},
		{"server error", http.StatusInternalServerError, `{"message":"Internal Server Error","error":"boom"}`, ErrInvalidResponse},
		{"not json", http.StatusBadGateway, `upstream down`, ErrInvalidResponse},
		{"ok but garbage", http.StatusCreated, `{`, ErrInvalidResponse},
		{"created without slot", http.StatusCreated, `{}`, ErrInvalidResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
				respond(w, tt.status, tt.body)
			})

			_, err := client.BookSlot(context.Background(), BookSlotRequest{ScheduleID: "club-1"})
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClient_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	client := NewClient(srv.URL, time.Second, logger.NewNop())
	_, err := client.GetSlots(context.Background(), "club-1", "2024-05-01")
	require.ErrorIs(t, err, ErrInternal)
}

func TestBooker_BookSlot(t *testing.T) {
	var got BookSlotRequest
	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bookslot", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		respond(w, http.StatusCreated,
			`{"slot":{"courtNumber":4,"start_time":9,"customer_name":"Dave","contact_info":"555-0100","amount":500}}`)
	})

	booker := NewBooker(client, "club-1", "2024-05-01")
	ok, err := booker.BookSlot(context.Background(), 9, 3, "Dave", "555-0100", 500)
	require.NoError(t, err)
	assert.True(t, ok)

	assert.Equal(t, BookSlotRequest{
		ScheduleID:   "club-1",
		Date:         "2024-05-01",
		CourtNumber:  4,
		StartTime:    9,
		CustomerName: "Dave",
		ContactInfo:  "555-0100",
		Amount:       500,
	}, got)
}

func TestBooker_BookSlot_Rejected(t *testing.T) {
	client := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		respond(w, http.StatusConflict, `{"message":"Slot is already booked."}`)
	})

	ok, err := NewBooker(client, "club-1", "2024-05-01").BookSlot(context.Background(), 9, 0, "Dave", "x", 500)
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrSlotTaken)
}
