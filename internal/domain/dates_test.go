package domain

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "bare date is utc midnight",
			value: "2024-05-01",
			want:  time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "rfc3339 with offset",
			value: "2024-05-01T10:00:00+02:00",
			want:  time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC),
		},
		{
			name:  "rfc3339 with millis",
			value: "2024-05-01T00:00:00.000Z",
			want:  time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "zone-less date-time",
			value: "2024-05-01T09:30:00",
			want:  time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC),
		},
		{
			name:    "garbage",
			value:   "first of may",
			wantErr: true,
		},
		{
			name:    "empty",
			value:   "  ",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.value)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidDate)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
		})
	}
}

func TestDateMatcher_Equal(t *testing.T) {
	stored := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	sameDayLater := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	instant, err := NewDateMatcher(DateMatchInstant, "")
	require.NoError(t, err)
	calendar, err := NewDateMatcher(DateMatchCalendarDay, "UTC")
	require.NoError(t, err)

	assert.True(t, instant.Equal(stored, stored))
	assert.False(t, instant.Equal(stored, sameDayLater))
	assert.True(t, calendar.Equal(stored, sameDayLater))
	assert.False(t, calendar.Equal(stored, stored.AddDate(0, 0, 1)))

	// sub-millisecond noise is dropped
	assert.True(t, instant.Equal(stored, stored.Add(300*time.Microsecond)))
}

func TestDateMatcher_CalendarDayUsesLocation(t *testing.T) {
	matcher, err := NewDateMatcher(DateMatchCalendarDay, "Asia/Tokyo")
	require.NoError(t, err)

	// 2024-04-30T20:00Z is already May 1st in Tokyo
	a := time.Date(2024, 4, 30, 20, 0, 0, 0, time.UTC)
	b := time.Date(2024, 5, 1, 3, 0, 0, 0, time.UTC)
	assert.True(t, matcher.Equal(a, b))
}

func TestNewDateMatcher_Invalid(t *testing.T) {
	_, err := NewDateMatcher("weekly", "UTC")
	require.Error(t, err)

	_, err = NewDateMatcher(DateMatchInstant, "Mars/Olympus")
	require.Error(t, err)
}

func TestSchedule_FindDate(t *testing.T) {
	may1 := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	schedule := &Schedule{
		ID: "venue-1",
		Dates: []ScheduleDate{
			{Date: may1.AddDate(0, 0, -1)},
			{Date: may1, Slots: []BookedSlot{{CourtNumber: 2, StartTime: 14, CustomerName: "Alice"}}},
		},
	}
	matcher := DateMatcher{Mode: DateMatchInstant}

	found, ok := schedule.FindDate(matcher, may1)
	require.True(t, ok)
	assert.Len(t, found.Slots, 1)
	assert.True(t, found.IsBooked(BookedSlot{CourtNumber: 2, StartTime: 14}))
	assert.False(t, found.IsBooked(BookedSlot{CourtNumber: 1, StartTime: 14}))

	_, ok = schedule.FindDate(matcher, may1.AddDate(0, 0, 5))
	assert.False(t, ok)
}
