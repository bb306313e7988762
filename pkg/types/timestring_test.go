package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected TimeString
		wantErr  bool
	}{
		{name: "valid HH:MM", input: "10:30", expected: "10:30"},
		{name: "valid HH:MM:SS drops seconds", input: "10:30:45", expected: "10:30"},
		{name: "midnight", input: "00:00", expected: "00:00"},
		{name: "invalid hour", input: "25:00", wantErr: true},
		{name: "invalid minute", input: "10:60", wantErr: true},
		{name: "garbage", input: "not-a-time", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	tests := []struct {
		name     string
		ts       TimeString
		minutes  int
		expected TimeString
	}{
		{name: "simple add", ts: "10:00", minutes: 30, expected: "10:30"},
		{name: "hour rollover", ts: "10:45", minutes: 30, expected: "11:15"},
		{name: "midnight wrap", ts: "23:30", minutes: 60, expected: "00:30"},
		{name: "zero minutes", ts: "10:00", minutes: 0, expected: "10:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.ts.AddMinutes(tt.minutes)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestTimeString_Comparison(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.True(t, TimeString("10:30").IsAfter("10:00"))
	assert.False(t, TimeString("10:00").IsAfter("10:00"))
}

func TestTimeString_OnDate(t *testing.T) {
	date := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)

	got := TimeString("10:30").OnDate(date)
	assert.Equal(t, time.Date(2026, 3, 16, 10, 30, 0, 0, time.UTC), got)

	// Некорректное время дает полночь
	got = TimeString("oops").OnDate(date)
	assert.Equal(t, date, got)
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("10:30:00"))
	assert.Equal(t, TimeString("10:30"), ts)

	require.NoError(t, ts.Scan([]byte("11:15")))
	assert.Equal(t, TimeString("11:15"), ts)

	require.NoError(t, ts.Scan(time.Date(2026, 3, 16, 9, 45, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("09:45"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	err := ts.Scan(42)
	assert.ErrorIs(t, err, ErrUnsupportedScanType)
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("10:30").Value()
	require.NoError(t, err)
	assert.Equal(t, "10:30", v)

	_, err = TimeString("bad").Value()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}
