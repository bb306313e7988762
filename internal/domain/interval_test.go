package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02T15:04", value)
	if err != nil {
		t.Fatalf("failed to parse time %q: %v", value, err)
	}
	return parsed
}

func TestInterval_Overlaps(t *testing.T) {
	tests := []struct {
		name     string
		a        Interval
		b        Interval
		expected bool
	}{
		{
			name:     "partial overlap",
			a:        Interval{Start: mustTime(t, "2026-03-16T10:00"), End: mustTime(t, "2026-03-16T11:00")},
			b:        Interval{Start: mustTime(t, "2026-03-16T10:30"), End: mustTime(t, "2026-03-16T11:30")},
			expected: true,
		},
		{
			name:     "containment",
			a:        Interval{Start: mustTime(t, "2026-03-16T10:00"), End: mustTime(t, "2026-03-16T12:00")},
			b:        Interval{Start: mustTime(t, "2026-03-16T10:30"), End: mustTime(t, "2026-03-16T11:00")},
			expected: true,
		},
		{
			name:     "identical intervals",
			a:        Interval{Start: mustTime(t, "2026-03-16T10:00"), End: mustTime(t, "2026-03-16T11:00")},
			b:        Interval{Start: mustTime(t, "2026-03-16T10:00"), End: mustTime(t, "2026-03-16T11:00")},
			expected: true,
		},
		{
			name:     "back to back is not a conflict",
			a:        Interval{Start: mustTime(t, "2026-03-16T10:00"), End: mustTime(t, "2026-03-16T11:00")},
			b:        Interval{Start: mustTime(t, "2026-03-16T11:00"), End: mustTime(t, "2026-03-16T12:00")},
			expected: false,
		},
		{
			name:     "disjoint",
			a:        Interval{Start: mustTime(t, "2026-03-16T10:00"), End: mustTime(t, "2026-03-16T11:00")},
			b:        Interval{Start: mustTime(t, "2026-03-16T14:00"), End: mustTime(t, "2026-03-16T15:00")},
			expected: false,
		},
		{
			name:     "zero duration interval overlaps nothing",
			a:        Interval{Start: mustTime(t, "2026-03-16T10:30"), End: mustTime(t, "2026-03-16T10:30")},
			b:        Interval{Start: mustTime(t, "2026-03-16T10:00"), End: mustTime(t, "2026-03-16T11:00")},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.a.Overlaps(tt.b))
			// Пересечение симметрично
			assert.Equal(t, tt.expected, tt.b.Overlaps(tt.a))
		})
	}
}

func TestNewInterval(t *testing.T) {
	start := mustTime(t, "2026-03-16T10:00")
	interval := NewInterval(start, 45)

	assert.Equal(t, start, interval.Start)
	assert.Equal(t, mustTime(t, "2026-03-16T10:45"), interval.End)
	assert.False(t, interval.IsZero())

	empty := NewInterval(start, 0)
	assert.True(t, empty.IsZero())
}

func TestAppointment_Interval(t *testing.T) {
	appt := &Appointment{
		Date:            mustTime(t, "2026-03-16T00:00"),
		StartTime:       "10:00",
		DurationMinutes: 90,
	}

	interval := appt.Interval()
	assert.Equal(t, mustTime(t, "2026-03-16T10:00"), interval.Start)
	assert.Equal(t, mustTime(t, "2026-03-16T11:30"), interval.End)
}

func TestAppointment_IsActive(t *testing.T) {
	assert.True(t, (&Appointment{Status: StatusPending}).IsActive())
	assert.True(t, (&Appointment{Status: StatusConfirmed}).IsActive())
	assert.False(t, (&Appointment{Status: StatusCancelled}).IsActive())
}
