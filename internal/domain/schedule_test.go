package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAddWeekdays(t *testing.T) {
	tests := []struct {
		name     string
		start    time.Time
		duration int
		want     time.Time
	}{
		{
			name:     "monday start fits within one week",
			start:    date(2024, time.January, 1), // Monday
			duration: 5,
			want:     date(2024, time.January, 5), // Friday
		},
		{
			name:     "thursday start skips the weekend",
			start:    date(2024, time.January, 4), // Thursday
			duration: 6,
			want:     date(2024, time.January, 11), // next Thursday
		},
		{
			name:     "single day course ends on its start day",
			start:    date(2024, time.January, 2),
			duration: 1,
			want:     date(2024, time.January, 2),
		},
		{
			name:     "friday start with two days lands on monday",
			start:    date(2024, time.January, 5),
			duration: 2,
			want:     date(2024, time.January, 8),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AddWeekdays(tt.start, tt.duration))
		})
	}
}

func TestIsWeekend(t *testing.T) {
	assert.True(t, IsWeekend(date(2024, time.January, 6)))  // Saturday
	assert.True(t, IsWeekend(date(2024, time.January, 7)))  // Sunday
	assert.False(t, IsWeekend(date(2024, time.January, 8))) // Monday
}

func TestOverlaps(t *testing.T) {
	a1, a2 := date(2024, time.March, 4), date(2024, time.March, 8)

	// Fully disjoint.
	assert.False(t, Overlaps(a1, a2, date(2024, time.March, 11), date(2024, time.March, 15)))

	// Touching on the boundary day counts as overlap.
	assert.True(t, Overlaps(a1, a2, date(2024, time.March, 8), date(2024, time.March, 12)))
	assert.True(t, Overlaps(date(2024, time.March, 8), date(2024, time.March, 12), a1, a2))

	// Containment.
	assert.True(t, Overlaps(a1, a2, date(2024, time.March, 5), date(2024, time.March, 6)))
}

func TestDateOnly(t *testing.T) {
	ts := time.Date(2024, time.June, 10, 17, 45, 3, 12, time.UTC)
	assert.Equal(t, date(2024, time.June, 10), DateOnly(ts))
}
