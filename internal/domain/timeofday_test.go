package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	t.Run("valid values", func(t *testing.T) {
		tests := []struct {
			in   string
			want TimeOfDay
		}{
			{"00:00", 0},
			{"08:00", 480},
			{"12:30", 750},
			{"23:59", 1439},
		}
		for _, tt := range tests {
			got, err := ParseTimeOfDay(tt.in)
			require.NoError(t, err, tt.in)
			assert.Equal(t, tt.want, got, tt.in)
		}
	})

	t.Run("invalid values", func(t *testing.T) {
		invalid := []string{
			"", "8:00", "08:0", "08:00:00", "24:00", "12:60", "ab:cd", "12-30", "12 30",
		}
		for _, in := range invalid {
			_, err := ParseTimeOfDay(in)
			assert.ErrorIs(t, err, ErrInvalidTimeFormat, in)
		}
	})

	t.Run("round trip", func(t *testing.T) {
		assert.Equal(t, "09:05", MustTimeOfDay("09:05").String())
		assert.Equal(t, "00:00", TimeOfDay(0).String())
	})
}

func TestTimeOfDay_Add(t *testing.T) {
	start := MustTimeOfDay("16:30")

	assert.Equal(t, MustTimeOfDay("17:30"), start.Add(60))

	// No wraparound: an overrunning slot end stays past the interval's end
	// so it can be flagged instead of comparing as an early-morning time.
	late := MustTimeOfDay("23:30").Add(60)
	assert.True(t, late.After(MustTimeOfDay("23:59")))
}

func TestInterval_Construction(t *testing.T) {
	_, err := NewInterval(MustTimeOfDay("09:00"), MustTimeOfDay("09:00"))
	assert.ErrorIs(t, err, ErrInvalidInterval)

	_, err = NewInterval(MustTimeOfDay("10:00"), MustTimeOfDay("09:00"))
	assert.ErrorIs(t, err, ErrInvalidInterval)

	interval, err := ParseInterval("08:00", "17:00")
	require.NoError(t, err)
	assert.Equal(t, 540, interval.Minutes())

	_, err = ParseInterval("8:00", "17:00")
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}

func TestInterval_Overlaps(t *testing.T) {
	mk := func(start, end string) Interval {
		interval, err := ParseInterval(start, end)
		require.NoError(t, err)
		return interval
	}

	tests := []struct {
		name string
		a, b Interval
		want bool
	}{
		{"disjoint", mk("08:00", "09:00"), mk("10:00", "11:00"), false},
		{"touching endpoints do not overlap", mk("08:00", "09:00"), mk("09:00", "10:00"), false},
		{"partial overlap", mk("08:00", "09:30"), mk("09:00", "10:00"), true},
		{"containment", mk("08:00", "12:00"), mk("09:00", "10:00"), true},
		{"identical", mk("09:00", "10:00"), mk("09:00", "10:00"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			// Overlap is symmetric.
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestInterval_Contains(t *testing.T) {
	interval, err := ParseInterval("09:00", "10:00")
	require.NoError(t, err)

	assert.True(t, interval.Contains(MustTimeOfDay("09:00")), "start is included")
	assert.True(t, interval.Contains(MustTimeOfDay("09:59")))
	assert.False(t, interval.Contains(MustTimeOfDay("10:00")), "end is excluded")
	assert.False(t, interval.Contains(MustTimeOfDay("08:59")))
}
