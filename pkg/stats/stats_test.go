package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }
func intPtr(i int) *int    { return &i }

func TestSuccessRate(t *testing.T) {
	tests := []struct {
		name     string
		outcomes []*bool
		want     float64
	}{
		{"empty is zero", nil, 0},
		{"only unknown is zero", []*bool{nil}, 0},
		{"two of three", []*bool{boolPtr(true), boolPtr(true), boolPtr(false)}, 66.7},
		{"unknown excluded", []*bool{boolPtr(true), nil, boolPtr(false)}, 50},
		{"all failed", []*bool{boolPtr(false), boolPtr(false)}, 0},
		{"all succeeded", []*bool{boolPtr(true)}, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SuccessRate(tt.outcomes))
		})
	}
}

func TestAverageSatisfaction(t *testing.T) {
	assert.Nil(t, AverageSatisfaction(nil))
	assert.Nil(t, AverageSatisfaction([]*int{nil, nil}))

	got := AverageSatisfaction([]*int{intPtr(5), intPtr(4)})
	require.NotNil(t, got)
	assert.Equal(t, 4.5, *got)

	got = AverageSatisfaction([]*int{intPtr(5), nil, intPtr(4), intPtr(4)})
	require.NotNil(t, got)
	assert.Equal(t, 4.3, *got)
}

func TestDurationMinutes(t *testing.T) {
	start := time.Date(2025, 10, 16, 10, 0, 0, 0, time.UTC)

	t.Run("in progress", func(t *testing.T) {
		assert.Nil(t, DurationMinutes(start, nil))
	})

	t.Run("half minute rounds up", func(t *testing.T) {
		end := start.Add(30*time.Minute + 30*time.Second)
		got := DurationMinutes(start, &end)
		require.NotNil(t, got)
		assert.Equal(t, 31, *got)
	})

	t.Run("under half rounds down", func(t *testing.T) {
		end := start.Add(14*time.Minute + 29*time.Second)
		got := DurationMinutes(start, &end)
		require.NotNil(t, got)
		assert.Equal(t, 14, *got)
	})

	t.Run("same instant", func(t *testing.T) {
		got := DurationMinutes(start, &start)
		require.NotNil(t, got)
		assert.Equal(t, 0, *got)
	})
}

func TestDurationDisplay(t *testing.T) {
	assert.Equal(t, "In progress", DurationDisplay(nil))
	assert.Equal(t, "45m", DurationDisplay(intPtr(45)))
	assert.Equal(t, "0m", DurationDisplay(intPtr(0)))
	assert.Equal(t, "1h 0m", DurationDisplay(intPtr(60)))
	assert.Equal(t, "2h 5m", DurationDisplay(intPtr(125)))
}

func TestRoundAndPerDay(t *testing.T) {
	assert.Equal(t, 2.3, Round(2.25, 1))
	assert.Equal(t, -2.3, Round(-2.25, 1))
	assert.Equal(t, 66.7, Rate(2, 3))
	assert.Equal(t, float64(0), Rate(5, 0))
	assert.Equal(t, 1.4, PerDay(10, 7))
	assert.Equal(t, float64(0), PerDay(10, 0))

	mean := Mean([]int{3, 4, 4}, 2)
	require.NotNil(t, mean)
	assert.Equal(t, 3.67, *mean)
}
