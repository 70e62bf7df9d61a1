package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStats_Push(t *testing.T) {

	l := 101

	type test struct {
		transform func(i int) float64
		avg       float64
		count     int
		min       float64
		max       float64
		stDev     float64
	}

	tests := map[string]test{
		"monotonically-increasing": {
			transform: func(i int) float64 {
				return float64(i)
			},
			avg:   float64(l / 2),
			count: l,
			min:   0,
			max:   float64(l - 1),
			stDev: 29.154759474,
		},
		"constant": {
			transform: func(i int) float64 {
				return 4.2
			},
			avg:   4.2,
			count: l,
			min:   4.2,
			max:   4.2,
			stDev: 0,
		},
		"alternating": {
			transform: func(i int) float64 {
				if i%2 == 0 {
					return -1
				}
				return 1
			},
			// one more -1 than +1 in an odd length sequence
			avg:   -1.0 / float64(l),
			count: l,
			min:   -1,
			max:   1,
			stDev: 0.999951,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			stats := NewStats()
			for i := 0; i < l; i++ {
				stats.Push(tt.transform(i))
			}
			assert.Equal(t, tt.count, stats.Count())
			assert.InDelta(t, tt.avg, stats.Avg(), 1e-9)
			assert.InDelta(t, tt.min, stats.Min(), 1e-9)
			assert.InDelta(t, tt.max, stats.Max(), 1e-9)
			assert.InDelta(t, tt.stDev, stats.StDev(), 1e-6)
		})
	}
}

func TestStatsCollector_Push(t *testing.T) {
	sc := NewStatsCollector(2)
	for i := 0; i < 10; i++ {
		sc.Push(float64(i), float64(-i))
	}
	assert.Equal(t, 2, sc.Dim())
	assert.Equal(t, 4.5, sc.Stats(0).Avg())
	assert.Equal(t, -4.5, sc.Stats(1).Avg())
	assert.Equal(t, 9.0, sc.Stats(0).Max())
	assert.Equal(t, -9.0, sc.Stats(1).Min())
}
