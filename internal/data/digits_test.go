package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	ds, err := Load()
	assert.NoError(t, err)
	assert.NoError(t, ds.Validate())

	assert.Equal(t, Samples, ds.Len())
	assert.Equal(t, Features, ds.Dim())

	counts := make(map[int]int)
	for _, y := range ds.Y {
		assert.True(t, y >= 0 && y < Classes)
		counts[y]++
	}
	assert.Equal(t, Classes, len(counts))

	// pixel intensities stay within the 4 bit range
	for _, x := range ds.X {
		for _, v := range x {
			assert.True(t, v >= 0 && v <= 16)
		}
	}
}

func TestLoad_Deterministic(t *testing.T) {
	first, err := Load()
	assert.NoError(t, err)
	second, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, first.Y, second.Y)
	assert.Equal(t, first.X[0], second.X[0])
	assert.Equal(t, first.X[first.Len()-1], second.X[second.Len()-1])
}
